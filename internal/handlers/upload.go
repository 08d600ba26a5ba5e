package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Uploads stores image files under <root>/uploads and hands back the public
// path they are served from.
type Uploads struct {
	root string
}

func NewUploads(publicDir string) Uploads {
	return Uploads{root: publicDir}
}

func (u Uploads) saveImage(file *multipart.FileHeader, kind string) (string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", fmt.Errorf("image file extension is required")
	}
	if _, ok := allowedImageExtensions[extension]; !ok {
		return "", fmt.Errorf("unsupported image type: %s", extension)
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image file too large (max 5MB)")
	}

	filename := primitive.NewObjectID().Hex() + extension

	dir := filepath.Join(u.root, "uploads", kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[UPLOAD] saveImage: failed to create directory %s: %v", dir, err)
		return "", err
	}

	fullPath := filepath.Join(dir, filename)
	log.Printf("[UPLOAD] saveImage: filename=%s ext=%s fullPath=%s", filename, extension, fullPath)

	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[UPLOAD] saveImage: failed to create file %s: %v", fullPath, err)
		return "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		log.Printf("[UPLOAD] saveImage: failed to open upload %s: %v", file.Filename, err)
		return "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		log.Printf("[UPLOAD] saveImage: failed to save file %s: %v", fullPath, err)
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join("uploads", kind, filename)), nil
}

func isUpload(p string) bool {
	return strings.HasPrefix(strings.TrimSpace(p), "/uploads/")
}

func formImage(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("%s file is required", field)
		}
		return nil, err
	}
	return file, nil
}

/*
POST /admin/api/template-customization/logo (multipart, field "logo")
*/
func UploadLogo(store *catalog.Store, uploads Uploads) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/template-customization/logo"

		file, err := formImage(c, "logo")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logoPath, err := uploads.saveImage(file, "logos")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		previous := store.TemplateCustomization().Logo
		updated := store.UpdateTemplateCustomization(models.CustomizationPatch{Logo: &logoPath})

		if previous != nil && isUpload(*previous) && *previous != logoPath {
			if err := uploads.safeDelete(*previous); err != nil {
				log.Printf("[%s] previous logo not removed: %v", route, err)
			}
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
POST /admin/api/items/:id/image (multipart, field "image")
*/
func UploadItemImage(store *catalog.Store, uploads Uploads) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/items/:id/image"

		id := trimmedParam(c, "id")
		current, ok := store.Item(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}

		file, err := formImage(c, "image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		imagePath, err := uploads.saveImage(file, "items")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, ok := store.UpdateItem(id, models.ItemPatch{Image: &imagePath})
		if !ok {
			// deleted while the file was being written
			_ = uploads.safeDelete(imagePath)
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}

		if isUpload(current.Image) && current.Image != imagePath {
			if err := uploads.safeDelete(current.Image); err != nil {
				log.Printf("[%s] previous image not removed: %v", route, err)
			}
		}

		c.JSON(http.StatusOK, updated)
	}
}
