package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"digitalmenu/internal/catalog"
	"digitalmenu/internal/models"
)

type ComplaintCreateRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Message      string `json:"message" binding:"required"`
	Category     string `json:"category"`
}

type ComplaintUpdateRequest struct {
	CustomerName *string `json:"customerName"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Message      *string `json:"message"`
	Status       *string `json:"status" binding:"omitempty,complaintstatus"`
	Category     *string `json:"category"`
}

func trimmedPtr(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

func matchesComplaintSearch(complaint models.Complaint, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []string{complaint.CustomerName, complaint.Email, complaint.Message} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// complaintCounts summarises every complaint regardless of the active filters.
func complaintCounts(complaints []models.Complaint) gin.H {
	counts := map[models.ComplaintStatus]int{}
	for _, complaint := range complaints {
		counts[complaint.Status]++
	}
	return gin.H{
		"total":      len(complaints),
		"pending":    counts[models.ComplaintPending],
		"inProgress": counts[models.ComplaintInProgress],
		"resolved":   counts[models.ComplaintResolved],
	}
}

/*
GET /admin/api/complaints?status=pending&category=Service&search=cold&page=1&limit=20
- "all" or an empty value disables a filter
- counts always cover the whole list
*/
func GetComplaints(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := strings.TrimSpace(c.Query("status"))
		if status == "all" {
			status = ""
		}
		if status != "" && !models.ComplaintStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		category := strings.TrimSpace(c.Query("category"))
		if category == "all" {
			category = ""
		}
		search := strings.TrimSpace(c.Query("search"))

		complaints := store.Complaints()
		counts := complaintCounts(complaints)

		filtered := make([]models.Complaint, 0, len(complaints))
		for _, complaint := range complaints {
			if status != "" && complaint.Status != models.ComplaintStatus(status) {
				continue
			}
			if category != "" && !strings.EqualFold(complaint.Category, category) {
				continue
			}
			if search != "" && !matchesComplaintSearch(complaint, search) {
				continue
			}
			filtered = append(filtered, complaint)
		}

		data, pagination := paginate(filtered, page, limit)
		c.JSON(http.StatusOK, gin.H{
			"data":       data,
			"pagination": pagination,
			"counts":     counts,
		})
	}
}

// CreateComplaint serves both the public feedback form and the admin console.
// New complaints always start as pending.
func CreateComplaint(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /complaints"

		var req ComplaintCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		complaint, err := store.AddComplaint(models.Complaint{
			CustomerName: strings.TrimSpace(req.CustomerName),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:        strings.TrimSpace(req.Phone),
			Message:      strings.TrimSpace(req.Message),
			Category:     strings.TrimSpace(req.Category),
		})
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[%s] complaint %s received", route, complaint.ID)
		c.JSON(http.StatusCreated, complaint)
	}
}

func UpdateComplaint(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ComplaintUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		patch := models.ComplaintPatch{
			CustomerName: trimmedPtr(req.CustomerName),
			Email:        trimmedPtr(req.Email),
			Phone:        trimmedPtr(req.Phone),
			Message:      trimmedPtr(req.Message),
			Category:     trimmedPtr(req.Category),
		}
		if req.Status != nil {
			status := models.ComplaintStatus(*req.Status)
			patch.Status = &status
		}
		if patch.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		updated, ok := store.UpdateComplaint(trimmedParam(c, "id"), patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteComplaint(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.DeleteComplaint(trimmedParam(c, "id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "complaint deleted"})
	}
}
