package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type DietaryTag string

const (
	DietaryVegetarian DietaryTag = "vegetarian"
	DietaryVegan      DietaryTag = "vegan"
	DietaryGlutenFree DietaryTag = "gluten-free"
	DietaryDairyFree  DietaryTag = "dairy-free"
	DietaryHalal      DietaryTag = "halal"
	DietaryKosher     DietaryTag = "kosher"
)

var dietaryTags = map[DietaryTag]struct{}{
	DietaryVegetarian: {},
	DietaryVegan:      {},
	DietaryGlutenFree: {},
	DietaryDairyFree:  {},
	DietaryHalal:      {},
	DietaryKosher:     {},
}

func (t DietaryTag) Valid() bool {
	_, ok := dietaryTags[t]
	return ok
}

// ParseDietaryTag normalizes case and surrounding space before checking the
// tag against the closed set.
func ParseDietaryTag(value string) (DietaryTag, error) {
	tag := DietaryTag(strings.ToLower(strings.TrimSpace(value)))
	if !tag.Valid() {
		return "", fmt.Errorf("unknown dietary tag %q", value)
	}
	return tag, nil
}

// DietaryTags ensures tag fields can be decoded whether stored as a single
// string or an array of strings.
type DietaryTags []DietaryTag

// NormalizeDietaryTags parses every value and drops duplicates, keeping the
// first occurrence order.
func NormalizeDietaryTags(values []string) (DietaryTags, error) {
	seen := map[DietaryTag]struct{}{}
	out := make(DietaryTags, 0, len(values))

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		tag, err := ParseDietaryTag(v)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out, nil
}

func (s DietaryTags) Has(tag DietaryTag) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

func (s DietaryTags) clone() DietaryTags {
	if s == nil {
		return nil
	}
	out := make(DietaryTags, len(s))
	copy(out, s)
	return out
}

// UnmarshalBSONValue accepts both string and array BSON types.
func (s *DietaryTags) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*s = nil
		return nil
	case bsontype.Array:
		var values []string
		if err := bson.UnmarshalValue(t, data, &values); err != nil {
			return err
		}
		tags, err := NormalizeDietaryTags(values)
		if err != nil {
			return err
		}
		*s = tags
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		tags, err := NormalizeDietaryTags([]string{value})
		if err != nil {
			return err
		}
		*s = tags
		return nil
	default:
		return fmt.Errorf("cannot decode %s into DietaryTags", t)
	}
}

// MarshalBSONValue always stores the list as an array.
func (s DietaryTags) MarshalBSONValue() (bsontype.Type, []byte, error) {
	values := make([]string, len(s))
	for i, t := range s {
		values[i] = string(t)
	}
	return bson.MarshalValue(values)
}
