package service

import (
	"errors"
	"fmt"

	"github.com/dinushadev/real-estate-agent-sg/internal/model"
)

// ErrInvalidCategory is returned for a category outside the two PropertyGuru
// market segments. There is no default segment to fall back to, so the
// pipeline refuses the search before any remote call is made.
var ErrInvalidCategory = errors.New("invalid property category")

// PropertyTypeGroup maps a (category, type) pair to the short code the
// PropertyGuru query string expects. Unknown residential types fall back to
// the HDB group; commercial searches use a single fixed group.
func PropertyTypeGroup(category model.PropertyCategory, propertyType model.PropertyType) (string, error) {
	switch category {
	case model.CategoryResidential:
		switch propertyType {
		case model.TypeCondo:
			return "N", nil
		case model.TypeLanded:
			return "L", nil
		default:
			return "H", nil
		}
	case model.CategoryCommercial:
		return "com", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
}

// propertyTypeLabel returns the human-readable listing label used in
// extraction prompts
func propertyTypeLabel(propertyType model.PropertyType) string {
	switch propertyType {
	case model.TypeCondo:
		return "Condominiums"
	case model.TypeLanded:
		return "Landed Houses"
	default:
		return "HDB Flats"
	}
}
