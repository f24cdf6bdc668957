package controllers

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/models"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" example:"Utilities"`                              // Name of the category
	Type        string `json:"type" example:"Expense" enums:"Expense,Income"`         // Whether the category is used for expenses or income
	Description string `json:"description" example:"Electricity, water and internet"` // Description of the category
	Color       string `json:"color" example:"#3b82f6"`                               // Display color in hex notation
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	if strings.TrimSpace(editable.Color) == "" {
		editable.Color = models.DefaultCategoryColor
	}

	return models.Category{
		UserID:      userID,
		Name:        editable.Name,
		Type:        editable.Type,
		Description: editable.Description,
		Color:       editable.Color,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable
}

func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Type:        model.Type,
			Description: model.Description,
			Color:       model.Color,
		},
	}
}

var categoryRequired = []string{"Name", "Type"}

func validCategoryType(t string) error {
	if t != models.CategoryTypeExpense && t != models.CategoryTypeIncome {
		return errCategoryType
	}
	return nil
}

type CategoryQueryFilter struct {
	Type string `form:"type"` // By type
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Type: f.Type,
	}
}
