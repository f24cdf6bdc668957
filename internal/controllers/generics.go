package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/auth"
	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ownedResource interface {
	models.Category | models.Expense | models.Revenue | models.Budget | models.Invoice | models.Savings | models.Transaction | models.PaymentMethod | models.Notification
}

// userID returns the ID of the authenticated user.
func userID(c *gin.Context) uuid.UUID {
	return auth.CurrentUser(c).ID
}

// owned returns a query scoped to the resources of the authenticated user.
func owned(c *gin.Context) *gorm.DB {
	return models.DB.Scopes(models.OwnedBy(userID(c)))
}

// getResource loads the resource with the ID from the URI if it belongs
// to the authenticated user. Resources of other users are reported as not
// found.
//
// If the resource cannot be loaded, the error response is written and ok is false.
func getResource[R ownedResource](c *gin.Context, preloads ...string) (resource R, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return resource, false
	}

	q := owned(c)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	err = q.First(&resource, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return resource, false
	}

	return resource, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R ownedResource](c *gin.Context) {
	if _, ok := getResource[R](c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes the resource from the URI. name is used in the
// confirmation message.
func deleteResource[R ownedResource](c *gin.Context, name string) {
	resource, ok := getResource[R](c)
	if !ok {
		return
	}

	err := models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: name + " deleted successfully",
	})
}

// bindEditable reads the fields present in the body and binds the body to data.
//
// On create, all required fields must be present. On update, required
// fields may be missing, but must not be blank when present.
func bindEditable[E any](c *gin.Context, data *E, creating bool, required ...string) ([]any, error) {
	fields, err := httputil.GetBodyFields(c, *data)
	if err != nil {
		return nil, err
	}

	err = httputil.BindData(c, data)
	if err != nil {
		return nil, err
	}

	err = checkRequired(*data, fields, creating, required...)
	if err != nil {
		return nil, err
	}

	return fields, nil
}

// updateResource applies the fields present in the request body to the resource.
// An empty field list leaves the resource untouched.
func updateResource[R ownedResource](resource *R, fields []any, data R) error {
	if len(fields) == 0 {
		return nil
	}

	return models.DB.Model(resource).Select("", fields...).Updates(data).Error
}

// reload reads a resource of the authenticated user again, e.g. to
// populate associations after it has been written.
func reload[R ownedResource](c *gin.Context, id uuid.UUID, preloads ...string) (resource R, err error) {
	q := owned(c)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	err = q.First(&resource, "id = ?", id).Error
	return
}

// filtered restricts q to resources matching the filter model on the given
// fields. Without fields, q is returned unchanged.
func filtered(q *gorm.DB, filter any, fields []any) *gorm.DB {
	if len(fields) == 0 {
		return q
	}

	return q.Where(filter, fields...)
}
