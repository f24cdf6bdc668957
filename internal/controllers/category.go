package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail[models.Category](c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	Category
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories [post]
func CreateCategory(c *gin.Context) {
	var data CategoryEditable
	_, err := bindEditable(c, &data, true, categoryRequired...)
	if err == nil {
		err = validCategoryType(data.Type)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	category := data.model(userID(c))
	err = models.DB.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newCategory(category))
}

// @Summary		Get categories
// @Description	Returns the categories of the user, newest first
// @Tags			Categories
// @Produce		json
// @Success		200		{array}		Category
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			type	query		string	false	"Filter by type, 'all' for no filter"
// @Router			/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var categories []models.Category
	err := filtered(owned(c), filter.model(), queryFields).
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Category
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, ok := getResource[models.Category](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	Category
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, ok := getResource[models.Category](c)
	if !ok {
		return
	}

	var data CategoryEditable
	updateFields, err := bindEditable(c, &data, false, categoryRequired...)
	if err == nil && slices.Contains(updateFields, any("Type")) {
		err = validCategoryType(data.Type)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = updateResource(&category, updateFields, data.model(category.UserID))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

// @Summary		Delete category
// @Description	Deletes a category. Categories still used by expenses or revenue cannot be deleted.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	deleteResource[models.Category](c, "Category")
}
