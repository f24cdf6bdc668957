package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterRevenueRoutes registers the routes for revenue with
// the RouterGroup that is passed.
func RegisterRevenueRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRevenueList)
		r.GET("", ListRevenue)
		r.POST("", CreateRevenue)
	}

	// Revenue with ID
	{
		r.OPTIONS("/:id", OptionsRevenueDetail)
		r.GET("/:id", GetRevenue)
		r.PATCH("/:id", UpdateRevenue)
		r.DELETE("/:id", DeleteRevenue)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Revenue
// @Success		204
// @Router			/revenue [options]
func OptionsRevenueList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Revenue
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/revenue/{id} [options]
func OptionsRevenueDetail(c *gin.Context) {
	resourceOptionsDetail[models.Revenue](c)
}

// @Summary		Create revenue
// @Description	Creates a new revenue entry. The status defaults to "Pending".
// @Tags			Revenue
// @Accept			json
// @Produce		json
// @Success		201		{object}	Revenue
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			revenue	body		RevenueEditable	true	"Revenue"
// @Router			/revenue [post]
func CreateRevenue(c *gin.Context) {
	var data RevenueEditable
	_, err := bindEditable(c, &data, true, revenueRequired...)
	if err == nil {
		err = checkAmounts(data.Amount)
	}
	if err == nil {
		err = ownCategory(c, data.CategoryID)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	revenue := data.model(userID(c))
	err = models.DB.Create(&revenue).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	revenue, err = reload[models.Revenue](c, revenue.ID, "Category")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newRevenue(revenue))
}

// @Summary		List revenue
// @Description	Returns the revenue of the user, latest date first
// @Tags			Revenue
// @Produce		json
// @Success		200			{array}		Revenue
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			categoryId	query		string	false	"Filter by category ID, 'all' for no filter"
// @Param			status		query		string	false	"Filter by status, 'all' for no filter"
// @Param			description	query		string	false	"Filter by description, * matches any text"
// @Router			/revenue [get]
func ListRevenue(c *gin.Context) {
	var filter RevenueQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var revenues []models.Revenue
	err = filtered(owned(c), filter.model(), queryFields).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&revenues).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if slices.Contains(setFields, "Description") {
		revenues = filterGlob(revenues, filter.Description, func(r models.Revenue) string { return r.Description })
	}

	data := make([]Revenue, 0, len(revenues))
	for _, revenue := range revenues {
		data = append(data, newRevenue(revenue))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get revenue
// @Description	Returns a specific revenue entry
// @Tags			Revenue
// @Produce		json
// @Success		200	{object}	Revenue
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/revenue/{id} [get]
func GetRevenue(c *gin.Context) {
	revenue, ok := getResource[models.Revenue](c, "Category")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newRevenue(revenue))
}

// @Summary		Update revenue
// @Description	Update an existing revenue entry. Only values to be updated need to be specified.
// @Tags			Revenue
// @Accept			json
// @Produce		json
// @Success		200		{object}	Revenue
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			revenue	body		RevenueEditable	true	"Revenue"
// @Router			/revenue/{id} [patch]
func UpdateRevenue(c *gin.Context) {
	revenue, ok := getResource[models.Revenue](c)
	if !ok {
		return
	}

	var data RevenueEditable
	updateFields, err := bindEditable(c, &data, false, revenueUpdateRequired...)
	if err == nil {
		err = checkAmounts(data.Amount)
	}
	if err == nil && slices.Contains(updateFields, any("CategoryID")) {
		err = ownCategory(c, data.CategoryID)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = updateResource(&revenue, updateFields, data.model(revenue.UserID))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	revenue, err = reload[models.Revenue](c, revenue.ID, "Category")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newRevenue(revenue))
}

// @Summary		Delete revenue
// @Description	Deletes a revenue entry
// @Tags			Revenue
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/revenue/{id} [delete]
func DeleteRevenue(c *gin.Context) {
	deleteResource[models.Revenue](c, "Revenue")
}
