package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSavingsRoutes registers the routes for savings with
// the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsList)
		r.GET("", ListSavings)
		r.POST("", CreateSavings)
	}

	// Savings with ID
	{
		r.OPTIONS("/:id", OptionsSavingsDetail)
		r.GET("/:id", GetSavings)
		r.PATCH("/:id", UpdateSavings)
		r.DELETE("/:id", DeleteSavings)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/savings [options]
func OptionsSavingsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/savings/{id} [options]
func OptionsSavingsDetail(c *gin.Context) {
	resourceOptionsDetail[models.Savings](c)
}

// @Summary		Create savings entry
// @Description	Creates a new deposit or withdrawal
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		201		{object}	Savings
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			savings	body		SavingsEditable	true	"Savings"
// @Router			/savings [post]
func CreateSavings(c *gin.Context) {
	var data SavingsEditable
	_, err := bindEditable(c, &data, true, savingsRequired...)
	if err == nil {
		err = checkAmounts(data.Amount)
	}
	if err == nil && !validSavingsType(data.Type) {
		err = errSavingsType
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	savings := data.model(userID(c))
	err = models.DB.Create(&savings).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newSavings(savings))
}

// @Summary		Get savings
// @Description	Returns the savings entries of the user, latest date first
// @Tags			Savings
// @Produce		json
// @Success		200			{array}		Savings
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			type		query		string	false	"Filter by type, 'all' for no filter"
// @Param			startDate	query		string	false	"Only entries on or after this day"
// @Param			endDate		query		string	false	"Only entries on or before this day"
// @Router			/savings [get]
func ListSavings(c *gin.Context) {
	var filter SavingsQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := filtered(owned(c), filter.model(), queryFields)
	if slices.Contains(setFields, "StartDate") {
		q = q.Where("date >= ?", filter.StartDate)
	}
	if slices.Contains(setFields, "EndDate") {
		q = q.Where("date <= ?", filter.EndDate)
	}

	if slices.Contains(setFields, "StartDate") && slices.Contains(setFields, "EndDate") && filter.StartDate.After(filter.EndDate) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDateRange.Error(),
		})
		return
	}

	var savings []models.Savings
	err = q.Order("date DESC, created_at DESC").Find(&savings).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]Savings, 0, len(savings))
	for _, entry := range savings {
		data = append(data, newSavings(entry))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get savings entry
// @Description	Returns a specific savings entry
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	Savings
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/savings/{id} [get]
func GetSavings(c *gin.Context) {
	savings, ok := getResource[models.Savings](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newSavings(savings))
}

// @Summary		Update savings entry
// @Description	Update an existing savings entry. Only values to be updated need to be specified.
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		200		{object}	Savings
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			savings	body		SavingsEditable	true	"Savings"
// @Router			/savings/{id} [patch]
func UpdateSavings(c *gin.Context) {
	savings, ok := getResource[models.Savings](c)
	if !ok {
		return
	}

	var data SavingsEditable
	updateFields, err := bindEditable(c, &data, false, savingsRequired...)
	if err == nil {
		err = checkAmounts(data.Amount)
	}
	if err == nil && slices.Contains(updateFields, any("Type")) && !validSavingsType(data.Type) {
		err = errSavingsType
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = updateResource(&savings, updateFields, data.model(savings.UserID))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newSavings(savings))
}

// @Summary		Delete savings entry
// @Description	Deletes a savings entry
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/savings/{id} [delete]
func DeleteSavings(c *gin.Context) {
	deleteResource[models.Savings](c, "Savings")
}
