package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budget [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/budget/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail[models.Budget](c)
}

// @Summary		Create budget
// @Description	Creates a new budget. The status is derived from the allocated and spent amounts.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	Budget
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budget [post]
func CreateBudget(c *gin.Context) {
	var data BudgetEditable
	_, err := bindEditable(c, &data, true, budgetRequired...)
	if err == nil {
		err = data.validate()
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	budget := data.model(userID(c))
	err = models.DB.Create(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newBudget(budget))
}

// @Summary		Get budgets
// @Description	Returns the budgets of the user, newest first
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		Budget
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/budget [get]
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	err := owned(c).Order("created_at DESC").Find(&budgets).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Budget
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/budget/{id} [get]
func GetBudget(c *gin.Context) {
	budget, ok := getResource[models.Budget](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newBudget(budget))
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified. The status is recalculated.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	Budget
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budget/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, ok := getResource[models.Budget](c)
	if !ok {
		return
	}

	var data BudgetEditable
	updateFields, err := bindEditable(c, &data, false, budgetRequired...)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The amounts after the update decide about validity and status
	merged := BudgetEditable{Allocated: budget.Allocated, Spent: budget.Spent}
	if slices.Contains(updateFields, any("Allocated")) {
		merged.Allocated = data.Allocated
	}
	if slices.Contains(updateFields, any("Spent")) {
		merged.Spent = data.Spent
	}

	err = merged.validate()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	update := data.model(budget.UserID)
	if len(updateFields) > 0 {
		update.Status = merged.status()
		updateFields = append(updateFields, "Status")
	}

	err = updateResource(&budget, updateFields, update)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newBudget(budget))
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/budget/{id} [delete]
func DeleteBudget(c *gin.Context) {
	deleteResource[models.Budget](c, "Budget")
}
