package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail[models.Expense](c)
}

// @Summary		Create expense
// @Description	Creates a new expense. The status defaults to "Pending".
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	Expense
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func CreateExpense(c *gin.Context) {
	var data ExpenseEditable
	_, err := bindEditable(c, &data, true, expenseRequired...)
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

	expense := data.model(userID(c))
	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	expense, err = reload[models.Expense](c, expense.ID, "Category")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newExpense(expense))
}

// @Summary		Get expenses
// @Description	Returns the expenses of the user, latest date first
// @Tags			Expenses
// @Produce		json
// @Success		200			{array}		Expense
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			categoryId	query		string	false	"Filter by category ID, 'all' for no filter"
// @Param			status		query		string	false	"Filter by status, 'all' for no filter"
// @Param			description	query		string	false	"Filter by description, * matches any text"
// @Router			/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var expenses []models.Expense
	err = filtered(owned(c), filter.model(), queryFields).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if slices.Contains(setFields, "Description") {
		expenses = filterGlob(expenses, filter.Description, func(e models.Expense) string { return e.Description })
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	Expense
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	expense, ok := getResource[models.Expense](c, "Category")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	Expense
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	expense, ok := getResource[models.Expense](c)
	if !ok {
		return
	}

	var data ExpenseEditable
	updateFields, err := bindEditable(c, &data, false, expenseUpdateRequired...)
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

	err = updateResource(&expense, updateFields, data.model(expense.UserID))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	expense, err = reload[models.Expense](c, expense.ID, "Category")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	deleteResource[models.Expense](c, "Expense")
}
