package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail[models.Transaction](c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction with the next transaction ID. Currency defaults to PHP, status to "Pending".
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	Transaction
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func CreateTransaction(c *gin.Context) {
	var data TransactionEditable
	_, err := bindEditable(c, &data, true, transactionRequired...)
	if err == nil {
		err = data.validate(func(id uuid.UUID) error { return ownCategory(c, id) })
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction := data.model(userID(c))
	err = models.CreateNumbered(models.DB, transaction.UserID, models.SequenceTransaction, func(tx *gorm.DB, n uint) error {
		transaction.TransactionID = models.FormatTransactionID(n)
		return tx.Create(&transaction).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction, err = reload[models.Transaction](c, transaction.ID, "Category")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newTransaction(transaction))
}

// @Summary		Get transactions
// @Description	Returns the transactions of the user, latest date first
// @Tags			Transactions
// @Produce		json
// @Success		200			{array}		Transaction
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			type		query		string	false	"Filter by type, 'all' for no filter"
// @Param			status		query		string	false	"Filter by status, 'all' for no filter"
// @Param			categoryId	query		string	false	"Filter by category ID, 'all' for no filter"
// @Param			recipient	query		string	false	"Filter by recipient name, * matches any text"
// @Router			/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var transactions []models.Transaction
	err = filtered(owned(c), filter.model(), queryFields).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if slices.Contains(setFields, "Recipient") {
		transactions = filterGlob(transactions, filter.Recipient, func(t models.Transaction) string { return t.RecipientName })
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Transaction
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := getResource[models.Transaction](c, "Category")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newTransaction(transaction))
}

// @Summary		Update transaction
// @Description	Update an existing transaction. Only values to be updated need to be specified. The transaction ID cannot be changed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	Transaction
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, ok := getResource[models.Transaction](c)
	if !ok {
		return
	}

	var data TransactionEditable
	updateFields, err := bindEditable(c, &data, false, transactionUpdateRequired...)
	if err == nil {
		err = data.validate(func(id uuid.UUID) error { return ownCategory(c, id) })
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = updateResource(&transaction, updateFields, data.model(transaction.UserID))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction, err = reload[models.Transaction](c, transaction.ID, "Category")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newTransaction(transaction))
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	deleteResource[models.Transaction](c, "Transaction")
}
