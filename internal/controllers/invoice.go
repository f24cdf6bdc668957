package controllers

import (
	"net/http"
	"time"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterInvoiceRoutes registers the routes for invoices with
// the RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvoiceList)
		r.GET("", GetInvoices)
		r.POST("", CreateInvoice)
	}

	// Invoice with ID
	{
		r.OPTIONS("/:id", OptionsInvoiceDetail)
		r.GET("/:id", GetInvoice)
		r.PATCH("/:id", UpdateInvoice)
		r.DELETE("/:id", DeleteInvoice)
	}
}

func today() types.Date {
	return types.DateOf(time.Now())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/invoices [options]
func OptionsInvoiceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	resourceOptionsDetail[models.Invoice](c)
}

// @Summary		Create invoice
// @Description	Creates a new invoice with the next invoice number. Item amounts, subtotal and total are calculated.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		201		{object}	Invoice
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/invoices [post]
func CreateInvoice(c *gin.Context) {
	var data InvoiceEditable
	_, err := bindEditable(c, &data, true, invoiceRequired...)
	if err == nil {
		err = data.validate()
	}
	if err == nil && data.DueDate.Before(data.Date) {
		err = errInvoiceDueDate
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	invoice := data.model(userID(c))
	err = models.CreateNumbered(models.DB, invoice.UserID, models.SequenceInvoice, func(tx *gorm.DB, n uint) error {
		invoice.InvoiceNumber = models.FormatInvoiceNumber(n)
		return tx.Create(&invoice).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newInvoice(invoice, today()))
}

// @Summary		Get invoices
// @Description	Returns the invoices of the user, latest date first
// @Tags			Invoices
// @Produce		json
// @Success		200		{array}		Invoice
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			status	query		string	false	"Filter by status, 'all' for no filter"
// @Router			/invoices [get]
func GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var invoices []models.Invoice
	err = filtered(owned(c), filter.model(), queryFields).
		Preload("Items").
		Order("date DESC, created_at DESC").
		Find(&invoices).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	t := today()
	data := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		data = append(data, newInvoice(invoice, t))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get invoice
// @Description	Returns a specific invoice with its items
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	Invoice
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	invoice, ok := getResource[models.Invoice](c, "Items")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newInvoice(invoice, today()))
}

// @Summary		Update invoice
// @Description	Update an existing invoice. Only values to be updated need to be specified.
// @Description	Items sent replace all existing items. Totals are recalculated when items or tax change.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200		{object}	Invoice
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/invoices/{id} [patch]
func UpdateInvoice(c *gin.Context) {
	invoice, ok := getResource[models.Invoice](c, "Items")
	if !ok {
		return
	}

	var data InvoiceEditable
	updateFields, err := bindEditable(c, &data, false, invoiceRequired...)
	if err == nil {
		err = data.validate()
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	replaceItems := slices.Contains(updateFields, any("Items"))
	recalculate := replaceItems || slices.Contains(updateFields, any("Tax"))

	// Dates and totals are checked on the invoice as it looks after the update
	merged := invoice
	if slices.Contains(updateFields, any("Date")) {
		merged.Date = data.Date
	}
	if slices.Contains(updateFields, any("DueDate")) {
		merged.DueDate = data.DueDate
	}
	if merged.DueDate.Before(merged.Date) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errInvoiceDueDate.Error(),
		})
		return
	}

	update := data.model(invoice.UserID)
	if recalculate {
		if slices.Contains(updateFields, any("Tax")) {
			merged.Tax = data.Tax
		}
		if replaceItems {
			merged.Items = update.Items
		}
		merged.Recalculate()

		update.Items = merged.Items
		update.Subtotal = merged.Subtotal
		update.Total = merged.Total
		updateFields = append(updateFields, "Subtotal", "Total")
	}

	// Items are written separately from the columns
	columns := slices.DeleteFunc(slices.Clone(updateFields), func(f any) bool { return f == "Items" })

	items := update.Items
	update.Items = nil

	if len(columns) > 0 {
		err = models.DB.Transaction(func(tx *gorm.DB) error {
			if replaceItems {
				err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error
				if err != nil {
					return err
				}

				for n := range items {
					items[n].InvoiceID = invoice.ID
				}

				err = tx.Create(&items).Error
				if err != nil {
					return err
				}
			}

			return tx.Model(&invoice).Select("", columns...).Updates(update).Error
		})
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	invoice, err = reload[models.Invoice](c, invoice.ID, "Items")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newInvoice(invoice, today()))
}

// @Summary		Delete invoice
// @Description	Deletes an invoice and its items
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	deleteResource[models.Invoice](c, "Invoice")
}
