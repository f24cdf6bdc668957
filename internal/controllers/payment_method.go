package controllers

import (
	"errors"
	"net/http"

	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterPaymentMethodRoutes registers the routes for payment methods with
// the RouterGroup that is passed.
func RegisterPaymentMethodRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPaymentMethodList)
		r.GET("", GetPaymentMethods)
		r.POST("", CreatePaymentMethod)
	}

	// Provider detection
	{
		r.OPTIONS("/detect", OptionsDetectPaymentProvider)
		r.POST("/detect", DetectPaymentProvider)
	}

	// Payment method with ID
	{
		r.OPTIONS("/:id", OptionsPaymentMethodDetail)
		r.GET("/:id", GetPaymentMethod)
		r.PATCH("/:id", UpdatePaymentMethod)
		r.DELETE("/:id", DeletePaymentMethod)
	}
}

// maxDefaultAttempts bounds the retries when concurrent requests switch the default.
const maxDefaultAttempts = 3

// withDefaultRetry runs fn in a transaction, retrying when a concurrent
// request made another payment method the default at the same time.
func withDefaultRetry(fn func(tx *gorm.DB) error) (err error) {
	for attempt := 0; attempt < maxDefaultAttempts; attempt++ {
		err = models.DB.Transaction(fn)
		if !errors.Is(err, models.ErrDefaultConflict) {
			return err
		}
	}
	return err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payment Methods
// @Success		204
// @Router			/payment-methods [options]
func OptionsPaymentMethodList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payment Methods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/payment-methods/{id} [options]
func OptionsPaymentMethodDetail(c *gin.Context) {
	resourceOptionsDetail[models.PaymentMethod](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payment Methods
// @Success		204
// @Router			/payment-methods/detect [options]
func OptionsDetectPaymentProvider(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Detect provider
// @Description	Suggests the payment method type and provider for an account number
// @Tags			Payment Methods
// @Accept			json
// @Produce		json
// @Success		200		{object}	DetectResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			request	body		DetectRequest	true	"Account number"
// @Router			/payment-methods/detect [post]
func DetectPaymentProvider(c *gin.Context) {
	var data DetectRequest
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if data.AccountNumber == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDetectNumberNeeded.Error(),
		})
		return
	}

	detection := finance.DetectPaymentProvider(data.AccountNumber, data.Type)
	c.JSON(http.StatusOK, DetectResponse{
		Detected:  detection != nil,
		Formatted: finance.FormatCardNumber(data.AccountNumber),
		Detection: detection,
	})
}

// @Summary		Create payment method
// @Description	Creates a new payment method. When it is created as default, the previous default is unset.
// @Tags			Payment Methods
// @Accept			json
// @Produce		json
// @Success		201				{object}	PaymentMethod
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			paymentMethod	body		PaymentMethodEditable	true	"Payment method"
// @Router			/payment-methods [post]
func CreatePaymentMethod(c *gin.Context) {
	var data PaymentMethodEditable
	_, err := bindEditable(c, &data, true, paymentMethodRequired...)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	method := data.model(userID(c))
	method.IsDefault = false

	err = withDefaultRetry(func(tx *gorm.DB) error {
		err := tx.Create(&method).Error
		if err != nil || !data.IsDefault {
			return err
		}

		return models.SetDefaultPaymentMethod(tx, method.UserID, method.ID)
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	method.IsDefault = data.IsDefault
	c.JSON(http.StatusCreated, newPaymentMethod(method))
}

// @Summary		Get payment methods
// @Description	Returns the payment methods of the user, the default one first
// @Tags			Payment Methods
// @Produce		json
// @Success		200	{array}		PaymentMethod
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/payment-methods [get]
func GetPaymentMethods(c *gin.Context) {
	var methods []models.PaymentMethod
	err := owned(c).Order("is_default DESC, created_at DESC").Find(&methods).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]PaymentMethod, 0, len(methods))
	for _, method := range methods {
		data = append(data, newPaymentMethod(method))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get payment method
// @Description	Returns a specific payment method
// @Tags			Payment Methods
// @Produce		json
// @Success		200	{object}	PaymentMethod
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/payment-methods/{id} [get]
func GetPaymentMethod(c *gin.Context) {
	method, ok := getResource[models.PaymentMethod](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newPaymentMethod(method))
}

// @Summary		Update payment method
// @Description	Update an existing payment method. Only values to be updated need to be specified.
// @Description	Setting isDefault to true unsets the previous default in the same database transaction.
// @Tags			Payment Methods
// @Accept			json
// @Produce		json
// @Success		200				{object}	PaymentMethod
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			paymentMethod	body		PaymentMethodEditable	true	"Payment method"
// @Router			/payment-methods/{id} [patch]
func UpdatePaymentMethod(c *gin.Context) {
	method, ok := getResource[models.PaymentMethod](c)
	if !ok {
		return
	}

	var data PaymentMethodEditable
	updateFields, err := bindEditable(c, &data, false, paymentMethodRequired...)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	makeDefault := slices.Contains(updateFields, any("IsDefault")) && data.IsDefault
	if makeDefault {
		updateFields = slices.DeleteFunc(updateFields, func(f any) bool { return f == "IsDefault" })
	}

	if len(updateFields) > 0 || makeDefault {
		err = withDefaultRetry(func(tx *gorm.DB) error {
			if len(updateFields) > 0 {
				err := tx.Model(&method).Select("", updateFields...).Updates(data.model(method.UserID)).Error
				if err != nil {
					return err
				}
			}

			if !makeDefault {
				return nil
			}
			return models.SetDefaultPaymentMethod(tx, method.UserID, method.ID)
		})
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	method, err = reload[models.PaymentMethod](c, method.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newPaymentMethod(method))
}

// @Summary		Delete payment method
// @Description	Deletes a payment method
// @Tags			Payment Methods
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/payment-methods/{id} [delete]
func DeletePaymentMethod(c *gin.Context) {
	deleteResource[models.PaymentMethod](c, "Payment method")
}
