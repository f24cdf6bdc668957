package controllers

import (
	"net/http"

	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func RegisterNotificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNotificationList)
		r.GET("", GetNotifications)
		r.POST("", CreateNotification)
	}

	// Notification with ID
	{
		r.OPTIONS("/:id", OptionsNotificationDetail)
		r.GET("/:id", GetNotification)
		r.PATCH("/:id", UpdateNotification)
		r.DELETE("/:id", DeleteNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/notifications [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/notifications/{id} [options]
func OptionsNotificationDetail(c *gin.Context) {
	resourceOptionsDetail[models.Notification](c)
}

// @Summary		Create notification
// @Description	Creates a new notification
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		201				{object}	Notification
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/notifications [post]
func CreateNotification(c *gin.Context) {
	var data NotificationEditable
	_, err := bindEditable(c, &data, true, notificationRequired...)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	notification := data.model(userID(c))
	err = models.DB.Create(&notification).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newNotification(notification))
}

// @Summary		Get notifications
// @Description	Returns the notifications of the user. Unread notifications come first, then by reminder date.
// @Tags			Notifications
// @Produce		json
// @Success		200		{array}		Notification
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			isRead	query		bool	false	"Filter by read status"
// @Param			type	query		string	false	"Filter by type, 'all' for no filter"
// @Router			/notifications [get]
func GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	// Notifications without reminder date are sorted after the ones with one
	var notifications []models.Notification
	err = filtered(owned(c), filter.model(), queryFields).
		Order("is_read ASC").
		Order("reminder_date IS NULL, reminder_date ASC").
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]Notification, 0, len(notifications))
	for _, notification := range notifications {
		data = append(data, newNotification(notification))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get notification
// @Description	Returns a specific notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	Notification
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/notifications/{id} [get]
func GetNotification(c *gin.Context) {
	notification, ok := getResource[models.Notification](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newNotification(notification))
}

// @Summary		Update notification
// @Description	Update an existing notification, e.g. to mark it as read. Only values to be updated need to be specified.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	Notification
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/notifications/{id} [patch]
func UpdateNotification(c *gin.Context) {
	notification, ok := getResource[models.Notification](c)
	if !ok {
		return
	}

	var data NotificationEditable
	updateFields, err := bindEditable(c, &data, false, notificationRequired...)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = updateResource(&notification, updateFields, data.model(notification.UserID))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newNotification(notification))
}

// @Summary		Delete notification
// @Description	Deletes a notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	deleteResource[models.Notification](c, "Notification")
}
