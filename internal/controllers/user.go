package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fintrack-ph/backend/internal/auth"
	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Auth serves sign up, sign in and the account of the authenticated user.
type Auth struct {
	issuer *auth.Issuer
}

func NewAuth(issuer *auth.Issuer) Auth {
	return Auth{issuer: issuer}
}

// RegisterAuthRoutes registers the routes for signing up, in and out
// with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, a Auth) {
	r.OPTIONS("/sign-up", httputil.OptionsPost)
	r.POST("/sign-up", a.SignUp)
	r.OPTIONS("/sign-in", httputil.OptionsPost)
	r.POST("/sign-in", a.SignIn)
	r.OPTIONS("/sign-out", httputil.OptionsPost)
	r.POST("/sign-out", a.issuer.Middleware(), a.SignOut)
}

// RegisterUserRoutes registers the routes for the account of the
// authenticated user with the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup, a Auth) {
	{
		r.OPTIONS("", httputil.OptionsGetPatch)
		r.GET("", GetUser)
		r.PATCH("", UpdateUser)
	}

	{
		r.OPTIONS("/sessions", httputil.OptionsGet)
		r.GET("/sessions", GetSessions)
		r.OPTIONS("/sessions/:id", httputil.OptionsDelete)
		r.DELETE("/sessions/:id", RevokeSession)
	}

	{
		r.OPTIONS("/change-password", httputil.OptionsPost)
		r.POST("/change-password", a.ChangePassword)
	}
}

// validEmail reports whether s is a syntactically valid email address.
func validEmail(s string) bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return s != ""
	}
	return v.Var(s, "required,email") == nil
}

// respondSession starts a session for the user and writes it as response.
func (a Auth) respondSession(c *gin.Context, code int, user models.User) {
	session, token, err := a.issuer.StartSession(c, user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(code, SessionResponse{
		User:      newUser(user),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	})
}

// @Summary		Sign up
// @Description	Creates a new account and signs it in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			account	body		SignUpRequest	true	"Account"
// @Router			/auth/sign-up [post]
func (a Auth) SignUp(c *gin.Context) {
	var data SignUpRequest
	_, err := bindEditable(c, &data, true, "Name", "Email", "Password")
	if err == nil && !validEmail(models.NormalizeEmail(data.Email)) {
		err = errInvalidEmail
	}
	if err == nil && len(data.Password) < auth.MinPasswordLength {
		err = errPasswordTooShort
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	hash, err := a.issuer.HashPassword(data.Password)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := models.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	a.respondSession(c, http.StatusCreated, user)
}

// @Summary		Sign in
// @Description	Starts a new session. The session token is returned and set as cookie.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		SignInRequest	true	"Credentials"
// @Router			/auth/sign-in [post]
func (a Auth) SignIn(c *gin.Context) {
	var data SignInRequest
	_, err := bindEditable(c, &data, true, "Email", "Password")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", models.NormalizeEmail(data.Email)).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrInvalidCredentials
	}
	if err == nil && !auth.CheckPassword(user.PasswordHash, data.Password) {
		err = auth.ErrInvalidCredentials
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	a.respondSession(c, http.StatusOK, user)
}

// @Summary		Sign out
// @Description	Revokes the current session and clears the session cookie
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/auth/sign-out [post]
func (a Auth) SignOut(c *gin.Context) {
	err := a.issuer.EndSession(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: "Signed out successfully",
	})
}

// @Summary		Get user
// @Description	Returns the authenticated user
// @Tags			User
// @Produce		json
// @Success		200	{object}	User
// @Failure		401	{object}	httpError
// @Router			/user [get]
func GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, newUser(auth.CurrentUser(c)))
}

// @Summary		Update user
// @Description	Updates the profile of the authenticated user
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200		{object}	User
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		UserEditable	true	"User"
// @Router			/user [patch]
func UpdateUser(c *gin.Context) {
	user := auth.CurrentUser(c)

	var data UserEditable
	updateFields, err := bindEditable(c, &data, false, "Name")
	if err == nil && len(updateFields) > 0 {
		err = models.DB.Model(&user).Select("", updateFields...).Updates(models.User{
			Name:  data.Name,
			Image: data.Image,
		}).Error
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newUser(user))
}

// @Summary		Get sessions
// @Description	Returns the active sessions of the authenticated user, newest first
// @Tags			User
// @Produce		json
// @Success		200	{array}		Session
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/user/sessions [get]
func GetSessions(c *gin.Context) {
	var sessions []models.Session
	err := owned(c).
		Where("revoked = ? AND expires_at > ?", false, time.Now().UTC()).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	current := auth.CurrentSession(c)
	data := make([]Session, 0, len(sessions))
	for _, session := range sessions {
		data = append(data, newSession(session, current))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Revoke session
// @Description	Signs out another session of the authenticated user. The current session is ended with sign out.
// @Tags			User
// @Produce		json
// @Success		200	{object}	messageResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/user/sessions/{id} [delete]
func RevokeSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil && uri.ID.UUID == auth.CurrentSession(c).ID {
		err = errRevokeCurrent
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var session models.Session
	err = owned(c).First(&session, "id = ?", uri.ID).Error
	if err == nil {
		err = models.DB.Model(&session).Update("revoked", true).Error
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: "Session revoked successfully",
	})
}

// @Summary		Change password
// @Description	Changes the password of the authenticated user. Other sessions can be signed out at the same time.
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200			{object}	messageResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			passwords	body		ChangePasswordRequest	true	"Passwords"
// @Router			/user/change-password [post]
func (a Auth) ChangePassword(c *gin.Context) {
	var data ChangePasswordRequest
	_, err := bindEditable(c, &data, true, "CurrentPassword", "NewPassword")
	if err == nil && len(data.NewPassword) < auth.MinPasswordLength {
		err = errPasswordTooShort
	}

	user := auth.CurrentUser(c)
	if err == nil && !auth.CheckPassword(user.PasswordHash, data.CurrentPassword) {
		err = errWrongPassword
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	hash, err := a.issuer.HashPassword(data.NewPassword)
	if err == nil {
		err = models.DB.Model(&user).Update("password_hash", hash).Error
	}
	if err == nil && data.RevokeOtherSessions {
		err = owned(c).Model(&models.Session{}).
			Where("id <> ?", auth.CurrentSession(c).ID).
			Update("revoked", true).Error
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: "Password changed successfully",
	})
}
