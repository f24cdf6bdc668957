package auth

import (
	"errors"
	"net/http"

	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	contextUser    = "fintrack-user"
	contextSession = "fintrack-session"
)

// Middleware rejects requests without an active session with 401 and
// stores the user and session of all other requests in the context.
func (i *Issuer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := i.token(c)
		if token == "" {
			unauthorized(c)
			return
		}

		id, err := i.Parse(token)
		if err != nil {
			unauthorized(c)
			return
		}

		var session models.Session
		err = models.DB.Preload("User").First(&session, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, models.ErrResourceNotFound) {
				unauthorized(c)
				return
			}

			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("loading session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": models.ErrGeneral.Error()})
			return
		}

		if !session.Active(i.now()) {
			unauthorized(c)
			return
		}

		c.Set(contextSession, session)
		c.Set(contextUser, session.User)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthorized.Error()})
}

// CurrentUser returns the user authenticated by Middleware.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.MustGet(contextUser).(models.User)
	return user
}

// CurrentSession returns the session authenticated by Middleware.
func CurrentSession(c *gin.Context) models.Session {
	session, _ := c.MustGet(contextSession).(models.Session)
	return session
}
