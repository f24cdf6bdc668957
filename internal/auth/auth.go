package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fintrack-ph/backend/internal/config"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("the session token is invalid or expired")
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 8

// Claims are the claims of a session token. The session ID references
// a row in the sessions table, which makes tokens revocable.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies sessions and their tokens.
type Issuer struct {
	secret       []byte
	ttl          time.Duration
	cookieName   string
	secureCookie bool
	bcryptCost   int

	// now is replaced in tests
	now func() time.Time
}

func NewIssuer(c config.AuthConfig) *Issuer {
	return &Issuer{
		secret:       []byte(c.Secret),
		ttl:          c.SessionTTL,
		cookieName:   c.CookieName,
		secureCookie: c.SecureCookie,
		bcryptCost:   c.BcryptCost,
		now:          time.Now,
	}
}

// HashPassword hashes a password with bcrypt.
func (i *Issuer) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), i.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Sign creates the token for a session.
func (i *Issuer) Sign(session models.Session) (string, error) {
	claims := Claims{
		SessionID: session.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(i.now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies a token and returns the ID of its session.
func (i *Issuer) Parse(token string) (uuid.UUID, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// StartSession stores a new session for the user, signs its token and
// sets the session cookie.
func (i *Issuer) StartSession(c *gin.Context, user models.User) (models.Session, string, error) {
	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: i.now().Add(i.ttl).UTC(),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	err := models.DB.Create(&session).Error
	if err != nil {
		return models.Session{}, "", err
	}

	token, err := i.Sign(session)
	if err != nil {
		return models.Session{}, "", err
	}

	i.setCookie(c, token, int(i.ttl.Seconds()))
	return session, token, nil
}

// EndSession revokes the current session and clears the cookie.
func (i *Issuer) EndSession(c *gin.Context) error {
	session := CurrentSession(c)
	err := models.DB.Model(&session).Update("revoked", true).Error
	if err != nil {
		return err
	}

	i.setCookie(c, "", -1)
	return nil
}

func (i *Issuer) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i.cookieName, token, maxAge, "/", "", i.secureCookie, true)
}

// token returns the session token of the request. The Authorization
// header takes precedence over the cookie.
func (i *Issuer) token(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(i.cookieName); err == nil {
		return cookie
	}
	return ""
}
