package middleware

import (
	"context"  // Context for store lookups
	"net/http" // HTTP status codes
	"time"     // Cookie lifetime

	"kasir/internal/domain" // Importing domain models
	"kasir/internal/utils"  // Session token functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SessionCookie is the name of the login cookie
const SessionCookie = "kasir_session"

const currentUserKey = "currentUser"

// UserLoader resolves the user stored in a session
type UserLoader interface {
	UserWithStore(ctx context.Context, id uint) (*domain.User, error)
}

// SessionMiddleware loads the logged in user when the request carries a valid session
// cookie. Requests without one pass through untouched.
func SessionMiddleware(secret string, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie) // Read session cookie
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}
		claims, err := utils.ParseSessionToken(tokenStr, secret)
		if err != nil {
			c.Next() // Expired or forged cookie, treat as logged out
			return
		}
		user, err := users.UserWithStore(c.Request.Context(), claims.UserID)
		if err != nil {
			// Deleted user or database failure, either way nobody is logged in
			logrus.WithFields(logrus.Fields{"user_id": claims.UserID, "error": err.Error()}).Warn("Session user not loaded")
			c.Next()
			return
		}
		c.Set(currentUserKey, user) // Store user in context
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by SessionMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

// SetSessionCookie logs the user in on this browser
func SetSessionCookie(c *gin.Context, userID uint, secret string, secure bool) error {
	token, err := utils.GenerateSessionToken(userID, secret, time.Now())
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", secure, true)
	return nil
}

// ClearSessionCookie logs the browser out
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
