package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"go-lawfirm-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the name of the header that must contain the CSRF token
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// EnsureCSRFToken returns the request's CSRF token, minting and setting the
// cookie when none exists yet. Used by the token-issuing endpoint.
func EnsureCSRFToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(CSRFTokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	token, err := generateCSRFToken()
	if err != nil {
		return "", err
	}
	setCSRFCookie(c, token)
	return token, nil
}

func setCSRFCookie(c *gin.Context, token string) {
	// SameSite=Lax allows the cookie on top-level navigations but not on
	// cross-site subrequests (forms, iframes)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		CSRFTokenCookieName,
		token,
		int(CSRFTokenExpiry.Seconds()),
		"/",
		"",    // Domain (empty = current domain)
		true,  // Secure (HTTPS only)
		false, // HttpOnly = false so JS can read it
	)
}

// CSRFMiddleware implements the Double-Submit Cookie pattern.
//
// On any request, if no csrf_token cookie exists one is generated and set.
// For state-changing requests (POST, PUT, DELETE, PATCH) the X-CSRF-Token
// header must exist and match the cookie. Cookies are sent automatically
// with requests, but an attacker on another origin cannot read the cookie
// value, so they cannot forge the header.
//
// EXEMPTIONS: the public submission endpoint and health checks skip
// validation. The form is posted by static marketing pages that carry no
// session; it is protected by rate limiting and the duplicate guard instead.
func CSRFMiddleware() gin.HandlerFunc {
	csrfExemptPaths := map[string]bool{
		"/api/messages": true, // Public contact form
		"/api/health":   true, // Health check
		"/health":       true,
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Exempt paths still get a cookie for future requests, but no
		// validation
		if csrfExemptPaths[path] {
			_, _ = EnsureCSRFToken(c)
			c.Next()
			return
		}

		csrfCookie, err := EnsureCSRFToken(c)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
			c.Abort()
			return
		}

		// Safe methods need no validation
		method := c.Request.Method
		if method == "GET" || method == "HEAD" || method == "OPTIONS" {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)

		if headerToken == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}

		if headerToken != csrfCookie {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
