package web

import (
	"net/http"
	"strings"
	"time"

	"plume/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// SessionCookie is the name of the admin session cookie
const SessionCookie = "plume_session"

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Attrs-Encoding")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SessionMiddleware decodes the admin session cookie when present.
// Requests without a valid session continue as unauthenticated;
// handlers that need an admin call requireAdmin.
func SessionMiddleware(c rweb.Context) error {
	cookieValue, err := c.GetCookie(SessionCookie)
	if err != nil || cookieValue == "" {
		c.Set("admin_username", "")
		c.Set("authenticated", false)
		return c.Next()
	}

	claims, err := models.ValidateSessionToken(cookieValue)
	if err != nil {
		// Expired or tampered cookie; not worth logging every one
		c.Set("admin_username", "")
		c.Set("authenticated", false)
		return c.Next()
	}

	c.Set("admin_username", claims.Username)
	c.Set("authenticated", true)
	return c.Next()
}

// requireAdmin reports whether the request carries a valid admin
// session, returning the username when it does.
func requireAdmin(c rweb.Context) (string, bool) {
	authenticated, _ := c.Get("authenticated").(bool)
	if !authenticated {
		return "", false
	}
	username, _ := c.Get("admin_username").(string)
	return username, username != ""
}

// redirectToLogin sends browsers to the admin login page
func redirectToLogin(c rweb.Context) error {
	c.Response().SetHeader("Location", "/admin/login")
	c.SetStatus(http.StatusFound)
	return nil
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("X-XSS-Protection", "1; mode=block")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Content Security Policy
	// Allow CDN domains for external libraries (tailwind, htmx)
	csp := []string{
		"default-src 'self'",
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.tailwindcss.com https://unpkg.com", // Tailwind CDN compiles in the browser
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"font-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
	)

	err := c.Next()

	duration := time.Since(start)
	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", duration,
		"error", err,
	)

	return err
}
