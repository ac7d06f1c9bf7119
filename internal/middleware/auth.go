// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Adryeh/Portfolio-Creator/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session"

const (
	tokenIssuer   = "portfolio-creator"
	tokenAudience = "portfolio-creator-web"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// IssueSessionCookie binds the authenticated identity to the browser session.
// With remember set, the cookie and token outlive the browsing session
// (REMEMBER_TTL_DAYS); otherwise the cookie expires with the browser and the
// token after SESSION_TTL_HOURS.
func IssueSessionCookie(c *fiber.Ctx, userID uint, username string, remember bool) error {
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	if remember {
		ttl = time.Duration(cfg.RememberTTLDays) * 24 * time.Hour
	}

	token, err := generateSessionToken(userID, username, ttl)
	if err != nil {
		return err
	}

	cookie := &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   cfg.Env == "production" || cfg.Env == "prod",
	}
	if remember {
		cookie.Expires = time.Now().Add(ttl)
	}
	c.Cookie(cookie)
	return nil
}

// ClearSessionCookie drops the session, returning the browser to anonymous.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}

// LoginRequired gates authenticated routes. Anonymous requests are redirected
// to the login page with the originally requested URL preserved in the next
// parameter so a successful login can return the user there.
func LoginRequired(c *fiber.Ctx) error {
	userID, username, ok := sessionIdentity(c)
	if !ok {
		target := "/login?next=" + url.QueryEscape(c.OriginalURL())
		return c.Redirect(target, fiber.StatusFound)
	}

	c.Locals("userID", userID)
	c.Locals("username", username)
	return c.Next()
}

// CurrentUserID returns the identity bound to the session, if any. Used by
// public handlers that redirect already-authenticated users away.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, _, ok := sessionIdentity(c)
	return userID, ok
}

func sessionIdentity(c *fiber.Ctx) (uint, string, bool) {
	tokenString := c.Cookies(SessionCookieName)
	if tokenString == "" {
		return 0, "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.SessionSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, "", false
	}
	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil || userIDVal == 0 {
		return 0, "", false
	}

	username, _ := claims["username"].(string)
	return uint(userIDVal), username, true
}

// generateSessionToken creates the signed session token for the given identity.
func generateSessionToken(userID uint, username string, ttl time.Duration) (string, error) {
	if cfg.SessionSecret == "" {
		return "", fmt.Errorf("session secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}
