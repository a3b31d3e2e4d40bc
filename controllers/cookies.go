package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieHelper sets and clears the auth cookies: HTTP-only, SameSite=Lax,
// Secure in production.
type CookieHelper struct {
	secure bool
}

func NewCookieHelper(secure bool) *CookieHelper {
	return &CookieHelper{secure: secure}
}

func (h *CookieHelper) SetAccessToken(c *gin.Context, token string, ttl time.Duration) {
	h.setCookie(c, AccessTokenCookie, token, int(ttl.Seconds()))
}

func (h *CookieHelper) SetAuthCookies(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	h.setCookie(c, AccessTokenCookie, accessToken, int(accessTTL.Seconds()))
	h.setCookie(c, RefreshTokenCookie, refreshToken, int(refreshTTL.Seconds()))
}

func (h *CookieHelper) ClearAuthCookies(c *gin.Context) {
	h.setCookie(c, AccessTokenCookie, "", -1)
	h.setCookie(c, RefreshTokenCookie, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secure, true)
}
