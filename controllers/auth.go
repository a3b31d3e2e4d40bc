package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonwoo-kim-dev/pixelforge/apperrors"
	"github.com/yeonwoo-kim-dev/pixelforge/services"
	"github.com/yeonwoo-kim-dev/pixelforge/validators"
)

type AuthController struct {
	auth    *services.AuthService
	tokens  services.TokenService
	cookies *CookieHelper
}

func NewAuthController(auth *services.AuthService, tokens services.TokenService, cookies *CookieHelper) *AuthController {
	return &AuthController{
		auth:    auth,
		tokens:  tokens,
		cookies: cookies,
	}
}

// Register handles user registration.
func (ac *AuthController) Register(c *gin.Context) {
	req, ok := validators.ValidateRegisterRequest(c)
	if !ok {
		return
	}

	user, err := ac.auth.Register(req.Email, req.Password, req.Nickname)
	if err != nil {
		sendError(c, "Registration failed", err)
		return
	}

	sendResponse(c, http.StatusCreated, "User registered successfully", map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"nickname": user.Nickname,
	}, nil)
}

// Login verifies credentials, issues the token pair as cookies and returns
// the user. A wrong password additionally records one LoginAttempt row.
func (ac *AuthController) Login(c *gin.Context) {
	req, ok := validators.ValidateLoginRequest(c)
	if !ok {
		return
	}

	user, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.CodeInvalidPassword {
			if audited, findErr := ac.auth.FindUserByEmail(req.Email); findErr == nil {
				ac.auth.RecordLoginAttempt(audited.ID, c.ClientIP(), c.GetHeader("User-Agent"))
			}
		}
		sendError(c, "Login failed", err)
		return
	}

	accessToken, refreshToken, err := ac.auth.IssueTokens(c.Request.Context(), user.ID)
	if err != nil {
		sendError(c, "Login failed", err)
		return
	}

	ac.cookies.SetAuthCookies(c, accessToken, refreshToken, ac.tokens.AccessTTL(), ac.tokens.RefreshTTL())

	sendResponse(c, http.StatusOK, "Login successful", map[string]interface{}{
		"user": map[string]interface{}{
			"id":       user.ID,
			"email":    user.Email,
			"nickname": user.Nickname,
		},
	}, nil)
}

// Refresh mints a new access token from the refresh token, read from the
// cookie or, failing that, the refreshToken header.
func (ac *AuthController) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		refreshToken = c.GetHeader("refreshToken")
	}
	if refreshToken == "" {
		sendResponse(c, http.StatusBadRequest, "Token refresh failed", nil, "Refresh token not found")
		return
	}

	accessToken, err := ac.auth.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		sendError(c, "Token refresh failed", err)
		return
	}

	ac.cookies.SetAccessToken(c, accessToken, ac.tokens.AccessTTL())

	sendResponse(c, http.StatusOK, "Access token refreshed", map[string]interface{}{
		"accessToken": accessToken,
	}, nil)
}

// Logout revokes the refresh token and clears both cookies.
func (ac *AuthController) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(RefreshTokenCookie); err == nil {
		ac.auth.Logout(c.Request.Context(), refreshToken)
	}

	ac.cookies.ClearAuthCookies(c)

	sendResponse(c, http.StatusOK, "Logged out successfully", nil, nil)
}

// CurrentUser returns the authenticated user's profile.
func (ac *AuthController) CurrentUser(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := ac.auth.FindUserByID(userID)
	if err != nil {
		sendError(c, "Failed to retrieve user", err)
		return
	}

	sendResponse(c, http.StatusOK, "User retrieved successfully", map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"nickname":  user.Nickname,
		"createdAt": user.CreatedAt,
	}, nil)
}

// AuthMiddleware verifies the access-token cookie and stores the user id in
// the request context. Tokens are stateless; no per-request user lookup.
func (ac *AuthController) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIResponse{
				Status:  http.StatusUnauthorized,
				Message: "Authentication required",
				Error: map[string]string{
					"code":    apperrors.CodeNoAccessToken,
					"message": "No access token",
				},
			})
			return
		}

		userID, err := ac.auth.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIResponse{
				Status:  http.StatusUnauthorized,
				Message: "Authentication failed",
				Error: map[string]string{
					"code":    apperrors.CodeInvalidToken,
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
