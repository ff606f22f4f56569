package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monexel/internal/config"
	apperrors "monexel/internal/errors"
	"monexel/internal/middleware"
	"monexel/internal/services"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// SignInRequest represents the sign-in request payload.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents the forgot-password request payload.
type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

// SignInResponse represents the sign-in response with token.
type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SignIn handles user authentication
// @Summary     Sign in
// @Description Authenticate with email and password; returns a bearer token and sets it as an HTTP-only cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignInRequest true "Credentials"
// @Success     200 {object} SignInResponse "Authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	cfg := config.Get()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cfg.CookieName, token, int(cfg.JWTExpirationDur.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  newUserResponse(user),
	})
}

// SignOut clears the token cookie
// @Summary     Sign out
// @Description Clear the authentication cookie
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Signed out"
// @Router      /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	cfg := config.Get()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// ForgotPassword resets the password for an existing email
// @Summary     Forgot password
// @Description Replace the password for the account with the given email
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body ForgotPasswordRequest true "Email and new password"
// @Success     200 {object} MessageResponse "Password updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/forgot-password [put]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	if err := h.userService.UpdatePassword(req.Email, req.NewPassword); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
