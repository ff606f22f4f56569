package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monexel/internal/errors"
	"monexel/internal/models"
	"monexel/internal/pagination"
	"monexel/internal/services"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the signup request payload.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Phone    string `json:"phone" binding:"required,phone"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// UpdateUserRequest represents the update request payload.
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=50"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
	Phone string `json:"phone" binding:"omitempty,phone"`
}

// UserResponse represents a user in the response.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

// CreateUser handles signup
// @Summary     Create a user
// @Description Register a new user account
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} UserResponse "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email or phone already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(req.Name, req.Email, req.Password, req.Phone, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": newUserResponse(user)})
}

// GetUserByID returns one user
// @Summary     Get user by ID
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} UserResponse "User details"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// GetAllUsers lists users
// @Summary     List users
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {array} UserResponse "Users"
// @Router      /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithBindingError(c, err)
		return
	}

	result, err := h.userService.GetAllUsers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	users := make([]UserResponse, 0, len(result.Data))
	for i := range result.Data {
		users = append(users, newUserResponse(&result.Data[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_items": result.TotalItems,
		"total_pages": result.TotalPages,
	})
}

// UpdateUser updates profile fields
// @Summary     Update user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Param       request body UpdateUserRequest true "Updated details"
// @Success     200 {object} UserResponse "Updated user"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Email or phone already in use"
// @Router      /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(id, req.Name, req.Email, req.Phone)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// DeleteUser removes a user
// @Summary     Delete user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} MessageResponse "User deleted"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetProfile returns the profile for an email
// @Summary     Get profile by email
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       email query string true "Email address"
// @Success     200 {object} UserResponse "User details"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "email query parameter is required"))
		return
	}

	user, err := h.userService.GetUserByEmail(email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}
