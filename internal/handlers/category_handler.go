package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "monexel/internal/errors"
	"monexel/internal/models"
	"monexel/internal/pagination"
	"monexel/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
// Omitting user_id creates a shared category usable by everyone.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=30"`
	Description string `json:"description" binding:"max=100"`
	UserID      *uint  `json:"user_id"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=30"`
	Description string `json:"description" binding:"max=100"`
}

// CategoryResponse represents a category in the response.
type CategoryResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	CreatedByUserID *uint  `json:"created_by_user_id"`
}

func newCategoryResponse(category *models.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
	if userID, ok := category.CreatedBy.UserID(); ok {
		resp.CreatedByUserID = &userID
	}
	return resp
}

// CreateCategory creates a category
// @Summary     Create a category
// @Description Create a new expense category, shared or owned by a user
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} CategoryResponse "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Name already in use"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	owner := models.SystemOwner()
	if req.UserID != nil {
		owner = models.UserOwner(*req.UserID)
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Description, owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": newCategoryResponse(category)})
}

// GetCategories lists categories
// @Summary     List categories
// @Description List all categories, or only those created by one user via ?user_id=
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       user_id query int false "Filter by creating user"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {array} CategoryResponse "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithBindingError(c, err)
		return
	}

	var result *pagination.PageResponse[models.Category]
	var err error

	if userParam := c.Query("user_id"); userParam != "" {
		userID, parseErr := strconv.ParseUint(userParam, 10, 32)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid user_id"))
			return
		}
		result, err = h.categoryService.GetCategoriesByUser(uint(userID), page)
	} else {
		result, err = h.categoryService.GetAllCategories(page)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories := make([]CategoryResponse, 0, len(result.Data))
	for i := range result.Data {
		categories = append(categories, newCategoryResponse(&result.Data[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":  categories,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_items": result.TotalItems,
		"total_pages": result.TotalPages,
	})
}

// GetCategoryByID returns one category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} CategoryResponse "Category details"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": newCategoryResponse(category)})
}

// UpdateCategory updates name/description
// @Summary     Update category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Param       request body UpdateCategoryRequest true "Updated details"
// @Success     200 {object} CategoryResponse "Updated category"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Name already in use"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": newCategoryResponse(category)})
}

// DeleteCategory removes a category
// @Summary     Delete category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
