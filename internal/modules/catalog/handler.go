package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"onlinelibrary/internal/domain/catalog"
	"onlinelibrary/internal/pkg/validator"
	"onlinelibrary/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	repo *repository.BookRepository
}

func NewHandler(repo *repository.BookRepository) *Handler {
	return &Handler{repo: repo}
}

// RegisterPublicRoutes mounts the read-only catalog endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBook)
	}
}

// RegisterAdminRoutes mounts the catalog write endpoints. The caller is
// expected to wrap the group in JWTAuth + AdminOnly.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.GET("/export", h.ExportBooks)
	}
}

// ListBooks handles GET /books
//
// @Summary List all books with authors and genres
// @Tags Books
// @Produce json
// @Success 200 {array} catalog.Book
// @Router /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook handles GET /books/:id
//
// @Summary Get a single book by id
// @Tags Books
// @Produce json
// @Param id path int64 true "Book ID"
// @Success 200 {object} catalog.Book
// @Failure 404 {object} map[string]string
// @Router /books/{id} [get]
func (h *Handler) GetBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	book, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get book"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /books (admin only)
//
// @Summary Create a book, optionally with nested authors and genres
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} catalog.Book
// @Failure 400 {object} map[string]string
// @Router /books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var book catalog.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book payload"})
		return
	}

	if fields := validator.Validate(book); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create book"})
		return
	}

	// reload so nested authors/genres come back with their ids
	created, err := h.repo.GetByID(c.Request.Context(), book.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load created book"})
		return
	}

	c.Header("Location", fmt.Sprintf("/books/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// DeleteBook handles DELETE /books/:id (admin only)
//
// @Summary Delete a book and its favorite references
// @Tags Books
// @Security BearerAuth
// @Param id path int64 true "Book ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete book"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportBooks handles GET /books/export (admin only)
//
// @Summary Export the catalog as a CSV attachment
// @Tags Books
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /books/export [get]
func (h *Handler) ExportBooks(c *gin.Context) {
	books, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export books"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=books.csv`)
	c.Data(http.StatusOK, "text/csv", BuildCSV(books))
}
