package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"onlinelibrary/internal/domain/favorite"
	"onlinelibrary/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler serves the per-user favorites endpoints. Every route requires
// an authenticated caller; the caller id comes from the token subject.
type Handler struct {
	favorites repository.FavoriteRepository
	books     *repository.BookRepository
}

func NewHandler(favorites repository.FavoriteRepository, books *repository.BookRepository) *Handler {
	return &Handler{favorites: favorites, books: books}
}

// RegisterRoutes expects rg to be wrapped in JWTAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:bookId", h.RemoveFavorite)
	}
}

// callerID pulls the user id the auth middleware stored. A verified
// token whose subject claim is missing or non-numeric never gets one,
// and every favorites operation treats that as unauthorized.
func callerID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(int64), true
}

// ListFavorites handles GET /favorites
//
// @Summary List the caller's favorite books
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} catalog.Book
// @Failure 401 {object} map[string]string
// @Router /favorites [get]
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	books, err := h.favorites.BooksByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get favorites"})
		return
	}

	c.JSON(http.StatusOK, books)
}

// AddFavorite handles POST /favorites. The body is a bare JSON integer
// holding the book id.
//
// @Summary Add a book to the caller's favorites
// @Tags Favorites
// @Accept json
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var bookID int64
	if err := c.ShouldBindJSON(&bookID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a book id"})
		return
	}

	exists, err := h.books.Exists(c.Request.Context(), bookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}

	if err := h.favorites.Add(c.Request.Context(), userID, bookID); err != nil {
		if errors.Is(err, favorite.ErrAlreadyFavorite) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}

	c.String(http.StatusOK, "Book added to favorites")
}

// RemoveFavorite handles DELETE /favorites/:bookId
//
// @Summary Remove a book from the caller's favorites
// @Tags Favorites
// @Produce plain
// @Security BearerAuth
// @Param bookId path int64 true "Book ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /favorites/{bookId} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, bookID); err != nil {
		if errors.Is(err, favorite.ErrNotFavorite) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	c.String(http.StatusOK, "Book removed from favorites")
}
