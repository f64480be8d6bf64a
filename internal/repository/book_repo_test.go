package repository

import (
	"context"
	"testing"

	"onlinelibrary/internal/database"
	"onlinelibrary/internal/domain/auth"
	"onlinelibrary/internal/domain/catalog"
	"onlinelibrary/internal/domain/favorite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory SQLite database. The pool is
// pinned to one connection so every query sees the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&auth.User{},
		&catalog.Author{},
		&catalog.Genre{},
		&catalog.Book{},
		&favorite.Favorite{},
	))

	return db
}

func TestBookRepository_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	book := &catalog.Book{
		Title:   "Dune",
		Authors: []catalog.Author{{Name: "Frank Herbert"}},
		Genres:  []catalog.Genre{{Name: "Science Fiction"}, {Name: "Adventure"}},
	}

	require.NoError(t, repo.Create(ctx, book))
	require.NotZero(t, book.ID)

	got, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)

	assert.Equal(t, "Dune", got.Title)
	require.Len(t, got.Authors, 1)
	assert.Equal(t, "Frank Herbert", got.Authors[0].Name)
	assert.NotZero(t, got.Authors[0].ID)
	require.Len(t, got.Genres, 2)
}

func TestBookRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookRepository_GetAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	books, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	require.NoError(t, repo.Create(ctx, &catalog.Book{Title: "1984"}))
	require.NoError(t, repo.Create(ctx, &catalog.Book{
		Title:   "Good Omens",
		Authors: []catalog.Author{{Name: "Neil Gaiman"}, {Name: "Terry Pratchett"}},
	}))

	books, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "1984", books[0].Title)
	assert.Len(t, books[1].Authors, 2)
}

func TestBookRepository_Delete_CascadesFavorites(t *testing.T) {
	db := setupTestDB(t)
	books := NewBookRepository(db)
	users := NewUserRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	book := &catalog.Book{
		Title:   "1984",
		Authors: []catalog.Author{{Name: "George Orwell"}},
	}
	require.NoError(t, books.Create(ctx, book))

	u1 := &auth.User{Email: "a@example.com", PasswordHash: "x", Role: auth.RoleClient}
	u2 := &auth.User{Email: "b@example.com", PasswordHash: "x", Role: auth.RoleClient}
	require.NoError(t, users.Create(ctx, u1))
	require.NoError(t, users.Create(ctx, u2))

	require.NoError(t, favorites.Add(ctx, u1.ID, book.ID))
	require.NoError(t, favorites.Add(ctx, u2.ID, book.ID))

	require.NoError(t, books.Delete(ctx, book.ID))

	_, err := books.GetByID(ctx, book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// favorite rows of every user are gone
	var favCount int64
	require.NoError(t, db.Model(&favorite.Favorite{}).Count(&favCount).Error)
	assert.Zero(t, favCount)

	// join rows are gone, the author itself stays
	var joinCount int64
	require.NoError(t, db.Table("book_authors").Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	var authorCount int64
	require.NoError(t, db.Model(&catalog.Author{}).Count(&authorCount).Error)
	assert.EqualValues(t, 1, authorCount)
}

func TestBookRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)

	err := repo.Delete(context.Background(), 123)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	book := &catalog.Book{Title: "Dune"}
	require.NoError(t, repo.Create(ctx, book))

	ok, err = repo.Exists(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
