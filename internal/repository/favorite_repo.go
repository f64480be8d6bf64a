package repository

import (
	"context"

	"onlinelibrary/internal/domain/catalog"
	"onlinelibrary/internal/domain/favorite"

	"gorm.io/gorm"
)

// FavoriteRepository manages the per-user bookmark set over books.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, bookID int64) error
	Remove(ctx context.Context, userID, bookID int64) error
	BooksByUserID(ctx context.Context, userID int64) ([]catalog.Book, error)
	Exists(ctx context.Context, userID, bookID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the (user, book) join row. The pre-check gives a clear
// duplicate error; the composite primary key is what actually guards
// against two concurrent adds, so a duplicate-key failure from a lost
// race maps to the same error.
func (r *favoriteRepository) Add(ctx context.Context, userID, bookID int64) error {
	exists, err := r.Exists(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if exists {
		return favorite.ErrAlreadyFavorite
	}

	f := &favorite.Favorite{
		UserID: userID,
		BookID: bookID,
	}

	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if isDuplicateKey(err) {
			return favorite.ErrAlreadyFavorite
		}
		return err
	}

	return nil
}

// Remove deletes the join row; ErrNotFavorite when it was never added.
func (r *favoriteRepository) Remove(ctx context.Context, userID, bookID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&favorite.Favorite{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return favorite.ErrNotFavorite
	}

	return nil
}

// BooksByUserID returns the book entities the user has favorited, not
// the join rows, with authors and genres loaded.
func (r *favoriteRepository) BooksByUserID(ctx context.Context, userID int64) ([]catalog.Book, error) {
	books := make([]catalog.Book, 0)

	err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.book_id = books.id").
		Where("favorites.user_id = ?", userID).
		Preload("Authors").
		Preload("Genres").
		Order("books.id").
		Find(&books).Error

	return books, err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, bookID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&favorite.Favorite{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
