package repository

import (
	"context"
	"errors"
	"strings"

	"onlinelibrary/internal/domain/catalog"
	"onlinelibrary/internal/domain/favorite"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// GetAll returns every book with authors and genres eagerly loaded.
// The catalog has no pagination; the full set is the contract.
func (r *BookRepository) GetAll(ctx context.Context) ([]catalog.Book, error) {
	books := make([]catalog.Book, 0)

	err := r.db.WithContext(ctx).
		Preload("Authors").
		Preload("Genres").
		Order("books.id").
		Find(&books).Error

	return books, err
}

// GetByID fetches one book with its associations. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*catalog.Book, error) {
	var book catalog.Book

	err := r.db.WithContext(ctx).
		Preload("Authors").
		Preload("Genres").
		First(&book, id).Error
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// Create persists the book together with any nested authors and genres.
// Nested entries with a zero id are inserted; entries carrying an id are
// attached through the join tables.
func (r *BookRepository) Create(ctx context.Context, book *catalog.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// Delete removes the book, its favorite rows and its join-table rows in
// one transaction. Returns gorm.ErrRecordNotFound for an unknown id.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book catalog.Book
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		if err := tx.Where("book_id = ?", id).Delete(&favorite.Favorite{}).Error; err != nil {
			return err
		}

		// Select(clause.Associations) clears the book_authors and
		// book_genres rows; the authors and genres themselves stay.
		return tx.Select(clause.Associations).Delete(&book).Error
	})
}

func (r *BookRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalog.Book{}).
		Where("id = ?", id).
		Count(&count).Error

	return count > 0, err
}

// isDuplicateKey reports whether err is a uniqueness-constraint
// violation, across the postgres and sqlite drivers.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
