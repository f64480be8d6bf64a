package favorite

import (
	"onlinelibrary/internal/domain/auth"
	"onlinelibrary/internal/domain/catalog"
)

// Favorite marks a book as bookmarked by a user. The (UserID, BookID)
// pair is the primary key, so the database rejects a duplicate insert
// even when two requests race past the application-level pre-check.
type Favorite struct {
	UserID int64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	BookID int64 `json:"book_id" gorm:"primaryKey;autoIncrement:false"`

	User *auth.User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *catalog.Book `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}
