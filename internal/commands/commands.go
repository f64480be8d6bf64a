package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"onlinelibrary/internal/domain/auth"
	"onlinelibrary/internal/repository"

	"gorm.io/gorm"
)

// Run dispatches an administrative command. Commands run instead of the
// HTTP server and exit as soon as they finish.
func Run(db *gorm.DB, args []string) error {
	switch args[0] {
	case "set-role":
		if len(args) < 3 {
			return errors.New("usage: set-role <email> <admin|client>")
		}
		return SetRole(db, args[1], args[2])
	case "clear-db":
		return ClearDB(db)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// SetRole updates a user's role by email. The role argument is matched
// case-insensitively but only 'admin' and 'client' are ever stored.
func SetRole(db *gorm.DB, email, roleArg string) error {
	ctx := context.Background()

	role := auth.UserRole(strings.ToLower(strings.TrimSpace(roleArg)))
	if !auth.ValidRole(role) {
		return errors.New("role must be 'admin' or 'client'")
	}

	users := repository.NewUserRepository(db)

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", email)
		}
		return err
	}

	if err := users.UpdateRole(ctx, user.ID, role); err != nil {
		return err
	}

	fmt.Printf("Role of %s changed to %s\n", email, role)
	return nil
}

// ClearDB deletes every row from every table, join tables included.
// No confirmation, no undo; development resets only.
func ClearDB(db *gorm.DB) error {
	// FK-safe order: referencing tables first
	tables := []string{
		"favorites",
		"book_authors",
		"book_genres",
		"books",
		"authors",
		"genres",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	fmt.Println("Database cleared")
	return nil
}
