package auth

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// ValidRole reports whether r is one of the closed role set. Anything
// else is a data-entry violation and must never reach the database.
func ValidRole(r UserRole) bool {
	return r == RoleClient || r == RoleAdmin
}

type User struct {
	ID           int64    `json:"id" gorm:"primaryKey"`
	Email        string   `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
	PasswordHash string   `json:"-" gorm:"not null"`
	Role         UserRole `json:"role" gorm:"not null;default:client"`
}

func (User) TableName() string {
	return "users"
}
