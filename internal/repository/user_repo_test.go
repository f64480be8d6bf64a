package repository

import (
	"context"
	"testing"

	"onlinelibrary/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &auth.User{Email: "  Reader@Example.COM ", PasswordHash: "x", Role: auth.RoleClient}
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, "reader@example.com", u.Email)

	got, err := repo.GetByEmail(ctx, "READER@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserRepository_EmailUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &auth.User{Email: "dup@example.com", PasswordHash: "x"}))

	err := repo.Create(ctx, &auth.User{Email: "dup@example.com", PasswordHash: "y"})
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &auth.User{Email: "promote@example.com", PasswordHash: "x", Role: auth.RoleClient}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.UpdateRole(ctx, u.ID, auth.RoleAdmin))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, got.Role)
}
