package repositories

import (
	"context"
	"testing"

	"wallof.love/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIsActiveStoredAsFlag(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepositoryTx(db)
	ctx := context.Background()

	active := &models.User{Name: "Aktif", Email: "Aktif@Example.com ", Password: "x", IsActive: true}
	passive := &models.User{Name: "Pasif", Email: "pasif@example.com", Password: "x", IsActive: false}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, passive))

	rawFlag := func(id uint) string {
		var v string
		require.NoError(t, db.Raw("SELECT is_active FROM users WHERE id = ?", id).Scan(&v).Error)
		return v
	}
	assert.Equal(t, "1", rawFlag(active.ID))
	assert.Equal(t, "0", rawFlag(passive.ID))

	got, err := repo.FindByEmail(ctx, "aktif@example.com")
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	got, err = repo.FindByID(ctx, passive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
