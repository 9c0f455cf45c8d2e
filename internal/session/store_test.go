package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"foodgram-admin/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func adminFixture() *entity.AdminSession {
	return &entity.AdminSession{
		UserID:   "u-1",
		Email:    "admin@foodgram.id",
		FullName: "Admin Satu",
		Role:     entity.RoleAdmin,
		Status:   entity.UserActive,
		Token:    "tok-abc",
	}
}

func TestStore_SaveAndCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, zap.NewNop())

	require.Nil(t, store.Current())
	assert.Empty(t, store.Token())

	admin := adminFixture()
	require.NoError(t, store.Save(admin))

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "admin@foodgram.id", current.Email)
	assert.Equal(t, "tok-abc", store.Token())

	// Slot persisted to disk
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted entity.AdminSession
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, admin.UserID, persisted.UserID)
}

func TestStore_RejectsNonAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, zap.NewNop())

	customer := adminFixture()
	customer.Role = entity.RoleCustomer

	err := store.Save(customer)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin privileges required")
	assert.Nil(t, store.Current())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_LoadRevalidatesRole(t *testing.T) {
	t.Run("restores a persisted admin", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		raw, err := json.Marshal(adminFixture())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0600))

		store := NewStore(path, zap.NewNop())

		require.NotNil(t, store.Current())
		assert.Equal(t, "tok-abc", store.Token())
	})

	t.Run("clears a persisted non-admin record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		customer := adminFixture()
		customer.Role = entity.RoleCustomer
		raw, err := json.Marshal(customer)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0600))

		store := NewStore(path, zap.NewNop())

		assert.Nil(t, store.Current())
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("clears a corrupt slot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		store := NewStore(path, zap.NewNop())

		assert.Nil(t, store.Current())
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestStore_Logout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, zap.NewNop())
	require.NoError(t, store.Save(adminFixture()))

	fired := 0
	store.SetLogoutHook(func() { fired++ })

	store.Logout()

	assert.Nil(t, store.Current())
	assert.Equal(t, 1, fired)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_ClearSkipsHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, zap.NewNop())
	require.NoError(t, store.Save(adminFixture()))

	fired := 0
	store.SetLogoutHook(func() { fired++ })

	store.Clear()

	assert.Nil(t, store.Current())
	assert.Equal(t, 0, fired)
}
