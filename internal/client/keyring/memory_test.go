package keyring

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateFindDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("login")

	attrs := models.Attributes{"server": models.Text("example.com"), "port": models.Int(21)}
	id, err := s.CreateItem(ctx, "login", models.ItemTypeNetwork, "ftp", attrs, "pw", false)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)

	id2, err := s.CreateItem(ctx, "login", models.ItemTypeNetwork, "ftp", attrs, "pw2", false)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), id2, "replace=false never overwrites")

	found, err := s.FindItems(ctx, models.ItemTypeNetwork, models.Attributes{"port": models.Text("21")})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "pw", found[0].Secret)
	assert.Equal(t, "login", found[0].Keyring)
	assert.Empty(t, found[0].DisplayName, "search results do not carry display names")

	_, err = s.FindItems(ctx, models.ItemTypeGeneric, attrs)
	require.ErrorIs(t, err, ErrNotFound)

	info, err := s.ItemInfo(ctx, "login", 2)
	require.NoError(t, err)
	assert.Equal(t, models.ItemInfo{Secret: "pw2", DisplayName: "ftp"}, info)

	require.NoError(t, s.DeleteItem(ctx, "login", 1))
	require.ErrorIs(t, s.DeleteItem(ctx, "login", 1), ErrNotFound)

	_, err = s.ItemAttributes(ctx, "nope", 2)
	require.ErrorIs(t, err, ErrKeyringNotFound)
}

func TestMemoryStore_ReplaceOverwritesSameIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("login")
	attrs := models.Attributes{"user": models.Text("bob")}

	id, err := s.CreateItem(ctx, "login", models.ItemTypeGeneric, "a", attrs, "one", false)
	require.NoError(t, err)
	again, err := s.CreateItem(ctx, "login", models.ItemTypeGeneric, "b", attrs, "two", true)
	require.NoError(t, err)

	assert.Equal(t, id, again)
	it, ok := s.Item("login", id)
	require.True(t, ok)
	assert.Equal(t, "two", it.Secret)
}

func TestMemoryStore_SeedAndCalls(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("login")
	s.Seed(models.Item{ID: 7, Type: models.ItemTypeGeneric, Secret: "x"})

	id, err := s.CreateItem(ctx, "login", models.ItemTypeGeneric, "n", nil, "y", false)
	require.NoError(t, err)
	assert.Equal(t, uint32(8), id)

	_, _ = s.ItemInfo(ctx, "login", 7)
	_, _ = s.ItemInfo(ctx, "login", 7)
	assert.Equal(t, 2, s.Calls("ItemInfo"))
	assert.Equal(t, 0, s.Calls("FindItems"))
}

func TestMemoryStore_Failures(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("")

	_, err := s.DefaultKeyring(ctx)
	require.ErrorIs(t, err, ErrNoDefaultKeyring)

	require.NoError(t, s.Ping(ctx))
	s.SetUnavailable(true)
	require.ErrorIs(t, s.Ping(ctx), ErrUnavailable)

	boom := errors.New("boom")
	s.FailOn("CreateItem", boom)
	_, err = s.CreateItem(ctx, "x", models.ItemTypeNote, "n", nil, "s", false)
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.Close())
}
