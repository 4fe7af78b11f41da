package keyring

import (
	"context"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
)

// Store is the subset of the secret store API used by the command line.
type Store interface {
	// Ping returns ErrUnavailable when the store cannot be reached.
	Ping(ctx context.Context) error

	// DefaultKeyring returns the name of the keyring used when none is given.
	DefaultKeyring(ctx context.Context) (string, error)

	// FindItems returns the items of type t whose attributes contain every
	// pair of attrs. Returned items carry ID, Keyring, Secret and Attributes.
	FindItems(ctx context.Context, t models.ItemType, attrs models.Attributes) ([]models.Item, error)

	// ItemInfo returns the secret and display name of one item.
	ItemInfo(ctx context.Context, keyring string, id uint32) (models.ItemInfo, error)

	// ItemAttributes returns the attributes of one item.
	ItemAttributes(ctx context.Context, keyring string, id uint32) (models.Attributes, error)

	// CreateItem stores a new item and returns its id. With replace set, an
	// item of the same type and attributes is overwritten instead.
	CreateItem(ctx context.Context, keyring string, t models.ItemType, name string, attrs models.Attributes, secret string, replace bool) (uint32, error)

	// DeleteItem removes one item.
	DeleteItem(ctx context.Context, keyring string, id uint32) error

	Close() error
}
