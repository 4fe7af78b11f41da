// Package services contains the operations behind the gkeyring command line:
// querying, creating and deleting keyring items through a keyring.Store.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gkeyring/internal/client/keyring"
	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/dmitrijs2005/gkeyring/internal/logging"
)

// ItemService runs one request against the secret store.
//
// Contract:
//   - Query: never fails; store errors end the result early and are logged.
//   - Create: stores a new item (never replacing one) and returns its id.
//   - Delete: removes the item selected by the request id.
type ItemService interface {
	Query(ctx context.Context, req models.Request) []models.Item
	Create(ctx context.Context, req models.Request) (uint32, error)
	Delete(ctx context.Context, req models.Request) error
}

type itemService struct {
	store keyring.Store
	log   logging.Logger
}

func NewItemService(store keyring.Store, log logging.Logger) ItemService {
	return &itemService{store: store, log: log.With("component", "items")}
}

// Query returns the items matching req. With an id it looks up that single
// item; otherwise it searches by type and attributes. Display names of search
// results are only fetched when the name column is requested.
func (s *itemService) Query(ctx context.Context, req models.Request) []models.Item {
	if req.HasID() {
		it, err := s.byID(ctx, req)
		if err != nil {
			s.log.Debug(ctx, "lookup failed", "keyring", req.Keyring, "id", req.ID, "error", err)
			return nil
		}
		return []models.Item{it}
	}

	found, err := s.store.FindItems(ctx, req.Type, req.Attributes)
	if err != nil {
		s.log.Debug(ctx, "search failed", "type", req.Type, "error", err)
		return nil
	}

	if !req.Wants(models.ColumnName) {
		return found
	}

	items := make([]models.Item, 0, len(found))
	for _, it := range found {
		kr := it.Keyring
		if kr == "" {
			kr = req.Keyring
		}
		info, err := s.store.ItemInfo(ctx, kr, it.ID)
		if err != nil {
			s.log.Debug(ctx, "item info failed", "keyring", kr, "id", it.ID, "error", err)
			break
		}
		it.DisplayName = info.DisplayName
		items = append(items, it)
	}
	return items
}

func (s *itemService) byID(ctx context.Context, req models.Request) (models.Item, error) {
	info, err := s.store.ItemInfo(ctx, req.Keyring, req.ID)
	if err != nil {
		return models.Item{}, err
	}
	attrs, err := s.store.ItemAttributes(ctx, req.Keyring, req.ID)
	if err != nil {
		return models.Item{}, err
	}
	return models.Item{
		ID:          req.ID,
		Keyring:     req.Keyring,
		Type:        req.Type,
		DisplayName: info.DisplayName,
		Secret:      info.Secret,
		Attributes:  attrs,
	}, nil
}

func (s *itemService) Create(ctx context.Context, req models.Request) (uint32, error) {
	id, err := s.store.CreateItem(ctx, req.Keyring, req.Type, req.Name, req.Attributes, req.Secret, false)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}
	s.log.Debug(ctx, "item created", "keyring", req.Keyring, "id", id)
	return id, nil
}

func (s *itemService) Delete(ctx context.Context, req models.Request) error {
	if err := s.store.DeleteItem(ctx, req.Keyring, req.ID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.log.Debug(ctx, "item deleted", "keyring", req.Keyring, "id", req.ID)
	return nil
}
