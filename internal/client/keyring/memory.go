package keyring

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
)

// MemoryStore is a Store kept in process memory. It records how many times
// each method was called and can be told to fail a method, which makes it the
// store of choice for tests.
type MemoryStore struct {
	mu             sync.Mutex
	defaultKeyring string
	keyrings       map[string]*memoryKeyring
	unavailable    bool
	failures       map[string]error
	calls          map[string]int
}

type memoryKeyring struct {
	items  map[uint32]models.Item
	nextID uint32
}

// NewMemoryStore returns an empty store whose default keyring is defaultKeyring.
func NewMemoryStore(defaultKeyring string) *MemoryStore {
	s := &MemoryStore{
		defaultKeyring: defaultKeyring,
		keyrings:       make(map[string]*memoryKeyring),
		failures:       make(map[string]error),
		calls:          make(map[string]int),
	}
	if defaultKeyring != "" {
		s.AddKeyring(defaultKeyring)
	}
	return s
}

// AddKeyring creates an empty keyring if it does not exist yet.
func (s *MemoryStore) AddKeyring(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyring(name, true)
}

// Seed stores it as is, keeping its ID. Subsequent ids continue after it.
func (s *MemoryStore) Seed(it models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.Keyring == "" {
		it.Keyring = s.defaultKeyring
	}
	kr := s.keyring(it.Keyring, true)
	kr.items[it.ID] = it
	if it.ID >= kr.nextID {
		kr.nextID = it.ID + 1
	}
}

// SetUnavailable makes Ping report ErrUnavailable.
func (s *MemoryStore) SetUnavailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = v
}

// FailOn makes every later call of method return err.
func (s *MemoryStore) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = err
}

// Calls returns how many times method was called.
func (s *MemoryStore) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// Item returns a stored item, for assertions.
func (s *MemoryStore) Item(keyring string, id uint32) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kr := s.keyring(keyring, false)
	if kr == nil {
		return models.Item{}, false
	}
	it, ok := kr.items[id]
	return it, ok
}

func (s *MemoryStore) keyring(name string, create bool) *memoryKeyring {
	kr, ok := s.keyrings[name]
	if !ok && create {
		kr = &memoryKeyring{items: make(map[uint32]models.Item), nextID: 1}
		s.keyrings[name] = kr
	}
	return kr
}

// enter records a call and returns the configured failure, if any.
// The caller must hold s.mu.
func (s *MemoryStore) enter(method string) error {
	s.calls[method]++
	return s.failures[method]
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Ping"); err != nil {
		return err
	}
	if s.unavailable {
		return ErrUnavailable
	}
	return nil
}

func (s *MemoryStore) DefaultKeyring(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DefaultKeyring"); err != nil {
		return "", err
	}
	if s.defaultKeyring == "" {
		return "", ErrNoDefaultKeyring
	}
	return s.defaultKeyring, nil
}

func (s *MemoryStore) FindItems(ctx context.Context, t models.ItemType, attrs models.Attributes) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindItems"); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(s.keyrings))
	for name := range s.keyrings {
		names = append(names, name)
	}
	sort.Strings(names)

	var found []models.Item
	for _, name := range names {
		kr := s.keyrings[name]
		ids := make([]uint32, 0, len(kr.items))
		for id := range kr.items {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			it := kr.items[id]
			if it.Type != t || !it.Attributes.Matches(attrs) {
				continue
			}
			found = append(found, models.Item{
				ID:         it.ID,
				Keyring:    it.Keyring,
				Type:       it.Type,
				Secret:     it.Secret,
				Attributes: it.Attributes.Merge(nil),
			})
		}
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found, nil
}

func (s *MemoryStore) lookup(keyring string, id uint32) (models.Item, error) {
	kr := s.keyring(keyring, false)
	if kr == nil {
		return models.Item{}, fmt.Errorf("%w: %s", ErrKeyringNotFound, keyring)
	}
	it, ok := kr.items[id]
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s/%d", ErrNotFound, keyring, id)
	}
	return it, nil
}

func (s *MemoryStore) ItemInfo(ctx context.Context, keyring string, id uint32) (models.ItemInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ItemInfo"); err != nil {
		return models.ItemInfo{}, err
	}
	it, err := s.lookup(keyring, id)
	if err != nil {
		return models.ItemInfo{}, err
	}
	return models.ItemInfo{Secret: it.Secret, DisplayName: it.DisplayName}, nil
}

func (s *MemoryStore) ItemAttributes(ctx context.Context, keyring string, id uint32) (models.Attributes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ItemAttributes"); err != nil {
		return nil, err
	}
	it, err := s.lookup(keyring, id)
	if err != nil {
		return nil, err
	}
	return it.Attributes.Merge(nil), nil
}

func (s *MemoryStore) CreateItem(ctx context.Context, keyring string, t models.ItemType, name string, attrs models.Attributes, secret string, replace bool) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateItem"); err != nil {
		return 0, err
	}
	kr := s.keyring(keyring, false)
	if kr == nil {
		return 0, fmt.Errorf("%w: %s", ErrKeyringNotFound, keyring)
	}

	it := models.Item{
		Keyring:     keyring,
		Type:        t,
		DisplayName: name,
		Secret:      secret,
		Attributes:  attrs.Merge(nil),
	}

	if replace {
		for id, old := range kr.items {
			if old.Type == t && len(old.Attributes) == len(attrs) && old.Attributes.Matches(attrs) {
				it.ID = id
				kr.items[id] = it
				return id, nil
			}
		}
	}

	it.ID = kr.nextID
	kr.nextID++
	kr.items[it.ID] = it
	return it.ID, nil
}

func (s *MemoryStore) DeleteItem(ctx context.Context, keyring string, id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteItem"); err != nil {
		return err
	}
	if _, err := s.lookup(keyring, id); err != nil {
		return err
	}
	delete(s.keyrings[keyring].items, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
