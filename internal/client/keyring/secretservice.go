package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/dmitrijs2005/gkeyring/internal/logging"
	"github.com/godbus/dbus/v5"
)

const (
	serviceName = "org.freedesktop.secrets"
	servicePath = dbus.ObjectPath("/org/freedesktop/secrets")

	serviceIface    = "org.freedesktop.Secret.Service"
	collectionIface = "org.freedesktop.Secret.Collection"
	itemIface       = "org.freedesktop.Secret.Item"
	sessionIface    = "org.freedesktop.Secret.Session"
	promptIface     = "org.freedesktop.Secret.Prompt"

	busName  = "org.freedesktop.DBus"
	busPath  = dbus.ObjectPath("/org/freedesktop/DBus")
	busIface = "org.freedesktop.DBus"

	// noPrompt is returned in place of a prompt path when none is needed.
	noPrompt = dbus.ObjectPath("/")

	secretContentType = "text/plain"
)

// secret is the Secret Service wire struct (oayays).
type secret struct {
	Session     dbus.ObjectPath
	Parameters  []byte
	Value       []byte
	ContentType string
}

// bus is the part of *dbus.Conn the client uses.
type bus interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Signal(ch chan<- *dbus.Signal)
	RemoveSignal(ch chan<- *dbus.Signal)
	AddMatchSignalContext(ctx context.Context, options ...dbus.MatchOption) error
	RemoveMatchSignalContext(ctx context.Context, options ...dbus.MatchOption) error
	Close() error
}

// SecretService is a Store backed by the freedesktop.org Secret Service on the
// session bus. Secrets travel over a "plain" session opened on first use.
type SecretService struct {
	conn    bus
	session dbus.ObjectPath
	log     logging.Logger
}

// NewSecretService connects to the session bus. It does not check that a
// secret service is running; use Ping for that.
func NewSecretService(ctx context.Context, log logging.Logger) (*SecretService, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return newSecretService(conn, log), nil
}

func newSecretService(conn bus, log logging.Logger) *SecretService {
	return &SecretService{conn: conn, log: log.With("component", "secret-service")}
}

func (s *SecretService) service() dbus.BusObject {
	return s.conn.Object(serviceName, servicePath)
}

func (s *SecretService) object(p dbus.ObjectPath) dbus.BusObject {
	return s.conn.Object(serviceName, p)
}

// Ping checks that the service is owned or activatable and opens the session.
func (s *SecretService) Ping(ctx context.Context) error {
	daemon := s.conn.Object(busName, busPath)

	var owned bool
	if err := daemon.CallWithContext(ctx, busIface+".NameHasOwner", 0, serviceName).Store(&owned); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !owned {
		var names []string
		if err := daemon.CallWithContext(ctx, busIface+".ListActivatableNames", 0).Store(&names); err != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if !contains(names, serviceName) {
			return fmt.Errorf("%w: %s is neither running nor activatable", ErrUnavailable, serviceName)
		}
	}

	if err := s.openSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

func (s *SecretService) openSession(ctx context.Context) error {
	if s.session != "" {
		return nil
	}
	var output dbus.Variant
	var session dbus.ObjectPath
	err := s.service().CallWithContext(ctx, serviceIface+".OpenSession", 0, "plain", dbus.MakeVariant("")).
		Store(&output, &session)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	s.session = session
	s.log.Debug(ctx, "session opened", "path", session)
	return nil
}

func (s *SecretService) DefaultKeyring(ctx context.Context) (string, error) {
	var p dbus.ObjectPath
	if err := s.service().CallWithContext(ctx, serviceIface+".ReadAlias", 0, "default").Store(&p); err != nil {
		return "", mapError(err)
	}
	if p == noPrompt || p == "" {
		return "", ErrNoDefaultKeyring
	}
	return keyringName(p)
}

func (s *SecretService) FindItems(ctx context.Context, t models.ItemType, attrs models.Attributes) ([]models.Item, error) {
	if err := s.openSession(ctx); err != nil {
		return nil, err
	}

	query := attrs.Strings()
	query[schemaAttribute] = schemaFor(t)

	var unlocked, locked []dbus.ObjectPath
	if err := s.service().CallWithContext(ctx, serviceIface+".SearchItems", 0, query).Store(&unlocked, &locked); err != nil {
		return nil, mapError(err)
	}
	s.log.Debug(ctx, "search", "type", t, "unlocked", len(unlocked), "locked", len(locked))

	if len(locked) > 0 {
		more, err := s.unlock(ctx, locked)
		if err != nil {
			return nil, err
		}
		unlocked = append(unlocked, more...)
	}
	if len(unlocked) == 0 {
		return nil, ErrNotFound
	}

	var secrets map[dbus.ObjectPath]secret
	if err := s.service().CallWithContext(ctx, serviceIface+".GetSecrets", 0, unlocked, s.session).Store(&secrets); err != nil {
		return nil, mapError(err)
	}

	items := make([]models.Item, 0, len(unlocked))
	for _, p := range unlocked {
		keyring, id, err := parseItemPath(p)
		if err != nil {
			s.log.Debug(ctx, "skipping item", "path", p, "error", err)
			continue
		}
		itemAttrs, err := s.attributes(p)
		if err != nil {
			return items, err
		}
		items = append(items, models.Item{
			ID:         id,
			Keyring:    keyring,
			Type:       typeForSchema(itemAttrs[schemaAttribute].String()),
			Secret:     string(secrets[p].Value),
			Attributes: itemAttrs,
		})
	}
	return items, nil
}

func (s *SecretService) ItemInfo(ctx context.Context, keyring string, id uint32) (models.ItemInfo, error) {
	if err := s.openSession(ctx); err != nil {
		return models.ItemInfo{}, err
	}
	p := itemPath(keyring, id)
	if err := s.ensureUnlocked(ctx, p, itemIface); err != nil {
		return models.ItemInfo{}, err
	}

	var sec secret
	if err := s.object(p).CallWithContext(ctx, itemIface+".GetSecret", 0, s.session).Store(&sec); err != nil {
		return models.ItemInfo{}, mapError(err)
	}
	label, err := s.object(p).GetProperty(itemIface + ".Label")
	if err != nil {
		return models.ItemInfo{}, mapError(err)
	}
	name, _ := label.Value().(string)
	return models.ItemInfo{Secret: string(sec.Value), DisplayName: name}, nil
}

func (s *SecretService) ItemAttributes(ctx context.Context, keyring string, id uint32) (models.Attributes, error) {
	return s.attributes(itemPath(keyring, id))
}

func (s *SecretService) attributes(p dbus.ObjectPath) (models.Attributes, error) {
	v, err := s.object(p).GetProperty(itemIface + ".Attributes")
	if err != nil {
		return nil, mapError(err)
	}
	m, ok := v.Value().(map[string]string)
	if !ok {
		return nil, fmt.Errorf("unexpected attributes type %s", v.Signature())
	}
	return models.AttributesFromStrings(m), nil
}

func (s *SecretService) CreateItem(ctx context.Context, keyring string, t models.ItemType, name string, attrs models.Attributes, value string, replace bool) (uint32, error) {
	if err := s.openSession(ctx); err != nil {
		return 0, err
	}
	coll := collectionPath(keyring)
	if err := s.ensureUnlocked(ctx, coll, collectionIface); err != nil {
		return 0, err
	}

	wire := attrs.Strings()
	wire[schemaAttribute] = schemaFor(t)
	props := map[string]dbus.Variant{
		itemIface + ".Label":      dbus.MakeVariant(name),
		itemIface + ".Attributes": dbus.MakeVariant(wire),
	}
	sec := secret{
		Session:     s.session,
		Parameters:  []byte{},
		Value:       []byte(value),
		ContentType: secretContentType,
	}

	var item, prompt dbus.ObjectPath
	if err := s.object(coll).CallWithContext(ctx, collectionIface+".CreateItem", 0, props, sec, replace).Store(&item, &prompt); err != nil {
		return 0, mapError(err)
	}
	if item == noPrompt {
		result, err := s.prompt(ctx, prompt)
		if err != nil {
			return 0, err
		}
		item, _ = result.Value().(dbus.ObjectPath)
	}

	_, id, err := parseItemPath(item)
	if err != nil {
		return 0, err
	}
	s.log.Debug(ctx, "item created", "keyring", keyring, "id", id)
	return id, nil
}

func (s *SecretService) DeleteItem(ctx context.Context, keyring string, id uint32) error {
	p := itemPath(keyring, id)
	if err := s.ensureUnlocked(ctx, p, itemIface); err != nil {
		return err
	}
	var prompt dbus.ObjectPath
	if err := s.object(p).CallWithContext(ctx, itemIface+".Delete", 0).Store(&prompt); err != nil {
		return mapError(err)
	}
	_, err := s.prompt(ctx, prompt)
	return err
}

// ensureUnlocked unlocks a collection or item when its Locked property is set.
func (s *SecretService) ensureUnlocked(ctx context.Context, p dbus.ObjectPath, iface string) error {
	v, err := s.object(p).GetProperty(iface + ".Locked")
	if err != nil {
		return mapError(err)
	}
	if locked, _ := v.Value().(bool); !locked {
		return nil
	}
	unlocked, err := s.unlock(ctx, []dbus.ObjectPath{p})
	if err != nil {
		return err
	}
	if !contains(unlocked, p) {
		return fmt.Errorf("%s is still locked", p)
	}
	return nil
}

func (s *SecretService) unlock(ctx context.Context, objects []dbus.ObjectPath) ([]dbus.ObjectPath, error) {
	var unlocked []dbus.ObjectPath
	var prompt dbus.ObjectPath
	if err := s.service().CallWithContext(ctx, serviceIface+".Unlock", 0, objects).Store(&unlocked, &prompt); err != nil {
		return nil, mapError(err)
	}
	if prompt == noPrompt {
		return unlocked, nil
	}
	s.log.Debug(ctx, "waiting for unlock prompt", "objects", len(objects))
	result, err := s.prompt(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if more, ok := result.Value().([]dbus.ObjectPath); ok {
		unlocked = append(unlocked, more...)
	}
	return unlocked, nil
}

func (s *SecretService) Close() error {
	if s.session != "" {
		_ = s.object(s.session).Call(sessionIface+".Close", 0).Err
		s.session = ""
	}
	return s.conn.Close()
}

// mapError translates well-known D-Bus error names into package sentinels.
func mapError(err error) error {
	var name string
	var value dbus.Error
	var ptr *dbus.Error
	switch {
	case errors.As(err, &value):
		name = value.Name
	case errors.As(err, &ptr):
		name = ptr.Name
	default:
		return err
	}

	switch name {
	case "org.freedesktop.Secret.Error.NoSuchObject",
		"org.freedesktop.DBus.Error.UnknownObject",
		"org.freedesktop.DBus.Error.UnknownMethod":
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case "org.freedesktop.DBus.Error.ServiceUnknown",
		"org.freedesktop.DBus.Error.NoReply",
		"org.freedesktop.DBus.Error.Disconnected":
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
