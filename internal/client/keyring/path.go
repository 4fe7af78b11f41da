package keyring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/godbus/dbus/v5"
)

const (
	collectionPrefix = "/org/freedesktop/secrets/collection/"

	// schemaAttribute carries the item type on the Secret Service.
	schemaAttribute = "xdg:schema"
)

var schemas = map[models.ItemType]string{
	models.ItemTypeGeneric: "org.freedesktop.Secret.Generic",
	models.ItemTypeNetwork: "org.gnome.keyring.NetworkPassword",
	models.ItemTypeNote:    "org.gnome.keyring.Note",
}

func schemaFor(t models.ItemType) string {
	if s, ok := schemas[t]; ok {
		return s
	}
	return schemas[models.ItemTypeGeneric]
}

func typeForSchema(schema string) models.ItemType {
	for t, s := range schemas {
		if s == schema {
			return t
		}
	}
	return models.ItemTypeGeneric
}

// escapeName encodes a keyring name the way gnome-keyring builds object paths:
// ASCII letters and digits are kept, every other byte becomes "_xx".
func escapeName(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "_%02x", c)
	}
	return b.String()
}

func unescapeName(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("truncated escape in %q", s)
		}
		n, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("bad escape in %q: %w", s, err)
		}
		b.WriteByte(byte(n))
		i += 2
	}
	return b.String(), nil
}

func collectionPath(keyring string) dbus.ObjectPath {
	return dbus.ObjectPath(collectionPrefix + escapeName(keyring))
}

func itemPath(keyring string, id uint32) dbus.ObjectPath {
	return dbus.ObjectPath(fmt.Sprintf("%s/%d", collectionPath(keyring), id))
}

// keyringName returns the keyring a collection path points at.
func keyringName(p dbus.ObjectPath) (string, error) {
	rest, ok := strings.CutPrefix(string(p), collectionPrefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", fmt.Errorf("not a collection path: %q", p)
	}
	return unescapeName(rest)
}

// parseItemPath splits an item object path into keyring name and numeric id.
func parseItemPath(p dbus.ObjectPath) (string, uint32, error) {
	s := string(p)
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return "", 0, fmt.Errorf("not an item path: %q", p)
	}
	keyring, err := keyringName(dbus.ObjectPath(s[:i]))
	if err != nil {
		return "", 0, fmt.Errorf("not an item path: %q", p)
	}
	id, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil || id == 0 {
		return "", 0, fmt.Errorf("item path %q has no numeric id", p)
	}
	return keyring, uint32(id), nil
}
