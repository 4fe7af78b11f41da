// Package models defines keyring items, their attributes and the request
// built from the command line.
package models

import (
	"fmt"
	"strconv"
)

// ItemType classifies a keyring item.
type ItemType string

const (
	ItemTypeGeneric ItemType = "generic"
	ItemTypeNetwork ItemType = "network"
	ItemTypeNote    ItemType = "note"
)

// ItemTypes lists the accepted item types in display order.
func ItemTypes() []ItemType {
	return []ItemType{ItemTypeGeneric, ItemTypeNetwork, ItemTypeNote}
}

// ParseItemType validates s as an item type name.
func ParseItemType(s string) (ItemType, error) {
	for _, t := range ItemTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid choice: %q (choose from generic, network, note)", s)
}

// Item is a keyring item as returned by the secret store. DisplayName is only
// filled in when it was asked for.
type Item struct {
	ID          uint32
	Keyring     string
	Type        ItemType
	DisplayName string
	Secret      string
	Attributes  Attributes
}

// ItemInfo is the per-item information that is not part of a search result.
type ItemInfo struct {
	Secret      string
	DisplayName string
}

// Column names with a fixed meaning. Any other column is an attribute name.
const (
	ColumnID     = "id"
	ColumnSecret = "secret"
	ColumnName   = "name"
)

// Column renders one output column of the item. Empty values render as "".
func (it Item) Column(col string) string {
	switch col {
	case ColumnID:
		if it.ID == 0 {
			return ""
		}
		return strconv.FormatUint(uint64(it.ID), 10)
	case ColumnSecret:
		return it.Secret
	case ColumnName:
		return it.DisplayName
	}
	v, ok := it.Attributes[col]
	if !ok || v.Empty() {
		return ""
	}
	return v.String()
}
