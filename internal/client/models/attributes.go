package models

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrAttributeSyntax = errors.New("attribute must be name=value")
	ErrAttributeName   = errors.New("attribute name must not be empty")
	ErrAttributeInt    = errors.New("attribute value is not an integer")
)

// Value is a single attribute value. The secret store keeps both text and
// integer attributes; the zero Value is the empty text.
type Value struct {
	text  string
	num   int64
	isInt bool
}

// Text returns a text-typed attribute value.
func Text(s string) Value {
	return Value{text: s}
}

// Int returns an integer-typed attribute value.
func Int(n int64) Value {
	return Value{num: n, isInt: true}
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool {
	return v.isInt
}

// String renders v the way the secret store sees it: integers in base 10.
func (v Value) String() string {
	if v.isInt {
		return strconv.FormatInt(v.num, 10)
	}
	return v.text
}

// Empty reports whether v carries no information (empty text or integer 0).
// Empty values are rendered as empty columns.
func (v Value) Empty() bool {
	if v.isInt {
		return v.num == 0
	}
	return v.text == ""
}

// Attributes is the set of name/value pairs attached to a keyring item.
type Attributes map[string]Value

// Merge returns a new set holding a's pairs overwritten by b's.
func (a Attributes) Merge(b Attributes) Attributes {
	out := make(Attributes, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Strings converts the set to the wire form used by the Secret Service, where
// every value is text.
func (a Attributes) Strings() map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[k] = v.String()
	}
	return out
}

// Matches reports whether every pair of query is present in a with an equal
// rendered value.
func (a Attributes) Matches(query Attributes) bool {
	for k, want := range query {
		got, ok := a[k]
		if !ok || got.String() != want.String() {
			return false
		}
	}
	return true
}

// Names returns the attribute names in sorted order.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AttributesFromStrings builds a text-typed set from wire form.
func AttributesFromStrings(m map[string]string) Attributes {
	out := make(Attributes, len(m))
	for k, v := range m {
		out[k] = Text(v)
	}
	return out
}

// ParseTextAttributes parses "k1=v1,k2=v2" into text attributes.
// Empty tokens are skipped and each token is split on its first '='.
func ParseTextAttributes(s string) (Attributes, error) {
	return parseAttributes(s, func(v string) (Value, error) {
		return Text(v), nil
	})
}

// ParseIntAttributes parses "k1=v1,k2=v2" into integer attributes.
func ParseIntAttributes(s string) (Attributes, error) {
	return parseAttributes(s, func(v string) (Value, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrAttributeInt, v)
		}
		return Int(n), nil
	})
}

func parseAttributes(s string, conv func(string) (Value, error)) (Attributes, error) {
	attrs := make(Attributes)
	for _, token := range strings.Split(s, ",") {
		if token == "" {
			continue
		}
		name, raw, ok := strings.Cut(token, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrAttributeSyntax, token)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrAttributeName, token)
		}
		v, err := conv(raw)
		if err != nil {
			return nil, err
		}
		attrs[name] = v
	}
	return attrs, nil
}
