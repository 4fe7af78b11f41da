package keyring

import "errors"

var (
	ErrUnavailable      = errors.New("secret service unavailable")
	ErrNotFound         = errors.New("item not found")
	ErrKeyringNotFound  = errors.New("keyring not found")
	ErrNoDefaultKeyring = errors.New("no default keyring")
	ErrDismissed        = errors.New("prompt dismissed")
)
