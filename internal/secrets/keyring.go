package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService groups the app's entries in the OS keychain.
const DefaultKeyringService = "ondemand"

// KeyringKV stores each key as one keychain entry under Service.
type KeyringKV struct {
	Service string
}

func NewKeyringKV(service string) KeyringKV {
	if strings.TrimSpace(service) == "" {
		service = DefaultKeyringService
	}
	return KeyringKV{Service: service}
}

func (k KeyringKV) Get(key string) (string, error) {
	v, err := keyring.Get(k.Service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return v, err
}

func (k KeyringKV) Set(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("keyring key is empty")
	}
	return keyring.Set(k.Service, key, value)
}

func (k KeyringKV) Delete(key string) error {
	err := keyring.Delete(k.Service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
