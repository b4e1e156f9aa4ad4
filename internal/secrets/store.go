package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ondemand-engine/internal/config"
	"ondemand-engine/internal/domain"
)

// Storage keys. The layout matches what the mobile client keeps on device.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
)

var ErrNotFound = errors.New("secret not found")

// KV is the local key-value storage the session lives in.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// OpenKV picks the backend named in the config.
func OpenKV(cfg config.Config, dataDir string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "", config.BackendKeyring:
		return NewKeyringKV(cfg.Storage.KeyringService), nil
	case config.BackendFile:
		p := cfg.Storage.File
		if !filepath.IsAbs(p) {
			p = filepath.Join(dataDir, p)
		}
		return NewFileKV(p)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Store reads and writes the persisted session: a bearer token plus the
// serialized user it belongs to.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Save(token string, user domain.User) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(KeyAuthToken, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.kv.Set(KeyUserData, string(b)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// Token returns "" with a nil error when nobody is logged in.
func (s *Store) Token() (string, error) {
	v, err := s.kv.Get(KeyAuthToken)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return v, err
}

// CurrentUser returns nil with a nil error when no user is stored.
func (s *Store) CurrentUser() (*domain.User, error) {
	raw, err := s.kv.Get(KeyUserData)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

// Stored returns the session only when both the token and the user exist.
func (s *Store) Stored() (*domain.Session, error) {
	tok, err := s.Token()
	if err != nil || tok == "" {
		return nil, err
	}
	u, err := s.CurrentUser()
	if err != nil || u == nil {
		return nil, err
	}
	return &domain.Session{Token: tok, User: *u}, nil
}

// Clear removes both keys. Keys that are already gone are not an error.
func (s *Store) Clear() error {
	var errs []error
	for _, k := range []string{KeyAuthToken, KeyUserData} {
		if err := s.kv.Delete(k); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, fmt.Errorf("remove %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
