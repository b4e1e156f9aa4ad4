package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// FileKV keeps all keys in one JSON object on disk. A sidecar .lock file
// serialises access between processes (engine and CLI share the data dir);
// mu does the same for goroutines, since a flock is held per handle.
type FileKV struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func NewFileKV(path string) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &FileKV{path: path, lock: flock.New(path + ".lock")}, nil
}

func (f *FileKV) Path() string { return f.path }

func (f *FileKV) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.lock.RLock(); err != nil {
		return "", fmt.Errorf("lock %s: %w", f.path, err)
	}
	defer f.lock.Unlock()

	m, err := f.read()
	if err != nil {
		return "", err
	}
	v, ok := m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *FileKV) Set(key, value string) error {
	return f.update(func(m map[string]string) error {
		m[key] = value
		return nil
	})
}

func (f *FileKV) Delete(key string) error {
	return f.update(func(m map[string]string) error {
		if _, ok := m[key]; !ok {
			return ErrNotFound
		}
		delete(m, key)
		return nil
	})
}

func (f *FileKV) update(fn func(map[string]string) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", f.path, err)
	}
	defer f.lock.Unlock()

	m, err := f.read()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return f.write(m)
}

func (f *FileKV) read() (map[string]string, error) {
	m := map[string]string{}
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return m, nil
}

func (f *FileKV) write(m map[string]string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
