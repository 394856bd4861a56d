package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	// EnvSessionFile is the environment variable that sets the path of the session file.
	EnvSessionFile = "DYCTL_SESSION_FILE"
)

// ErrNotFound is returned by Store.Get when the key has no value.
var ErrNotFound = errors.New("session: key not found")

// Store persists identity values across client instances.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Clearer is implemented by stores that can forget every value at once.
type Clearer interface {
	Clear() error
}

// Load reads a State from store. Missing keys are not an error.
func Load(store Store) (State, error) {
	var s State
	for key, dst := range map[string]*string{
		UserCookie:    &s.UserID,
		SessionCookie: &s.SessionID,
	} {
		v, err := store.Get(key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return State{}, fmt.Errorf("failed to load %s: %w", key, err)
		}
		*dst = v
	}
	return s, nil
}

// Save writes every field present in u to store.
func Save(store Store, u Update) error {
	if u.UserID != nil {
		if err := store.Set(UserCookie, *u.UserID); err != nil {
			return fmt.Errorf("failed to save %s: %w", UserCookie, err)
		}
	}
	if u.SessionID != nil {
		if err := store.Set(SessionCookie, *u.SessionID); err != nil {
			return fmt.Errorf("failed to save %s: %w", SessionCookie, err)
		}
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore is a Store kept in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get implements Store.
func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set implements Store.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

// Clear implements Clearer.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
	return nil
}

var (
	_ Store   = (*FileStore)(nil)
	_ Clearer = (*FileStore)(nil)
)

// FileStore implements Store as a yaml file of key/value pairs.
type FileStore struct {
	// Path overrides the file location. When empty, EnvSessionFile or DefaultPath is used.
	Path string

	mu sync.Mutex
}

// DefaultPath returns the default location of the session file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dyctl", "session.yml")
	}
	return filepath.Join(home, ".dyctl", "session.yml")
}

// GetPath returns the session file path.
func (f *FileStore) GetPath() string {
	if f.Path != "" {
		return f.Path
	}
	if path := os.Getenv(EnvSessionFile); path != "" {
		return path
	}
	return DefaultPath()
}

// Get implements Store.
func (f *FileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set implements Store.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value
	return f.write(values)
}

// Clear removes the session file. A missing file is not an error.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.GetPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (f *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(f.GetPath())
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

// header is written to the start of the session file
const header = `# Visitor identity used by dyctl for Experience API requests.
# Remove this file, or run "dyctl session clear", to start a new visitor.
`

func (f *FileStore) write(values map[string]string) error {
	path := f.GetPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
