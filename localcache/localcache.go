// Package localcache is the on-device fallback store: a directory of small
// files, one per key. It backs every save as a synchronous write-through and
// serves reads whenever the document store is unreachable or unconfigured,
// so the admin never loses state to a network failure.
package localcache

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Store reads and writes string values under <root>/<key>.json.
type Store struct {
	root string
}

var keyRE = regexp.MustCompile(`^[a-z0-9_.-]+$`)

func New(root string) (*Store, error) {
	root = filepath.Clean(strings.TrimSpace(root))
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Get returns the stored value and whether the key exists. A read error on
// an existing file is reported as absence; the cache is best-effort.
func (s *Store) Get(key string) (string, bool) {
	path, err := s.path(key)
	if err != nil {
		return "", false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Set writes the value atomically: temp file in the same directory, then
// rename over the target.
func (s *Store) Set(key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.root, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Delete removes a key; deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !keyRE.MatchString(key) {
		return "", os.ErrInvalid
	}
	return filepath.Join(s.root, key+".json"), nil
}
