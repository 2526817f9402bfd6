// Package store persists the task list as a JSON array on disk.
//
// One Store owns one file path. Writes replace the whole document through a
// temporary file and rename, so the file never holds a partial write.
// Nothing coordinates separate processes: when two invocations race, the
// last writer wins.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasker/internal/task"
)

// Store reads and writes one tasks file.
type Store struct {
	path   string
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes the store's diagnostics through logger instead of the
// package default.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New returns a Store bound to the tasks file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list from disk.
//
// A missing file is created holding an empty array. A file that does not
// decode as a JSON task array is treated as corrupted: Load emits a
// diagnostic, reinitializes the file to an empty array, and returns an
// empty list. Only I/O failures surface as errors.
func (s *Store) Load() (task.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Reset(); err != nil {
				return nil, err
			}
			return task.List{}, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	list, err := decode(data)
	if err != nil {
		s.logger.Error("corrupted tasks file, reinitializing", "path", s.path, "err", err)
		if err := s.Reset(); err != nil {
			return nil, err
		}
		return task.List{}, nil
	}
	return list, nil
}

// Save writes the whole task list to disk, replacing the previous contents.
func (s *Store) Save(list task.List) error {
	data, err := encode(list)
	if err != nil {
		return err
	}
	return s.write(data)
}

// Reset reinitializes the tasks file to an empty array.
func (s *Store) Reset() error {
	data, err := encode(nil)
	if err != nil {
		return err
	}
	return s.write(data)
}

// decode parses data as a JSON task array. The caller decides how to treat
// a failure; Load maps it to corruption recovery.
func decode(data []byte) (task.List, error) {
	var list task.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}
	if list == nil {
		// A bare JSON null unmarshals into a nil slice without error.
		return nil, fmt.Errorf("parse tasks file: top-level value is not an array")
	}
	return list, nil
}

// encode renders the on-disk document: a two-space indented JSON array with
// a trailing newline. HTML escaping is off so non-ASCII and markup
// characters are stored verbatim. A nil list encodes as [], never null.
func encode(list task.List) ([]byte, error) {
	if list == nil {
		list = task.List{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return buf.Bytes(), nil
}

// write lands data at the store path via a temporary file and rename.
func (s *Store) write(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}
