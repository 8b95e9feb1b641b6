package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigFile     = "husbando_gacha_config.json"
	CollectionFile = "husbando_collection.json"
	LedgerFile     = "history.db"
)

// DefaultDataDir returns the default data directory.
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".anki-gacha"), nil
}

// Store reads and writes the two persisted documents. Each document is
// loaded whole and written whole on every mutation.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string            { return s.dir }
func (s *Store) ConfigPath() string     { return filepath.Join(s.dir, ConfigFile) }
func (s *Store) CollectionPath() string { return filepath.Join(s.dir, CollectionFile) }
func (s *Store) LedgerPath() string     { return filepath.Join(s.dir, LedgerFile) }

// LoadConfig reads the config document. A missing file initializes the
// documented defaults and writes them immediately.
func (s *Store) LoadConfig() (*ConfigDoc, error) {
	var cfg ConfigDoc
	ok, err := s.read(s.ConfigPath(), &cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		def := DefaultConfig()
		if err := s.SaveConfig(def); err != nil {
			return nil, err
		}
		return def, nil
	}
	cfg.normalize()
	return &cfg, nil
}

func (s *Store) SaveConfig(cfg *ConfigDoc) error {
	return s.write(s.ConfigPath(), cfg)
}

// LoadCollection reads the collection document, creating it when missing.
func (s *Store) LoadCollection() (*CollectionDoc, error) {
	var doc CollectionDoc
	ok, err := s.read(s.CollectionPath(), &doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		def := DefaultCollection()
		if err := s.SaveCollection(def); err != nil {
			return nil, err
		}
		return def, nil
	}
	doc.normalize()
	return &doc, nil
}

func (s *Store) SaveCollection(doc *CollectionDoc) error {
	return s.write(s.CollectionPath(), doc)
}

func (s *Store) read(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// write replaces the document atomically so a crash mid-write cannot leave a
// truncated file behind.
func (s *Store) write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
