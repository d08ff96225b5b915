package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyLaunches    = "launches"
)

// DefaultAssetDir is the piece image directory used when none is configured.
const DefaultAssetDir = "graphics"

// UIPreferences stores user settings
type UIPreferences struct {
	AssetDir     string    `json:"asset_dir"`
	SoundEnabled bool      `json:"sound_enabled"`
	Volume       float64   `json:"volume"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UIPreferences {
	return &UIPreferences{
		AssetDir:     DefaultAssetDir,
		SoundEnabled: true,
		Volume:       0.5,
		LastPlayed:   time.Now(),
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory
func NewStorage() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UIPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UIPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	if prefs.AssetDir == "" {
		prefs.AssetDir = DefaultAssetDir
	}
	return prefs, err
}

// RecordLaunch increments and returns the launch counter
func (s *Storage) RecordLaunch() (int, error) {
	var count int

	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyLaunches))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &count)
			}); err != nil {
				return err
			}
		}

		count++
		data, err := json.Marshal(count)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyLaunches), data)
	})

	return count, err
}
