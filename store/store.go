// Package store persists the routine document in a Bolt database under a
// single key.
package store

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/skyspeak/rouse/config"
	"github.com/skyspeak/rouse/internal/models"
)

const (
	settingsBucket = "settings"
	// settingsKey is the single logical key the document lives under. The
	// name is kept from the original storage format for import continuity.
	settingsKey = "morning-timer-config"
)

var pathToDB string

var (
	errRouseRunning = errors.New(
		"is rouse already running? Only one instance can be active at a time",
	)
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// GetSettings loads the stored routine document merged shallowly over the
// compiled-in defaults. A missing or empty key yields the defaults.
func (c *Client) GetSettings() (models.Settings, error) {
	settings := config.DefaultSettings()

	var raw []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(settingsKey))
		if len(v) != 0 {
			raw = make([]byte, len(v))
			copy(raw, v)
		}

		return nil
	})
	if err != nil {
		return settings, err
	}

	if raw == nil {
		return settings, nil
	}

	return config.MergeSettings(settings, raw)
}

// SaveSettings writes the routine document. It is called on every settings
// mutation.
func (c *Client) SaveSettings(settings *models.Settings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put(
			[]byte(settingsKey),
			value,
		)
	})
}

// Reset deletes the stored document so that the next load yields defaults.
func (c *Client) Reset() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Delete([]byte(settingsKey))
	})
}

// Export serializes the current document to w as indented JSON.
func (c *Client) Export(w io.Writer) error {
	settings, err := c.GetSettings()
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(b, '\n'))

	return err
}

// Import merges a user-supplied JSON document over the current one and
// saves the result. A malformed document is reported without modifying the
// stored configuration.
func (c *Client) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	current, err := c.GetSettings()
	if err != nil {
		return err
	}

	merged, err := config.MergeSettings(current, raw)
	if err != nil {
		return err
	}

	return c.SaveSettings(&merged)
}

// Open begins a database connection using the path from the last NewClient
// call.
func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errRouseRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
