package store

import (
	"io"

	"github.com/skyspeak/rouse/internal/models"
)

// DB is the routine document storage interface.
type DB interface {
	// GetSettings returns the stored document merged over defaults.
	GetSettings() (models.Settings, error)
	// SaveSettings persists the document. The document is created if it
	// doesn't exist already, or overwritten if it does.
	SaveSettings(settings *models.Settings) error
	// Reset removes the stored document
	Reset() error
	// Export serializes the current document
	Export(w io.Writer) error
	// Import merges a JSON document over the current one
	Import(r io.Reader) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
