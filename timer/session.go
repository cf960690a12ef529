package timer

import (
	"time"

	"github.com/skyspeak/rouse/internal/models"
)

// noStage is the dedup sentinel. Stage ids are positive, so it can never
// match a real stage.
const noStage = -1

// Session is the in-memory runtime state of one day's routine. It is
// created at startup and reset whenever the active window ends; nothing in
// it is persisted.
type Session struct {
	// CurrentTime is the wall-clock instant sampled by the last tick.
	CurrentTime time.Time

	// IsActive reports whether we are inside today's active window.
	IsActive bool

	// CurrentStage is the most recently triggered stage, or nil.
	CurrentStage *models.Stage

	// LastTriggeredID and LastWarningID identify the last stage whose
	// main/warning trigger fired, so each fires at most once per
	// occurrence.
	LastTriggeredID int
	LastWarningID   int
}

// NewSession returns a fresh inactive session.
func NewSession() *Session {
	return &Session{
		LastTriggeredID: noStage,
		LastWarningID:   noStage,
	}
}

// activate marks the start of an activation session and resets the trigger
// dedup state so stages can fire again on a new day.
func (s *Session) activate() {
	s.IsActive = true
	s.CurrentStage = nil
	s.LastTriggeredID = noStage
	s.LastWarningID = noStage
}

// deactivate ends the activation session.
func (s *Session) deactivate() {
	s.IsActive = false
	s.CurrentStage = nil
}
