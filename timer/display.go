package timer

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/skyspeak/rouse/internal/models"
	"github.com/skyspeak/rouse/internal/timeutil"
	"github.com/skyspeak/rouse/internal/ui"
)

// Display receives per-tick state and renders the live status line.
type Display interface {
	// Tick redraws the status line for the current instant. The stage is
	// nil until the first trigger of the session and between sessions.
	Tick(now time.Time, active bool, remaining time.Duration, stage *models.Stage)

	// Flicker toggles the stage banner between its normal and inverted
	// frames to draw attention to a stage change.
	Flicker(on bool)

	// Refresh redraws the last known state, used after a cue sequence
	// completes.
	Refresh()
}

// consoleDisplay renders a single self-overwriting status line with the
// current clock, the time left in the active window, and a colored banner
// for the current stage.
type consoleDisplay struct {
	mu sync.Mutex

	out            io.Writer
	twentyFourHour bool

	now       time.Time
	active    bool
	remaining time.Duration
	stage     *models.Stage
	inverted  bool
}

// NewConsoleDisplay returns a Display writing to standard output.
func NewConsoleDisplay(twentyFourHour bool) Display {
	return &consoleDisplay{
		out:            os.Stdout,
		twentyFourHour: twentyFourHour,
	}
}

func (c *consoleDisplay) Tick(
	now time.Time,
	active bool,
	remaining time.Duration,
	stage *models.Stage,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	c.active = active
	c.remaining = remaining
	c.stage = stage

	c.render()
}

func (c *consoleDisplay) Flicker(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inverted = on

	c.render()
}

func (c *consoleDisplay) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.render()
}

func (c *consoleDisplay) render() {
	clock := c.now.Format("15:04:05")
	if !c.twentyFourHour {
		clock = c.now.Format("03:04:05 PM")
	}

	if !c.active {
		fmt.Fprintf(
			c.out,
			"\r\033[K🕒%s %s",
			ui.Yellow(clock),
			pterm.Gray("(waiting for routine window)"),
		)

		return
	}

	line := fmt.Sprintf(
		"\r\033[K🕒%s %s left",
		ui.Yellow(clock),
		ui.Green(timeutil.FormatRemaining(c.remaining)),
	)

	if c.stage != nil {
		banner := ui.Banner(c.stage.Color, c.stage.Instruction)
		if c.inverted {
			banner = ui.InverseBanner(c.stage.Color, c.stage.Instruction)
		}

		line += "  " + banner
	}

	fmt.Fprint(c.out, line)
}
