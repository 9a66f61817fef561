// Package tui provides the terminal user interface for muster.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osalguero/muster/internal/config"
	"github.com/osalguero/muster/internal/roster"
	"github.com/osalguero/muster/internal/tui/canvas"
	"github.com/osalguero/muster/internal/tui/commands"
	"github.com/osalguero/muster/internal/tui/theme"
)

// noHover marks that the pointer is over no card.
const noHover = -1

// notifier is the owner-notification sink handed to the canvas. The canvas
// fires it after mutating the roster; the host consumes the flag on its next
// update step and persists. Single-threaded under the Bubble Tea event loop.
type notifier struct {
	pending bool
}

func (n *notifier) mark() {
	n.pending = true
}

func (n *notifier) consume() bool {
	p := n.pending
	n.pending = false
	return p
}

// Model is the main TUI model. It is the external owner of the roster:
// it holds the shared handle, reads the theme flag each render, and
// persists the roster after the canvas signals a mutation.
type Model struct {
	// Dependencies
	repo   roster.Repository
	config *config.Config

	// Theme and styles
	theme    *theme.Theme
	styles   *Styles
	darkMode bool

	// Shared roster and the canvas core
	handle  *roster.Handle
	canvas  *canvas.Canvas
	updated *notifier

	// Hover tracking for mouse translation
	hovered        int
	lastClickIndex int
	lastClickTime  time.Time

	// Terminal dimensions and layout
	width  int
	height int

	// Overlay renderer for the tooltip
	overlay TooltipOverlay

	// Cached render data
	layoutCache LayoutCache
	renderCache *RenderCache

	loading bool

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error

	// Injectable clock for double-click detection
	nowFunc func() time.Time
}

// New creates a new TUI model.
func New(repo roster.Repository, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to grimdark on error
		t, _ = theme.Load("grimdark")
	}

	styles := NewStyles(t)

	handle := roster.NewHandle(nil)
	updated := &notifier{}

	m := &Model{
		repo:           repo,
		config:         cfg,
		theme:          t,
		styles:         styles,
		darkMode:       t.Dark,
		handle:         handle,
		updated:        updated,
		hovered:        noHover,
		lastClickIndex: noHover,
		overlay:        NewTooltipOverlay(styles.colorTooltip),
		renderCache:    &RenderCache{},
		loading:        repo != nil,
		nowFunc:        time.Now,
	}
	m.canvas = canvas.New(handle, updated.mark)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.LoadRoster(m.repo)
}

// Run starts the TUI.
func Run(repo roster.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo roster.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
