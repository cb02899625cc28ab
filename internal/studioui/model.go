// Package studioui is the terminal front end of the Design Studio: a
// bubbletea model that turns keyboard and mouse input into controller
// events and composes the palette, canvas, tabs and panels into one view.
package studioui

import (
	"image"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/catalog"
	"github.com/wesen/studio/internal/config"
	"github.com/wesen/studio/internal/prefs"
	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/internal/views"
)

// Options wires a Model to its collaborators.
type Options struct {
	Catalog *catalog.Catalog
	UI      config.UIConfig
	// HistoryLimit is passed to the controller; 0 is unbounded.
	HistoryLimit int
	Prefs        *prefs.Store
	Logger       *zap.Logger
	// Clipboard receives exported YAML. Defaults to the system clipboard.
	Clipboard func(string) error
	// Now is the clock used for double-click detection.
	Now func() time.Time
	// NewID overrides node ID generation (tests).
	NewID func() string
}

// paletteDrag is a template being dragged from the palette.
type paletteDrag struct {
	payload catalog.Payload
	icon    string
	at      image.Point // screen position
}

// press remembers the last canvas press for double-click detection.
type press struct {
	nodeID string
	at     time.Time
}

// Model is the main application state.
type Model struct {
	Width, Height int
	Mouse         image.Point
	Cam           image.Point
	Selected      string // node id, or "" when nothing is selected
	Status        string

	ctrl      *studio.Controller
	catalog   *catalog.Catalog
	renderers *views.Registry[Renderer]
	ui        config.UIConfig
	prefs     *prefs.Store
	logger    *zap.Logger
	clipboard func(string) error
	now       func() time.Time

	search    textinput.Model
	searching bool
	drag      *paletteDrag
	lastPress press

	confirmDelete string // node awaiting delete confirmation
	welcome       bool
}

// NewModel creates the initial model with an empty canvas.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search tools"
	search.CharLimit = 32

	m := Model{
		ctrl: studio.NewController(opts.Catalog, studio.Options{
			Logger:       logger,
			HistoryLimit: opts.HistoryLimit,
			NewID:        opts.NewID,
		}),
		catalog:   opts.Catalog,
		renderers: newRegistry(opts.Catalog),
		ui:        opts.UI,
		prefs:     opts.Prefs,
		logger:    logger.Named("ui"),
		clipboard: clip,
		now:       now,
		search:    search,
		welcome:   true,
	}
	if opts.Prefs != nil {
		dismissed, err := opts.Prefs.WelcomeDismissed()
		if err != nil {
			m.logger.Warn("reading preferences", zap.Error(err))
		}
		m.welcome = !dismissed
	}
	return m
}

// Controller exposes the editing session.
func (m Model) Controller() *studio.Controller { return m.ctrl }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// toWorld converts a screen point to canvas world coordinates.
func (m Model) toWorld(pt image.Point) image.Point {
	return pt.Sub(m.layout().Get(regionCanvas).Rect.Min).Add(m.Cam)
}

func (m Model) doubleClickWindow() time.Duration {
	return time.Duration(m.ui.DoubleClickMS) * time.Millisecond
}
