package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/backend"
	"github.com/oakui/oak/component"
	"github.com/oakui/oak/event"
	"github.com/oakui/oak/geom"
	"github.com/oakui/oak/input"
	"github.com/oakui/oak/internal/config"
	"github.com/oakui/oak/internal/term"
	"github.com/oakui/oak/render"
	"github.com/oakui/oak/theme"
	"github.com/oakui/oak/widget"
)

func geomRect(b [4]float32) geom.Rect {
	return geom.NewRect(b[0], b[1], b[2], b[3])
}

const (
	titleID  component.ID = 1
	buttonID component.ID = 2
	statusID component.ID = 3
)

type keyMap struct {
	Focus key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Focus, k.Quit}}
}

var demoKeys = keyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func defaultTheme() *theme.Theme {
	return &theme.Theme{
		Name: "oak-dark",
		Colors: map[string]theme.ColorSpec{
			"background": theme.HexSpec("#1e1e2e"),
			"accent":     theme.HexSpec("#89b4fa"),
			"outline":    theme.HexSpec("#585b70"),
			"text":       theme.HexSpec("#cdd6f4"),
		},
	}
}

func runDemo(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	themePath := fs.String("theme", "", "path to a theme file (.json, .yaml); overrides the config")
	configPath := fs.String("config", "", "path to the config file (default: ~/.config/oak/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	setupLogging(cfg)

	path := *themePath
	if path == "" {
		path = cfg.Theme.File
	}
	th := defaultTheme()
	if path != "" {
		loaded, err := theme.LoadFile(path)
		if err != nil {
			slog.Error("failed to load theme", "path", path, "error", err)
			return 1
		}
		th = loaded
	}

	m, err := newDemoModel(cfg, th)
	if err != nil {
		slog.Error("failed to set up demo", "error", err)
		return 1
	}

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := prog.Run(); err != nil {
		slog.Error("demo exited with error", "error", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// setupLogging routes slog away from the terminal the demo draws on.
func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	out := os.Stderr
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, opts)))
}

type demoModel struct {
	cfg      *config.Config
	theme    *theme.Theme
	registry *component.Registry
	dispatch *input.Dispatcher
	rx       *event.Receiver
	reader   backend.ScreenReaderBackend

	title  *widget.Label
	button *widget.Button
	status *widget.Label

	renderer *term.Renderer
	ctx      *term.Context

	keys   keyMap
	help   help.Model
	clicks int
}

func newDemoModel(cfg *config.Config, th *theme.Theme) (*demoModel, error) {
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	bus := event.NewBus(event.DefaultCapacity)
	m := &demoModel{
		cfg:      cfg,
		theme:    th,
		registry: component.NewRegistry(),
		dispatch: input.NewDispatcher(),
		rx:       bus.Subscribe(),
		reader:   backend.GetFactory().CreateScreenReader(),
		title:    widget.NewLabel(titleID, "oak widget demo"),
		button:   widget.NewButton(buttonID, "Click me", bus.Sender()),
		status:   widget.NewLabel(statusID, "clicks: 0"),
		renderer: term.NewRenderer(),
		keys:     demoKeys,
		help:     help.New(),
	}

	ctx := context.Background()
	bounds := map[component.ID][4]float32{
		titleID:  {16, 16, 320, 16},
		buttonID: {16, 48, 160, 48},
		statusID: {16, 112, 240, 16},
	}
	for _, c := range []component.Component{m.title, m.button, m.status} {
		b := bounds[c.ID()]
		if err := component.SetBounds(ctx, c, geomRect(b)); err != nil {
			return nil, err
		}
		if err := m.registry.Add(c); err != nil {
			return nil, err
		}
	}
	m.dispatch.Register(m.button)

	m.syncAccessibility(ctx)
	return m, nil
}

func (m *demoModel) syncAccessibility(ctx context.Context) {
	if props, err := m.title.Accessibility(ctx); err == nil {
		m.reader.UpdateComponent(titleID, props)
	}
	if props, err := m.button.Accessibility(ctx); err == nil {
		m.reader.UpdateComponent(buttonID, props)
	}
	if props, err := m.status.Accessibility(ctx); err == nil {
		m.reader.UpdateComponent(statusID, props)
	}
}

func (m *demoModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.cfg.Window.Title)
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.button.SetFocused(!m.button.Focused())
		default:
			if ev, ok := term.TranslateKey(msg); ok {
				m.dispatch.Dispatch(ev)
			}
		}
	case tea.MouseMsg:
		if ev, ok := term.TranslateMouse(msg); ok {
			m.dispatch.Dispatch(ev)
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	m.drainBus()
	return m, nil
}

func (m *demoModel) resize(cols, rows int) {
	width := cols * term.CellWidth
	height := (rows - 1) * term.CellHeight // reserve a row for the help bar
	if width <= 0 || height <= 0 {
		return
	}
	ctx, err := m.renderer.CreateContext(width, height)
	if err != nil {
		return
	}
	m.ctx = ctx
	m.help.Width = cols
}

// drainBus consumes pending UI events, reacting to clicks and focus
// changes.
func (m *demoModel) drainBus() {
	ctx := context.Background()
	for {
		ev, err, ok := m.rx.TryRecv()
		if !ok {
			return
		}
		if err != nil {
			continue // lagged; stale events are fine to skip here
		}
		switch ev.Type.(type) {
		case event.Click:
			m.clicks++
			m.status.SetText(fmt.Sprintf("clicks: %d", m.clicks))
			if m.cfg.AnnouncementsEnabled() {
				_ = m.reader.Announce(a11y.Announcement{
					Priority: a11y.PriorityMedium,
					Text:     fmt.Sprintf("button clicked, %d total", m.clicks),
				})
			}
			m.syncAccessibility(ctx)
		case event.FocusGained:
			m.reader.SetFocus(ev.Target)
			m.syncAccessibility(ctx)
		case event.FocusLost:
			m.reader.ClearFocus()
			m.syncAccessibility(ctx)
		}
	}
}

func (m *demoModel) View() string {
	if m.ctx == nil {
		return "loading..."
	}
	bg := m.color("background")
	text := m.color("text")
	accent := m.color("accent")
	outline := m.color("outline")

	ctx := context.Background()
	btnBounds, err := component.Bounds(ctx, m.button)
	if err != nil {
		return ""
	}

	m.ctx.BeginFrame()
	_ = m.ctx.ExecuteBatch([]render.Command{
		render.Clear{Color: bg},
		render.Text{Text: m.title.Text(), X: btnBounds.X, Y: 32, FontSize: 14, Color: text},
		render.FillRect{Rect: btnBounds, Color: accent},
		render.StrokeRect{Rect: btnBounds, Color: outline, Width: 1},
		render.Text{
			Text:     m.button.Text(),
			X:        btnBounds.X + btnBounds.Width/2,
			Y:        btnBounds.Y + btnBounds.Height/2,
			FontSize: 14,
			Color:    bg,
			Align:    render.AlignCenter,
		},
		render.Text{Text: m.status.Text(), X: btnBounds.X, Y: 128, FontSize: 14, Color: text},
	})
	m.ctx.EndFrame()

	return m.ctx.String() + "\n" + m.help.View(m.keys)
}

func (m *demoModel) color(name string) render.Color {
	c, err := m.theme.Color(name)
	if err != nil {
		return render.Black
	}
	return c.ToRender()
}
