package term

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakui/oak/component"
	"github.com/oakui/oak/event"
	"github.com/oakui/oak/input"
)

// Loop drives a bubbletea program that translates terminal input into
// the unified input model, dispatches it and mirrors it onto the event
// bus targeted at a root component.
type Loop struct {
	Root       component.ID
	Dispatcher *input.Dispatcher
	Sender     event.Sender

	view func() string
}

// NewLoop wires a loop for the given root component. view renders the
// program's current screen; a nil view renders nothing.
func NewLoop(root component.ID, d *input.Dispatcher, sender event.Sender, view func() string) *Loop {
	return &Loop{Root: root, Dispatcher: d, Sender: sender, view: view}
}

// Run blocks until ctx is done or the terminal reports EOF.
func (l *Loop) Run(ctx context.Context) error {
	prog := tea.NewProgram(
		loopModel{loop: l},
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal event loop: %w", err)
	}
	return nil
}

type loopModel struct {
	loop *Loop
}

func (m loopModel) Init() tea.Cmd { return nil }

func (m loopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	l := m.loop
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if ev, ok := TranslateKey(msg); ok {
			if l.Dispatcher != nil {
				l.Dispatcher.Dispatch(ev)
			}
			l.Sender.Send(event.New(l.Root, event.KeyDown{Key: ev.Key, Mods: ev.Mods}))
		}
	case tea.MouseMsg:
		if ev, ok := TranslateMouse(msg); ok {
			if l.Dispatcher != nil {
				l.Dispatcher.Dispatch(ev)
			}
			l.Sender.Send(event.New(l.Root, busMouseType(ev)))
		}
	case tea.WindowSizeMsg:
		l.Sender.Send(event.New(l.Root, event.Resize{
			Width:  float32(msg.Width * CellWidth),
			Height: float32(msg.Height * CellHeight),
		}))
	}
	return m, nil
}

func (m loopModel) View() string {
	if m.loop.view != nil {
		return m.loop.view()
	}
	return ""
}

func busMouseType(ev input.MouseEvent) event.Type {
	switch ev.Phase {
	case input.MouseButtonDown:
		return event.MouseDown{Button: ev.Button, X: ev.X, Y: ev.Y}
	case input.MouseButtonUp:
		return event.MouseUp{Button: ev.Button, X: ev.X, Y: ev.Y}
	case input.MouseWheel:
		return event.MouseWheel{DX: ev.WheelX, DY: ev.WheelY}
	default:
		return event.MouseMove{X: ev.X, Y: ev.Y}
	}
}
