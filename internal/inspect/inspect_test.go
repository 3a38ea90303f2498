package inspect

import (
	"context"
	"testing"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/component"
	"github.com/oakui/oak/geom"
	"github.com/oakui/oak/internal/stub"
)

func newTestServer(t *testing.T) (*Server, *component.Registry, *stub.ScreenReader) {
	t.Helper()
	reg := component.NewRegistry()
	reader := stub.NewScreenReader()
	s := NewServer(reg, reader, reader.Registry())
	return s, reg, reader
}

func addComponent(t *testing.T, reg *component.Registry, id component.ID, bounds geom.Rect) component.Component {
	t.Helper()
	c := component.New(id)
	if err := component.SetBounds(context.Background(), c, bounds); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}
	if err := reg.Add(c); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return c
}

func TestListComponents(t *testing.T) {
	s, reg, _ := newTestServer(t)
	addComponent(t, reg, 2, geom.NewRect(0, 0, 50, 20))
	addComponent(t, reg, 1, geom.NewRect(10, 10, 30, 30))

	_, out, err := s.handleListComponents(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("list_components: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	// IDs come back sorted.
	if out.Components[0].ID != 1 || out.Components[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", out.Components[0].ID, out.Components[1].ID)
	}
	if out.Components[1].Width != 50 {
		t.Errorf("width = %v, want 50", out.Components[1].Width)
	}
}

func TestGetComponent(t *testing.T) {
	s, reg, reader := newTestServer(t)
	addComponent(t, reg, 3, geom.NewRect(5, 6, 70, 25))
	reader.UpdateComponent(3, a11y.Props{Role: "button", Label: "OK", Focusable: true})

	_, out, err := s.handleGetComponent(context.Background(), nil, GetComponentInput{ID: 3})
	if err != nil {
		t.Fatalf("get_component: %v", err)
	}
	if out.X != 5 || out.Y != 6 {
		t.Errorf("position = (%v, %v), want (5, 6)", out.X, out.Y)
	}
	if out.Accessibility == nil {
		t.Fatal("expected accessibility props")
	}
	if out.Accessibility.Role != "button" || out.Accessibility.Label != "OK" {
		t.Errorf("accessibility = %+v", out.Accessibility)
	}
}

func TestGetComponentUnknownID(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, _, err := s.handleGetComponent(context.Background(), nil, GetComponentInput{ID: 99})
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestHitTest(t *testing.T) {
	s, reg, _ := newTestServer(t)
	addComponent(t, reg, 1, geom.NewRect(0, 0, 100, 100))
	addComponent(t, reg, 2, geom.NewRect(40, 40, 20, 20)) // added later, on top

	_, out, err := s.handleHitTest(context.Background(), nil, HitTestInput{X: 50, Y: 50})
	if err != nil {
		t.Fatalf("hit_test: %v", err)
	}
	if !out.Found || out.ID != 2 {
		t.Errorf("hit = %+v, want topmost id 2", out)
	}

	_, out, err = s.handleHitTest(context.Background(), nil, HitTestInput{X: 500, Y: 500})
	if err != nil {
		t.Fatalf("hit_test: %v", err)
	}
	if out.Found {
		t.Errorf("hit = %+v, want miss", out)
	}
}

func TestAnnounce(t *testing.T) {
	s, _, reader := newTestServer(t)

	_, out, err := s.handleAnnounce(context.Background(), nil, AnnounceInput{Text: "saved", Priority: "high"})
	if err != nil {
		t.Fatalf("announce: %v", err)
	}
	if !out.Queued || out.Backend != "stub" {
		t.Errorf("announce output = %+v", out)
	}
	cur, ok := reader.Queue().Current()
	if !ok || cur.Text != "saved" {
		t.Errorf("queue current = %+v, %v", cur, ok)
	}

	if _, _, err := s.handleAnnounce(context.Background(), nil, AnnounceInput{Text: ""}); err == nil {
		t.Error("expected error for empty text")
	}
	if _, _, err := s.handleAnnounce(context.Background(), nil, AnnounceInput{Text: "x", Priority: "urgent"}); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestSetFocus(t *testing.T) {
	s, reg, reader := newTestServer(t)
	addComponent(t, reg, 4, geom.NewRect(0, 0, 10, 10))

	_, out, err := s.handleSetFocus(context.Background(), nil, SetFocusInput{ID: 4})
	if err != nil {
		t.Fatalf("set_focus: %v", err)
	}
	if out.Focused != 4 {
		t.Errorf("focused = %d, want 4", out.Focused)
	}
	if id, ok := reader.Focus(); !ok || id != 4 {
		t.Errorf("reader focus = %d, %v", id, ok)
	}

	if _, _, err := s.handleSetFocus(context.Background(), nil, SetFocusInput{ID: 99}); err == nil {
		t.Error("expected error for unknown id")
	}

	_, out, err = s.handleSetFocus(context.Background(), nil, SetFocusInput{Clear: true})
	if err != nil {
		t.Fatalf("clear focus: %v", err)
	}
	if !out.Cleared {
		t.Error("expected Cleared")
	}
	if _, ok := reader.Focus(); ok {
		t.Error("focus should be cleared")
	}
}
