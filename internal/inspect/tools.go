package inspect

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/component"
)

func summarize(ctx context.Context, c component.Component) (ComponentSummary, error) {
	props, err := c.ReadProps(ctx)
	if err != nil {
		return ComponentSummary{}, err
	}
	return ComponentSummary{
		ID:      uint64(props.ID),
		Visible: props.Visible,
		Enabled: props.Enabled,
		X:       props.Bounds.X,
		Y:       props.Bounds.Y,
		Width:   props.Bounds.Width,
		Height:  props.Bounds.Height,
	}, nil
}

func (s *Server) handleListComponents(ctx context.Context, _ *mcpsdk.CallToolRequest, _ struct{}) (*mcpsdk.CallToolResult, ListComponentsOutput, error) {
	ids := s.registry.IDs()
	out := ListComponentsOutput{Components: make([]ComponentSummary, 0, len(ids))}
	for _, id := range ids {
		c, ok := s.registry.Get(id)
		if !ok {
			continue
		}
		summary, err := summarize(ctx, c)
		if err != nil {
			return nil, ListComponentsOutput{}, err
		}
		out.Components = append(out.Components, summary)
	}
	out.Count = len(out.Components)
	return nil, out, nil
}

func (s *Server) handleGetComponent(ctx context.Context, _ *mcpsdk.CallToolRequest, args GetComponentInput) (*mcpsdk.CallToolResult, GetComponentOutput, error) {
	c, ok := s.registry.Get(component.ID(args.ID))
	if !ok {
		return nil, GetComponentOutput{}, fmt.Errorf("no component with id %d", args.ID)
	}
	summary, err := summarize(ctx, c)
	if err != nil {
		return nil, GetComponentOutput{}, err
	}

	out := GetComponentOutput{ComponentSummary: summary}
	if s.props != nil {
		if p, ok := s.props.Get(component.ID(args.ID)); ok {
			out.Accessibility = &AccessibilityProps{
				Role:        p.Role,
				Label:       p.Label,
				Description: p.Description,
				Value:       p.Value,
				Focusable:   p.Focusable,
				Focused:     p.Focused,
				Disabled:    p.Disabled,
				Hidden:      p.Hidden,
			}
		}
	}
	return nil, out, nil
}

func (s *Server) handleHitTest(ctx context.Context, _ *mcpsdk.CallToolRequest, args HitTestInput) (*mcpsdk.CallToolResult, HitTestOutput, error) {
	c, found, err := s.registry.HitTest(ctx, args.X, args.Y)
	if err != nil {
		return nil, HitTestOutput{}, err
	}
	if !found {
		return nil, HitTestOutput{}, nil
	}
	return nil, HitTestOutput{Found: true, ID: uint64(c.ID())}, nil
}

func parsePriority(name string) (a11y.Priority, error) {
	switch name {
	case "low":
		return a11y.PriorityLow, nil
	case "", "medium":
		return a11y.PriorityMedium, nil
	case "high":
		return a11y.PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (want low, medium or high)", name)
	}
}

func (s *Server) handleAnnounce(_ context.Context, _ *mcpsdk.CallToolRequest, args AnnounceInput) (*mcpsdk.CallToolResult, AnnounceOutput, error) {
	if args.Text == "" {
		return nil, AnnounceOutput{}, fmt.Errorf("text must not be empty")
	}
	priority, err := parsePriority(args.Priority)
	if err != nil {
		return nil, AnnounceOutput{}, err
	}
	if err := s.reader.Announce(a11y.Announcement{Priority: priority, Text: args.Text}); err != nil {
		return nil, AnnounceOutput{}, err
	}
	return nil, AnnounceOutput{
		Queued:        true,
		ReaderEnabled: s.reader.IsEnabled(),
		Backend:       s.reader.BackendName(),
	}, nil
}

func (s *Server) handleSetFocus(_ context.Context, _ *mcpsdk.CallToolRequest, args SetFocusInput) (*mcpsdk.CallToolResult, SetFocusOutput, error) {
	if args.Clear {
		s.reader.ClearFocus()
		return nil, SetFocusOutput{Cleared: true}, nil
	}
	if _, ok := s.registry.Get(component.ID(args.ID)); !ok {
		return nil, SetFocusOutput{}, fmt.Errorf("no component with id %d", args.ID)
	}
	s.reader.SetFocus(component.ID(args.ID))
	return nil, SetFocusOutput{Focused: args.ID}, nil
}
