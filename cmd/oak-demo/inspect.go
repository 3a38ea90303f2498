package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/backend"
	"github.com/oakui/oak/component"
	"github.com/oakui/oak/event"
	"github.com/oakui/oak/internal/config"
	"github.com/oakui/oak/internal/inspect"
	"github.com/oakui/oak/widget"
)

func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: oak-demo inspect <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP inspector (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "The inspector serves a small sample scene so MCP clients can")
	fmt.Fprintln(w, "exercise the component and accessibility tools.")
}

func runInspect(args []string) int {
	if len(args) == 0 {
		printInspectUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runInspectServe(args[1:])
	case "help", "-h", "--help":
		printInspectUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown inspect command: %s\n\n", args[0])
		printInspectUsage(os.Stderr)
		return 2
	}
}

func runInspectServe(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: oak-demo inspect serve")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Start the MCP inspector on stdio. Designed to be invoked by MCP")
		fmt.Fprintln(os.Stdout, "clients rather than run interactively.")
		return 0
	}

	if cfg, err := config.Load(); err == nil {
		setupLogging(cfg)
	}

	registry, reader, err := sampleScene()
	if err != nil {
		slog.Error("failed to build sample scene", "error", err)
		return 1
	}

	var props *a11y.Registry
	if sr, ok := reader.(interface{ Registry() *a11y.Registry }); ok {
		props = sr.Registry()
	}
	server := inspect.NewServer(registry, reader, props)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Run(ctx); err != nil {
		slog.Error("inspector error", "error", err)
		return 1
	}
	return 0
}

// sampleScene builds the same widgets the demo shows, minus the event
// loop, so the inspector has something to report.
func sampleScene() (*component.Registry, backend.ScreenReaderBackend, error) {
	bus := event.NewBus(event.DefaultCapacity)
	registry := component.NewRegistry()
	reader := backend.GetFactory().CreateScreenReader()

	title := widget.NewLabel(titleID, "oak widget demo")
	button := widget.NewButton(buttonID, "Click me", bus.Sender())
	status := widget.NewLabel(statusID, "clicks: 0")

	ctx := context.Background()
	for _, c := range []component.Component{title, button, status} {
		if err := registry.Add(c); err != nil {
			return nil, nil, err
		}
	}
	if props, err := title.Accessibility(ctx); err == nil {
		reader.UpdateComponent(titleID, props)
	}
	if props, err := button.Accessibility(ctx); err == nil {
		reader.UpdateComponent(buttonID, props)
	}
	if props, err := status.Accessibility(ctx); err == nil {
		reader.UpdateComponent(statusID, props)
	}
	return registry, reader, nil
}
