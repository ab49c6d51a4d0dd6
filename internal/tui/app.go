package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kliatsko/librarymirror/internal/mirror"
)

// Run drives a session under the live display. The engine runs in its own
// goroutine and feeds the display through the event bridge; ctrl+c cancels
// the engine's context and lets the current folder wind down.
func Run(ctx context.Context, session *mirror.Session) (mirror.SessionResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := NewEventBridge()
	session.SetEventEmitter(bridge)

	results := make(chan mirror.SessionResult, 1)
	go func() {
		results <- session.Run(ctx)
		bridge.Close()
	}()

	program := tea.NewProgram(NewModel(bridge, cancel))
	_, err := program.Run()
	if err != nil {
		cancel()
	}

	return <-results, err
}
