package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"stagewiki/internal/eventbus"
	"stagewiki/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes domain events and returns any necessary commands.
// Progress events arriving after the catalog was applied are ignored.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	if h.state.CatalogApplied {
		return nil
	}

	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		h.state.Loading = true
		h.state.SourcesTotal = len(e.Sources)
		h.state.SourcesLoaded = 0
		h.state.SourcesFailed = 0

	case eventbus.SourceLoadedEvent:
		if h.state.Loading {
			h.state.SourcesLoaded++
		}

	case eventbus.SourceFailedEvent:
		if h.state.Loading {
			h.state.SourcesFailed++
		}
	}

	return nil
}
