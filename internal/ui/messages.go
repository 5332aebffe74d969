package ui

import (
	"stagewiki/internal/domain"
	"stagewiki/internal/eventbus"
	"stagewiki/internal/loader"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// catalogLoadedMsg carries the merged collection once every source finished
type catalogLoadedMsg struct {
	terms  []domain.Term
	report loader.Report
}

// pagerMsg is sent when the pager was closed
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
