package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadStarted    EventType = "LoadStarted"
	EventSourceLoaded   EventType = "SourceLoaded"
	EventSourceFailed   EventType = "SourceFailed"
	EventCatalogLoaded  EventType = "CatalogLoaded"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventFilterChanged  EventType = "FilterChanged"
	EventExportFinished EventType = "ExportFinished"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadStartedEvent is emitted when the loader begins fetching sources
type LoadStartedEvent struct {
	Sources []string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// SourceLoadedEvent is emitted when one data source was read successfully
type SourceLoadedEvent struct {
	Source string
	Terms  int
}

func (e SourceLoadedEvent) Type() EventType { return EventSourceLoaded }

// SourceFailedEvent is emitted when a data source could not be fetched or
// parsed. The source contributes no terms.
type SourceFailedEvent struct {
	Source string
	Err    error
}

func (e SourceFailedEvent) Type() EventType { return EventSourceFailed }

// CatalogLoadedEvent is emitted once every source has finished
type CatalogLoadedEvent struct {
	Terms   []Term
	Sources int
	Failed  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Sources []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// FilterChangedEvent is emitted when the browser recomputes its view
type FilterChangedEvent struct {
	State   FilterState
	Visible int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// ExportFinishedEvent is emitted after an HTML page was written
type ExportFinishedEvent struct {
	Path  string
	Terms int
}

func (e ExportFinishedEvent) Type() EventType { return EventExportFinished }
