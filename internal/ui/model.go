package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"stagewiki/internal/config"
	"stagewiki/internal/domain"
	"stagewiki/internal/eventbus"
	"stagewiki/internal/i18n"
	"stagewiki/internal/loader"
	"stagewiki/internal/logic"
	"stagewiki/internal/ui/handlers"
	"stagewiki/internal/ui/input"
	inputtypes "stagewiki/internal/ui/input/types"
	"stagewiki/internal/ui/state"
	"stagewiki/internal/ui/viewmodels"
	"stagewiki/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// CatalogLoader produces the full term collection
type CatalogLoader interface {
	Load(ctx context.Context) ([]domain.Term, loader.Report)
}

// CatalogLoaderFunc adapts a function to CatalogLoader
type CatalogLoaderFunc func(ctx context.Context) ([]domain.Term, loader.Report)

// Load calls f
func (f CatalogLoaderFunc) Load(ctx context.Context) ([]domain.Term, loader.Report) {
	return f(ctx)
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState // centralized state
	messages *i18n.Messages
	logger   *zap.Logger
	loader   CatalogLoader
	engine   *logic.Engine

	// UI-specific state not in AppState
	width        int
	height       int
	inPagerMode  bool               // tracks if we're currently in pager mode
	filterBefore domain.FilterState // filter when search mode was entered

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, catalog CatalogLoader, msgs *i18n.Messages, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if msgs == nil {
		msgs = i18n.New(cfg.LanguageTag())
	}

	appState := state.NewAppState()
	inputHandler := input.New(inputtypes.DefaultKeyMap())
	keys := inputHandler.Keys()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		messages:     msgs,
		logger:       logger.Named("ui"),
		loader:       catalog,
		engine:       logic.NewEngine(cfg.LanguageTag()),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(keys),
		pager:        NewPagerOps(),
	}
	m.state.SourcesTotal = len(cfg.Sources)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, msgs, keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State returns the browser state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts loading the catalog
func (m *Model) Init() tea.Cmd {
	return m.loadCatalog()
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		terms, report := m.loader.Load(context.Background())
		return catalogLoadedMsg{terms: terms, report: report}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.inputHandler.CurrentMode()
	ctx := &input.ModelContext{State: m.state}

	actions, inputCmd := m.inputHandler.HandleKey(msg, ctx)

	if before != inputtypes.ModeSearch && m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		m.filterBefore = m.state.Filter
	}
	m.viewModel.SetTextInput(m.inputHandler.TextInput())

	cmds := []tea.Cmd{inputCmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SelectCategoryAction:
		category := ""
		if a.Index >= 0 {
			if a.Index >= len(m.state.Categories) {
				return nil
			}
			category = m.state.Categories[a.Index]
		}
		m.state.Filter.SelectCategory(category)
		m.recompute()

	case inputtypes.CycleCategoryAction:
		next := cycle(m.state.CategoryIndex(), a.Delta, len(m.state.Categories))
		category := ""
		if next >= 0 {
			category = m.state.Categories[next]
		}
		m.state.Filter.SelectCategory(category)
		m.recompute()

	case inputtypes.CycleSubcategoryAction:
		if m.state.Filter.Category == "" || len(m.state.Subcategories) == 0 {
			return nil
		}
		next := cycle(m.state.SubcategoryIndex(), a.Delta, len(m.state.Subcategories))
		sub := ""
		if next >= 0 {
			sub = m.state.Subcategories[next]
		}
		m.state.Filter.SelectSubcategory(sub, m.state.Filter.Category)
		m.recompute()

	case inputtypes.FilterBySubcategoryAction:
		term, ok := m.state.CurrentTerm()
		if !ok || !term.HasSubcategory() {
			return nil
		}
		m.state.Filter.SelectSubcategory(term.Subcategory, term.Category)
		m.recompute()

	case inputtypes.ClearFiltersAction:
		filter := &m.state.Filter
		switch {
		case filter.IsSearching():
			filter.SetSearch("")
		case filter.Subcategory != "":
			filter.SelectSubcategory("", filter.Category)
		default:
			filter.SelectCategory("")
		}
		m.recompute()

	case inputtypes.UpdateTextAction:
		m.setSearch(a.Text)

	case inputtypes.SubmitTextAction:
		m.setSearch(a.Text)

	case inputtypes.CancelTextAction:
		if m.state.Filter != m.filterBefore {
			m.state.Filter = m.filterBefore
			m.recompute()
		}

	case inputtypes.OpenTermAction:
		term, ok := m.state.CurrentTerm()
		if !ok {
			return nil
		}
		color := views.CategoryColor(m.config.CategoryColors(), term.Category, m.config.UI.Accent)
		return m.showPager(RenderTermDetail(term, color))

	case inputtypes.ToggleHelpAction:
		return m.showPager(m.helpRenderer.RenderHelpContent(m.config.Title))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) setSearch(text string) {
	if text == m.state.Filter.Search {
		return
	}
	m.state.Filter.SetSearch(text)
	m.recompute()
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.MoveSelection(-1)
	case "down":
		m.state.MoveSelection(1)
	case "pageup":
		m.state.MoveSelection(-m.pageSize())
	case "pagedown":
		m.state.MoveSelection(m.pageSize())
	case "home":
		m.state.SetSelection(0)
	case "end":
		m.state.SetSelection(len(m.state.View) - 1)
	}
}

// pageSize estimates how many cards fit on one screen
func (m *Model) pageSize() int {
	size := (m.height - 10) / 4
	if size < 1 {
		return 1
	}
	return size
}

// cycle steps through -1 ("All") and 0..n-1, wrapping at both ends
func cycle(current, delta, n int) int {
	if n == 0 {
		return -1
	}
	span := n + 1
	pos := ((current+1+delta)%span + span) % span
	return pos - 1
}

// recompute runs the filter engine for the current filter state
func (m *Model) recompute() {
	view := m.engine.ComputeView(m.state.Terms, m.state.Filter)

	var subs []string
	if m.state.Filter.Category != "" {
		subs = m.engine.SubcategoriesOf(m.state.Terms, m.state.Filter.Category)
	}
	m.state.SetView(view, subs)

	m.logger.Debug("view recomputed",
		zap.String("category", m.state.Filter.Category),
		zap.String("subcategory", m.state.Filter.Subcategory),
		zap.String("search", m.state.Filter.Search),
		zap.Int("visible", len(view)))

	if m.bus != nil {
		m.bus.Publish(eventbus.FilterChangedEvent{State: m.state.Filter, Visible: len(view)})
	}
}

func (m *Model) applyCatalog(msg catalogLoadedMsg) {
	m.state.Terms = msg.terms
	m.state.Loading = false
	m.state.CatalogApplied = true
	m.state.SourcesTotal = len(msg.report.Results)
	m.state.SourcesFailed = msg.report.Failed()
	m.state.SourcesLoaded = m.state.SourcesTotal - m.state.SourcesFailed
	m.state.Categories = m.engine.MergeCategories(m.config.CategoryNames(), msg.terms)
	m.state.Counts = logic.CountByCategory(msg.terms)

	// Drop a category that no longer exists
	if m.state.Filter.Category != "" && m.state.CategoryIndex() < 0 {
		m.state.Filter.SelectCategory("")
	}
	m.recompute()
}

// showPager returns a command that shows content using ov pager
func (m *Model) showPager(content string) tea.Cmd {
	if m.program == nil {
		m.state.StatusMessage = "Pager is not available"
		return clearStatusAfter(statusTimeout)
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		return m, m.eventHandler.HandleEvent(msg.Event)

	case catalogLoadedMsg:
		m.applyCatalog(msg)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and similar messages belong to the text input
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the browser
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}
