package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"stagewiki/internal/config"
	"stagewiki/internal/i18n"
	"stagewiki/internal/ui/state"
	"stagewiki/internal/ui/views"
)

// shortHelp is satisfied by the browser key map
type shortHelp interface {
	ShortHelp() []key.Binding
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	messages  *i18n.Messages
	width     int
	height    int
	help      help.Model
	keys      shortHelp
	textInput *textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, msgs *i18n.Messages, keys shortHelp) *ViewModel {
	return &ViewModel{
		state:    appState,
		config:   cfg,
		messages: msgs,
		help:     help.New(),
		keys:     keys,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetTextInput sets the focused text input, or nil when none has focus
func (vm *ViewModel) SetTextInput(ti *textinput.Model) {
	vm.textInput = ti
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Title:         vm.config.Title,
		Loading:       vm.state.Loading,
		SourcesTotal:  vm.state.SourcesTotal,
		SourcesDone:   vm.state.LoadProgress(),
		SourcesFailed: vm.state.SourcesFailed,
		Terms:         vm.state.View,
		SelectedIndex: vm.state.SelectedIndex,
		Filter:        vm.state.Filter,
		Categories:    vm.state.Categories,
		Counts:        vm.state.Counts,
		Subcategories: vm.state.Subcategories,
		Colors:        vm.config.CategoryColors(),
		Accent:        vm.config.UI.Accent,
		Compact:       vm.config.UI.Compact,
		StatusMessage: vm.state.StatusMessage,
		ShowHelp:      vm.config.UI.ShowHelp,
		Messages:      vm.messages,
	}
	if vm.textInput != nil {
		vs.Searching = true
		vs.SearchInput = vm.textInput.View()
	}
	if vs.ShowHelp && vm.keys != nil {
		vs.HelpView = vm.help.ShortHelpView(vm.keys.ShortHelp())
	}
	return vs
}
