package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stagewiki/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchText()}}, true

	case key.Matches(msg, m.keys.Clear):
		if ctx.IsFiltered() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.NextCategory):
		return []types.Action{types.CycleCategoryAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.PrevCategory):
		return []types.Action{types.CycleCategoryAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.AllCategories):
		return []types.Action{types.SelectCategoryAction{Index: -1}}, true

	case key.Matches(msg, m.keys.Category):
		index := int(msg.Runes[0] - '1')
		if index >= ctx.CategoryCount() {
			return nil, true
		}
		return []types.Action{types.SelectCategoryAction{Index: index}}, true

	case key.Matches(msg, m.keys.NextSub):
		return []types.Action{types.CycleSubcategoryAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.PrevSub):
		return []types.Action{types.CycleSubcategoryAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.FilterSub):
		if ctx.CurrentSubcategory() == "" {
			return nil, true
		}
		return []types.Action{types.FilterBySubcategoryAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenTermAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
