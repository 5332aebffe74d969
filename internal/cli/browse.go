package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stagewiki/internal/eventbus"
	"stagewiki/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the glossary interactively (default)",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	model := ui.NewModel(a.bus, a.cfg, a.loader(), a.msgs, a.logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	model.SetProgram(p)

	// Load progress reaches the UI through the bus
	for _, t := range []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventSourceLoaded,
		eventbus.EventSourceFailed,
	} {
		unsubscribe := a.bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	a.logger.Info("starting browser")
	if _, err := p.Run(); err != nil {
		a.logger.Error("browser failed", zap.Error(err))
		return err
	}
	a.logger.Info("browser exited")
	return nil
}
