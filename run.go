package main

import (
	"errors"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/dataslider/internal/config"
	"github.com/llehouerou/dataslider/internal/errmsg"
	"github.com/llehouerou/dataslider/internal/logging"
	"github.com/llehouerou/dataslider/internal/ui/slider"
	"github.com/llehouerou/dataslider/internal/ui/styles"
)

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func runSlider(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("json")

	logger := logging.NewNop()
	if f, err := logging.OpenFile(); err != nil {
		cmd.PrintErrln(errmsg.Format(errmsg.OpLogOpen, err))
	} else {
		defer f.Close()
		logger = logging.New(f, logging.ParseLevel(level))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpConfigLoad, configPath, err))
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	if cmd.Flags().Changed("value") {
		opts.DefaultValue, _ = cmd.Flags().GetFloat64("value")
	}

	m, err := slider.New(opts, logger)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer m.Controller().Close()

	if !isTerminal() {
		logger.Info("stdin is not a terminal, skipping the interface")
		return writeResult(cmd.OutOrStdout(), newResult(m.Controller()), asJSON)
	}

	theme := cfg.GetThemeConfig()
	m.SetTheme(styles.T().WithRibbon(lipgloss.Color(theme.From), lipgloss.Color(theme.To)))
	m.SetLength(cfg.Length)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// value changes are traced off the UI goroutine
	sub := m.Controller().Channel()
	go traceValues(sub.Values, sub.Done, logger)

	if path := watchTarget(configPath); path != "" {
		stop, err := config.Watch(path,
			func() { p.Send(slider.ReloadStartedMsg{}) },
			func(c *config.Config, err error) { p.Send(slider.ConfigReloadedMsg{Config: c, Err: err}) },
		)
		if err != nil {
			logger.Warn(errmsg.FormatWith(errmsg.OpConfigWatch, path, err))
		} else {
			defer func() { _ = stop() }()
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), newResult(m.Controller()), asJSON)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func configPaths() []string {
	return config.ExistingPaths()
}

// watchTarget picks the file to watch: the explicit path, or the only
// configuration file found. Merged configurations are not watched.
func watchTarget(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if paths := configPaths(); len(paths) == 1 {
		return paths[0]
	}
	return ""
}

func traceValues(values <-chan float64, done <-chan struct{}, logger *slog.Logger) {
	for {
		select {
		case v := <-values:
			logger.Debug("value changed", "value", v)
		case <-done:
			return
		}
	}
}
