package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iutkarshydv/aivia/internal/cli/commands"
	"github.com/iutkarshydv/aivia/internal/config"
	"github.com/iutkarshydv/aivia/internal/logging"
	"github.com/iutkarshydv/aivia/internal/roles"
	"github.com/iutkarshydv/aivia/internal/tui"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(catalog []roles.Role, cfg config.Config, log *zap.Logger) error {
	m := tui.NewModel(catalog, cfg, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "aivia",
		Short: "Mock voice-interview demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFromRoot(cwd)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			catalog := roles.Catalog()
			if cfg.RolesFile != "" {
				if custom, err := roles.Load(cfg.RolesFile); err == nil {
					catalog = custom
				} else {
					log.Warn("roles override rejected", zap.String("file", cfg.RolesFile), zap.Error(err))
				}
			}
			return runTUI(catalog, cfg, log)
		},
	}
	root.AddCommand(
		commands.InitCmd(),
		commands.RolesCmd(),
		commands.CheckCmd(),
		commands.VersionCmd(),
	)
	return root
}
