// Package commands holds the aivia subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iutkarshydv/aivia/internal/config"
	"github.com/iutkarshydv/aivia/internal/roles"
	"github.com/iutkarshydv/aivia/internal/upload"
)

// Version is set via -ldflags at release time.
var Version = "dev"

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to .aivia/config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := config.EnsureInitialized(cwd); err != nil {
				return err
			}
			cmd.Println("initialized " + config.AiviaDir)
			return nil
		},
	}
}

func RolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the interview role catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range roles.Catalog() {
				cmd.Println(fmt.Sprintf("%-16s %-16s %d questions", r.ID, r.Name, len(r.Questions)))
			}
			return nil
		},
	}
}

func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a resume file against the upload rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := upload.FromPath(args[0])
			if err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("ok: %s (%s)", file.Name, humanize.Bytes(uint64(file.Size))))
			return nil
		},
	}
}

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the aivia version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("aivia " + Version)
		},
	}
}
