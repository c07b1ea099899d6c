// Command jobctl runs maintenance tasks against the job portal database.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sadhna1118/job-portal-website/internal/config"
	"github.com/sadhna1118/job-portal-website/internal/database"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jobctl",
		Short:         "Job portal maintenance tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(createAdminCmd(), seedCmd(), cleanDBCmd())
	return cmd
}

// openDB connects with the database settings from the environment.
func openDB() (*database.DBinstanceStruct, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, err
	}
	db, err := database.GetMainDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("database failed to initialize: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
