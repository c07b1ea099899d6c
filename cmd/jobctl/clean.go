package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

func cleanDBCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clean-db",
		Short: "Drop every table of the job portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, warnStyle.Render("WARNING: This command will DROP ALL TABLES of the job portal."))
			if !yes && !confirm(cmd.InOrStdin(), out, "This action is irreversible. Do you want to continue? (yes/no): ") {
				fmt.Fprintln(out, "Operation cancelled.")
				return nil
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := dropTables(db.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
			fmt.Fprintln(out, successStyle.Render("All tables dropped successfully."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

// confirm reports whether the answer to question is "yes".
func confirm(in io.Reader, out io.Writer, question string) bool {
	answer, err := prompt(bufio.NewReader(in), out, question)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "yes")
}

// dropTables drops the model tables, dependents first.
func dropTables(db *gorm.DB) error {
	tables := slices.Clone(model.MigrateAble)
	slices.Reverse(tables)
	return db.Migrator().DropTable(tables...)
}
