package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadhna1118/job-portal-website/internal/seed"
)

func seedCmd() *cobra.Command {
	opts := seed.DefaultOptions()
	var password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace jobs, applications and non-admin accounts with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := seed.DefaultCatalogue()
			if err != nil {
				return err
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			opts.Now = time.Now()
			sum, err := seed.Insert(cmd.Context(), db.DB, seed.Generate(cat, opts), password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Sample data created"))
			for _, row := range []struct {
				label string
				n     int
			}{
				{"Recruiters", sum.Recruiters},
				{"Job seekers", sum.Seekers},
				{"Jobs", sum.Jobs},
				{"Applications", sum.Applications},
				{"Saved jobs", sum.SavedJobs},
			} {
				fmt.Fprintf(out, "%s %d\n", labelStyle.Render(fmt.Sprintf("%-13s", row.label+":")), row.n)
			}
			fmt.Fprintln(out, successStyle.Render("Every sample account uses the password given with --password"))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&opts.RandSeed, "rand-seed", opts.RandSeed, "seed of the random generator")
	cmd.Flags().IntVar(&opts.Recruiters, "recruiters", opts.Recruiters, "number of recruiters, capped by the catalogue companies")
	cmd.Flags().IntVar(&opts.Seekers, "seekers", opts.Seekers, "number of job seekers, capped by the catalogue names")
	cmd.Flags().StringVar(&password, "password", "", "password of every generated account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
