package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/keepass-cli/internal/audit"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently viewed entries from the audit log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.AuditDB == "" {
			return errors.New("audit log is disabled; set --audit-db or KPCLI_AUDIT_DB")
		}

		repo, err := audit.NewRepository(cfg.AuditDB)
		if err != nil {
			return err
		}
		defer repo.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := repo.Init(ctx); err != nil {
			return err
		}
		views, err := repo.ListViews(ctx, historyLimit)
		if err != nil {
			return err
		}
		return printHistory(cmd.OutOrStdout(), views)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of views to show")
	rootCmd.AddCommand(historyCmd)
}

func printHistory(out io.Writer, views []audit.View) error {
	if len(views) == 0 {
		_, err := fmt.Fprintln(out, "No entries viewed")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIEWED\tMODE\tPATH\tTITLE\tDATABASE")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.ViewedAt.Local().Format("2006-01-02 15:04"),
			v.Mode,
			v.Path,
			v.Title,
			v.Database,
		)
	}
	return w.Flush()
}
