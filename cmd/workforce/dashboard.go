package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print today's dashboard counts as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = d.close(ctx)
		}()

		svc, err := d.services()
		if err != nil {
			return err
		}
		stats, err := svc.Dashboard.Stats(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}
