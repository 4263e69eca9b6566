package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sm8ta/motodash/internal/client"
	"github.com/sm8ta/motodash/internal/mirror"
)

func statsCommand() *cobra.Command {
	var (
		apiURL  string
		asJSON  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print fleet totals and fuel consumption from a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := client.NewFromURL(apiURL)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fleet := mirror.NewFleet(api)
			if err := fleet.FetchAll(ctx); err != nil {
				return fmt.Errorf("failed to fetch fleet: %w", err)
			}

			stats := fleet.Stats()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:4000", "base URL of the MotoDash API")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "overall request timeout")

	return cmd
}

func printStats(w io.Writer, s mirror.Stats) {
	fmt.Fprintf(w, "Bikes:        %d (total mileage %d)\n", s.Bikes, s.TotalMileage)
	fmt.Fprintf(w, "Maintenance:  %d (total cost %.2f)\n", s.MaintenanceCount, s.MaintenanceCost)
	fmt.Fprintf(w, "Parts:        %d\n", s.Parts)
	fmt.Fprintf(w, "Tours:        %d (total distance %.1f)\n", s.Tours, s.TourDistance)
	fmt.Fprintf(w, "Fuel entries: %d\n", s.Fuel.Count)
	fmt.Fprintf(w, "  liters %.2f, cost %.2f, distance %.1f\n", s.Fuel.TotalLiters, s.Fuel.TotalCost, s.Fuel.TotalDistance)
	fmt.Fprintf(w, "  consumption %.2f l/100, cost per distance %.3f\n", s.Fuel.LitersPer100, s.Fuel.CostPerDistance)
}
