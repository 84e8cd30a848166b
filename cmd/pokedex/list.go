package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"pokedex/internal/display"
)

func listCmd(a *app) *cobra.Command {
	var (
		timeout time.Duration
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the listing once and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), a.newComponent(), timeout, asJSON)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "how long to wait for the listing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as JSON")
	return cmd
}

// runList mounts component, waits for it to settle and prints what it holds.
// A failed fetch prints an empty listing, the same as the served view.
func runList(ctx context.Context, out io.Writer, component *display.Component, timeout time.Duration, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := component.OnInit(ctx); err != nil {
		return err
	}
	defer component.OnTeardown()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-component.Settled():
	case <-timer.C:
	case <-ctx.Done():
	}

	view := component.Snapshot()
	if asJSON {
		return json.NewEncoder(out).Encode(view.Pokemon)
	}
	for _, p := range view.Pokemon {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", p.Name, p.URL); err != nil {
			return err
		}
	}
	return nil
}
