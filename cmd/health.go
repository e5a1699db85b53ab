package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coderefine/coderefine/internal/snippets"
)

// healthTimeout bounds the whole health check
const healthTimeout = 10 * time.Second

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the refinement service and the local snippet store",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// healthCheck is one named probe and its outcome
type healthCheck struct {
	name   string
	detail string
	err    error
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
	defer cancel()

	checks := []healthCheck{{name: "service"}, {name: "snippets"}}

	// Each probe reports into its own slot so one failure does not hide the other
	var g errgroup.Group
	g.Go(func() error {
		h, err := newClient(cfg, "").Health(ctx)
		if err != nil {
			checks[0].err = err
			return nil
		}
		checks[0].detail = fmt.Sprintf("%s (%s)", h.Status, cfg.GetAPIBaseURL())
		return nil
	})
	g.Go(func() error {
		store, err := snippets.OpenDefault()
		if err != nil {
			checks[1].err = err
			return nil
		}
		defer store.Close()

		list, err := store.List(ctx, 0)
		if err != nil {
			checks[1].err = err
			return nil
		}
		checks[1].detail = fmt.Sprintf("%d stored", len(list))
		return nil
	})
	_ = g.Wait()

	var failed []error
	out := cmd.OutOrStdout()
	for _, c := range checks {
		if c.err != nil {
			fmt.Fprintf(out, "%-9s FAIL  %v\n", c.name+":", c.err)
			failed = append(failed, fmt.Errorf("%s: %w", c.name, c.err))
			continue
		}
		fmt.Fprintf(out, "%-9s ok    %s\n", c.name+":", c.detail)
	}
	if len(failed) > 0 {
		return fmt.Errorf("health check failed: %w", errors.Join(failed...))
	}
	return nil
}
