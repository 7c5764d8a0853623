package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimshift/internal/worker"
)

var (
	checkWorkers int
	checkTimeout time.Duration
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check many candidate claims for merge/split eligibility",
	Long: `Check reads claim ids from a file (one per line, # for comments) and
reports for each whether it could join a merge or split right now.

Example:
  claimshift check candidates.txt
  claimshift check candidates.txt --workers 8 --timeout 1m`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "number of concurrent lookups (default: batch.workers)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 5*time.Minute, "total timeout for the check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	workers := checkWorkers
	if workers <= 0 {
		workers = a.cfg.Batch.Workers
	}
	limiter := worker.NewLimiter(a.cfg.Batch.RatePerSecond, a.cfg.Batch.Burst)
	checker := worker.NewChecker(a.repo, limiter, a.cfg.Store.Path, workers)

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", file)
		fmt.Fprintf(os.Stderr, "Workers:  %d\n", workers)
		fmt.Fprintln(os.Stderr)
	}

	verdicts, err := checker.CheckFile(ctx, file)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	eligible := 0
	for _, v := range verdicts {
		switch {
		case v.Error != nil:
			fmt.Fprintf(out, "✗ %-36s %v\n", v.ID, v.Error)
		case v.Reason != nil:
			fmt.Fprintf(out, "✗ %-36s %s\n", v.ID, a.describe(v.Reason))
		default:
			eligible++
			fmt.Fprintf(out, "✓ %-36s %s\n", v.ID, v.Claim.ClaimantName)
		}
	}
	fmt.Fprintf(out, "\n%d of %d claims eligible\n", eligible, len(verdicts))
	return nil
}
