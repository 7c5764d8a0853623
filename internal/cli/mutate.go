package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimshift/internal/mutation"
)

var (
	sourceIDs []string
	resultIDs []string
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge two or more claims into one",
	Long: `Merge retires the source claims in favour of a single result claim.

Example:
  claimshift merge --source C1,C2 --result C3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, mutation.ModeMerge)
	},
}

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split one claim into two or more",
	Long: `Split retires the source claim in favour of two or more result claims.

Example:
  claimshift split --source C1 --result C2,C3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, mutation.ModeSplit)
	},
}

func init() {
	for _, c := range []*cobra.Command{mergeCmd, splitCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringSliceVar(&sourceIDs, "source", nil, "source claim ids (comma separated)")
		c.Flags().StringSliceVar(&resultIDs, "result", nil, "result claim ids (comma separated)")
	}
}

func runMutation(cmd *cobra.Command, mode mutation.Mode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := mutation.CheckAccess(ctx, a.roles); err != nil {
		return errors.New(a.describe(err))
	}

	h, w := a.sessions.Create(mode)
	defer a.sessions.Destroy(h)

	for _, id := range sourceIDs {
		if err := w.AddSource(ctx, id); err != nil {
			return fmt.Errorf("source %s: %s", id, a.describe(err))
		}
	}
	for _, id := range resultIDs {
		if err := w.AddResult(ctx, id); err != nil {
			return fmt.Errorf("result %s: %s", id, a.describe(err))
		}
	}

	out, err := w.Commit(ctx)
	if err != nil {
		return errors.New(a.describe(err))
	}
	if !out.Committed() {
		return errors.New(out.Message)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", out.Message)
	return nil
}
