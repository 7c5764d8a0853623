package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimshift/internal/i18n"
)

// claimsCmd represents the claims command
var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Manage the local claim store",
}

var claimsImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import claims from a YAML file",
	Long: `Import upserts claims and their restrictions from a YAML file:

  claims:
    - id: C1
      nr: "0001"
      claimant_name: Amina Diallo
      status_code: moderated
      restrictions:
        - id: R1
          type_code: mortgage
          status: a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.repo.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d claims into %s\n", n, a.cfg.Store.Path)
		return nil
	},
}

var claimsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one claim as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		claim, err := a.repo.GetClaim(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if claim == nil {
			return fmt.Errorf("%s: %s", args[0], a.localizer.Localize(i18n.KeyClaimNotFound))
		}

		data, err := json.MarshalIndent(claim, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling claim: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var claimsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List claims with their status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		claims, err := a.repo.ListClaims(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range claims {
			fmt.Fprintf(out, "%-36s %-12s %s\n", c.ID, c.StatusCode, c.ClaimantName)
		}
		return nil
	},
}

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List committed merges and splits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.repo.Mutations(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No merges or splits yet")
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(out, "%s  %-5s  %v -> %v  (%s)\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Type, r.Sources, r.Results, r.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(claimsCmd)
	rootCmd.AddCommand(historyCmd)
	claimsCmd.AddCommand(claimsImportCmd)
	claimsCmd.AddCommand(claimsShowCmd)
	claimsCmd.AddCommand(claimsListCmd)
}
