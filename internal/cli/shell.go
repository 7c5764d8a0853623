package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/claimshift/internal/model"
	"github.com/ppiankov/claimshift/internal/mutation"
	"github.com/ppiankov/claimshift/internal/session"
)

var shellType string

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Build and commit a merge or split interactively",
	Long: `Shell opens a moderation session and reads actions from stdin:

  id <claim>          set the pending claim id
  add-source [claim]  add a claim (or the pending one) to the source list
  add-result [claim]  add a claim (or the pending one) to the result list
  rm-source <claim>   remove a claim from the source list
  rm-result <claim>   remove a claim from the result list
  show                print the session
  commit              commit the merge or split
  quit                end the session

Example:
  claimshift shell --type merge
  printf 'add-source C1\nadd-source C2\nadd-result C3\ncommit\n' | claimshift shell --type merge`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().StringVar(&shellType, "type", "split", "workflow type: merge or split")
}

func runShell(cmd *cobra.Command, args []string) error {
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

	h, _ := a.sessions.Create(mutation.ParseMode(shellType))
	defer a.sessions.Destroy(h)

	sh := &shell{
		sessions: a.sessions,
		handle:   h,
		describe: a.describe,
		out:      cmd.OutOrStdout(),
	}
	return sh.run(ctx, cmd.InOrStdin())
}

// shell drives one session from line-oriented input
type shell struct {
	sessions *session.Store
	handle   session.Handle
	describe func(error) string
	out      io.Writer
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	if err := s.show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		quit, err := s.exec(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// exec runs one action. Rejected actions are reported and do not end the shell;
// a returned error does.
func (s *shell) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	w, err := s.sessions.Get(s.handle)
	if err != nil {
		return true, fmt.Errorf("session %s: %w", s.handle, err)
	}

	switch strings.ToLower(fields[0]) {
	case "id":
		w.SetPending(arg)
	case "add-source":
		if !w.Completed() && !w.CanShowAddSource() {
			fmt.Fprintln(s.out, "✗ a split takes exactly one source claim")
			return false, nil
		}
		s.report(addTo(ctx, w, arg, w.AddSource, w.AddPendingToSource))
	case "add-result":
		if !w.Completed() && !w.CanShowAddResult() {
			fmt.Fprintln(s.out, "✗ a merge takes exactly one result claim")
			return false, nil
		}
		s.report(addTo(ctx, w, arg, w.AddResult, w.AddPendingToResult))
	case "rm-source":
		s.report(w.RemoveSource(arg))
	case "rm-result":
		s.report(w.RemoveResult(arg))
	case "show":
		return false, s.show()
	case "commit":
		out, err := w.Commit(ctx)
		if err != nil {
			s.report(err)
			return false, nil
		}
		if out.Committed() {
			fmt.Fprintf(s.out, "✓ %s\n", out.Message)
		} else {
			fmt.Fprintf(s.out, "✗ %s\n", out.Message)
		}
	case "help", "?":
		fmt.Fprintln(s.out, "actions: id, add-source, add-result, rm-source, rm-result, show, commit, quit")
	case "quit", "exit":
		return true, nil
	default:
		fmt.Fprintf(s.out, "✗ unknown action %q (try help)\n", fields[0])
	}
	return false, nil
}

func addTo(ctx context.Context, w *mutation.Workflow, id string,
	add func(context.Context, string) error, addPending func(context.Context) error) error {
	if id == "" {
		if w.Pending() == "" {
			return nil
		}
		return addPending(ctx)
	}
	return add(ctx, id)
}

func (s *shell) report(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(s.out, "✗ %s\n", s.describe(err))
}

func (s *shell) show() error {
	w, err := s.sessions.Get(s.handle)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.handle, err)
	}

	state := "open"
	if w.Completed() {
		state = "completed"
	}
	fmt.Fprintf(s.out, "Session %s (%s, %s)\n", s.handle, w.Mode(), state)
	printClaims(s.out, "Source claims", w.Sources())
	printClaims(s.out, "Result claims", w.Results())
	if w.Pending() != "" {
		fmt.Fprintf(s.out, "Pending: %s\n", w.Pending())
	}

	var actions []string
	if w.CanShowAddSource() {
		actions = append(actions, "add-source")
	}
	if w.CanShowAddResult() {
		actions = append(actions, "add-result")
	}
	if !w.Completed() {
		actions = append(actions, "commit")
	}
	if len(actions) > 0 {
		fmt.Fprintf(s.out, "Available: %s\n", strings.Join(actions, ", "))
	}
	return nil
}

func printClaims(out io.Writer, title string, claims []model.Claim) {
	fmt.Fprintf(out, "%s (%d):\n", title, len(claims))
	for _, c := range claims {
		fmt.Fprintf(out, "  - %s", c.ID)
		if c.Nr != "" {
			fmt.Fprintf(out, " #%s", c.Nr)
		}
		if c.ClaimantName != "" {
			fmt.Fprintf(out, " (%s)", c.ClaimantName)
		}
		fmt.Fprintln(out)
	}
}
