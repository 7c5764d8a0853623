package mutation

import (
	"context"

	"go.uber.org/zap"

	"github.com/ppiankov/claimshift/internal/i18n"
	"github.com/ppiankov/claimshift/internal/model"
)

// OutcomeStatus classifies the result of a commit attempt
type OutcomeStatus string

const (
	OutcomeCommitted OutcomeStatus = "committed" // Workflow is now completed
	OutcomeRejected  OutcomeStatus = "rejected"  // Claim counts do not fit the mode
	OutcomeFailed    OutcomeStatus = "failed"    // Commit service returned an error
)

// Outcome reports a commit attempt that did not hit a hard error.
// Rejected and failed outcomes leave the workflow open and unchanged.
type Outcome struct {
	Status  OutcomeStatus
	Key     string // Message key behind Message
	Message string // Localized, user-facing
	Err     error  // *CommitError when Status is OutcomeFailed
}

// Committed reports whether the workflow transitioned to completed
func (o Outcome) Committed() bool { return o.Status == OutcomeCommitted }

// Commit runs CommitMerge or CommitSplit according to the workflow mode
func (w *Workflow) Commit(ctx context.Context) (Outcome, error) {
	if w.mode == ModeMerge {
		return w.CommitMerge(ctx)
	}
	return w.CommitSplit(ctx)
}

// CommitMerge merges two or more source claims into the single result claim
func (w *Workflow) CommitMerge(ctx context.Context) (Outcome, error) {
	if w.completed {
		return Outcome{}, ErrAlreadyCompleted
	}
	if len(w.results) != 1 || len(w.sources) < 2 {
		return w.outcome(OutcomeRejected, i18n.KeyClaimsMergeCount), nil
	}

	if err := w.commits.MergeClaims(ctx, w.Sources(), w.results[0]); err != nil {
		w.logger.Error("failed to merge claims",
			zap.Int("sources", len(w.sources)),
			zap.String("result", w.results[0].ID),
			zap.Error(err))
		return w.failed(model.MutationMerge, err), nil
	}

	w.completed = true
	w.logger.Info("claims merged",
		zap.Strings("sources", claimIDs(w.sources)),
		zap.String("result", w.results[0].ID))
	return w.outcome(OutcomeCommitted, i18n.KeyClaimsMergeSuccess), nil
}

// CommitSplit splits the single source claim into two or more result claims
func (w *Workflow) CommitSplit(ctx context.Context) (Outcome, error) {
	if w.completed {
		return Outcome{}, ErrAlreadyCompleted
	}
	if len(w.results) < 2 || len(w.sources) != 1 {
		return w.outcome(OutcomeRejected, i18n.KeyClaimSplitCount), nil
	}

	if err := w.commits.SplitClaim(ctx, w.sources[0], w.Results()); err != nil {
		w.logger.Error("failed to split claim",
			zap.String("source", w.sources[0].ID),
			zap.Int("results", len(w.results)),
			zap.Error(err))
		return w.failed(model.MutationSplit, err), nil
	}

	w.completed = true
	w.logger.Info("claim split",
		zap.String("source", w.sources[0].ID),
		zap.Strings("results", claimIDs(w.results)))
	return w.outcome(OutcomeCommitted, i18n.KeyClaimSplitSuccess), nil
}

func (w *Workflow) failed(kind model.MutationType, cause error) Outcome {
	err := &CommitError{Type: kind, Cause: cause}
	key := MessageKey(err)
	return Outcome{
		Status:  OutcomeFailed,
		Key:     key,
		Message: w.localizer.Localize(key, cause.Error()),
		Err:     err,
	}
}

func (w *Workflow) outcome(status OutcomeStatus, key string) Outcome {
	return Outcome{Status: status, Key: key, Message: w.localizer.Localize(key)}
}

func claimIDs(claims []model.Claim) []string {
	ids := make([]string, len(claims))
	for i, c := range claims {
		ids[i] = c.ID
	}
	return ids
}
