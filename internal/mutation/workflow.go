package mutation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/claimshift/internal/i18n"
	"github.com/ppiankov/claimshift/internal/model"
)

// Workflow holds the working state of one merge or split session
type Workflow struct {
	mode      Mode
	sources   []model.Claim
	results   []model.Claim
	completed bool
	pending   string

	lookup    ClaimLookup
	commits   CommitService
	localizer Localizer
	logger    *zap.Logger
}

// Option configures a Workflow
type Option func(*Workflow)

// WithLogger sets the logger used for rejections and commit outcomes
func WithLogger(logger *zap.Logger) Option {
	return func(w *Workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithLocalizer sets the localizer used for outcome messages
func WithLocalizer(localizer Localizer) Option {
	return func(w *Workflow) {
		if localizer != nil {
			w.localizer = localizer
		}
	}
}

// NewWorkflow creates an initialized workflow in the given mode
func NewWorkflow(mode Mode, lookup ClaimLookup, commits CommitService, opts ...Option) *Workflow {
	w := &Workflow{
		lookup:    lookup,
		commits:   commits,
		localizer: i18n.Default(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Initialize(mode)
	return w
}

// Initialize resets the workflow to an empty, open state in the given mode
func (w *Workflow) Initialize(mode Mode) {
	w.mode = mode
	w.sources = []model.Claim{}
	w.results = []model.Claim{}
	w.pending = ""
	w.completed = false
}

func (w *Workflow) Mode() Mode      { return w.mode }
func (w *Workflow) IsMerge() bool   { return w.mode == ModeMerge }
func (w *Workflow) Completed() bool { return w.completed }

// Sources returns a copy of the source claims in insertion order
func (w *Workflow) Sources() []model.Claim {
	return append([]model.Claim(nil), w.sources...)
}

// Results returns a copy of the result claims in insertion order
func (w *Workflow) Results() []model.Claim {
	return append([]model.Claim(nil), w.results...)
}

// Pending returns the candidate id buffered for the next add
func (w *Workflow) Pending() string { return w.pending }

// SetPending buffers a candidate id for AddPendingToSource/AddPendingToResult
func (w *Workflow) SetPending(id string) { w.pending = id }

// AddSource validates the claim and appends it to the source list
func (w *Workflow) AddSource(ctx context.Context, id string) error {
	return w.add(ctx, id, &w.sources, "source")
}

// AddResult validates the claim and appends it to the result list
func (w *Workflow) AddResult(ctx context.Context, id string) error {
	return w.add(ctx, id, &w.results, "result")
}

// AddPendingToSource adds the pending candidate to the source list and clears the buffer
func (w *Workflow) AddPendingToSource(ctx context.Context) error {
	if err := w.AddSource(ctx, w.pending); err != nil {
		return err
	}
	w.pending = ""
	return nil
}

// AddPendingToResult adds the pending candidate to the result list and clears the buffer
func (w *Workflow) AddPendingToResult(ctx context.Context) error {
	if err := w.AddResult(ctx, w.pending); err != nil {
		return err
	}
	w.pending = ""
	return nil
}

func (w *Workflow) add(ctx context.Context, id string, list *[]model.Claim, listName string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if w.completed {
		return ErrAlreadyCompleted
	}
	if err := w.checkNotDuplicate(id); err != nil {
		w.logRejected(id, listName, err)
		return err
	}

	claim, err := w.lookup.GetClaim(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup claim %s: %w", id, err)
	}
	if err := CheckEligible(claim); err != nil {
		w.logRejected(id, listName, err)
		return err
	}

	*list = append(*list, *claim)
	w.logger.Debug("claim added",
		zap.String("claim_id", claim.ID),
		zap.String("list", listName),
		zap.Stringer("mode", w.mode))
	return nil
}

// RemoveSource drops the first source claim whose id matches, ignoring case
func (w *Workflow) RemoveSource(id string) error {
	return w.remove(id, &w.sources)
}

// RemoveResult drops the first result claim whose id matches, ignoring case
func (w *Workflow) RemoveResult(id string) error {
	return w.remove(id, &w.results)
}

func (w *Workflow) remove(id string, list *[]model.Claim) error {
	if w.completed {
		return ErrAlreadyCompleted
	}
	for i, claim := range *list {
		if strings.EqualFold(claim.ID, id) {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return nil
		}
	}
	return nil
}

// CanShowAddSource reports whether another source claim may be offered.
// Split expects exactly one source, so the affordance hides once it is present.
func (w *Workflow) CanShowAddSource() bool {
	if w.completed {
		return false
	}
	return w.mode == ModeMerge || len(w.sources) == 0
}

// CanShowAddResult reports whether another result claim may be offered.
// Merge expects exactly one result, so the affordance hides once it is present.
func (w *Workflow) CanShowAddResult() bool {
	if w.completed {
		return false
	}
	return w.mode == ModeSplit || len(w.results) == 0
}

func (w *Workflow) logRejected(id, listName string, err error) {
	w.logger.Debug("claim rejected",
		zap.String("claim_id", id),
		zap.String("list", listName),
		zap.Error(err))
}
