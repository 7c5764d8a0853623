package mutation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/claimshift/internal/model"
)

// fakeLookup serves claims from a map; missing ids return (nil, nil)
type fakeLookup struct {
	claims map[string]*model.Claim
	err    error
	calls  int
}

func (f *fakeLookup) GetClaim(ctx context.Context, id string) (*model.Claim, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.claims[id], nil
}

// fakeCommits records commit calls
type fakeCommits struct {
	err         error
	mergeCalls  int
	splitCalls  int
	lastSources []model.Claim
	lastResults []model.Claim
}

func (f *fakeCommits) MergeClaims(ctx context.Context, sources []model.Claim, result model.Claim) error {
	f.mergeCalls++
	f.lastSources = sources
	f.lastResults = []model.Claim{result}
	return f.err
}

func (f *fakeCommits) SplitClaim(ctx context.Context, source model.Claim, results []model.Claim) error {
	f.splitCalls++
	f.lastSources = []model.Claim{source}
	f.lastResults = results
	return f.err
}

func moderated(id string) *model.Claim {
	return &model.Claim{ID: id, StatusCode: model.ClaimStatusModerated}
}

func newLookup(claims ...*model.Claim) *fakeLookup {
	l := &fakeLookup{claims: map[string]*model.Claim{}}
	for _, c := range claims {
		l.claims[c.ID] = c
	}
	return l
}

func ids(claims []model.Claim) []string {
	return claimIDs(claims)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw  string
		want Mode
	}{
		{"merge", ModeMerge},
		{"MERGE", ModeMerge},
		{" Merge ", ModeMerge},
		{"split", ModeSplit},
		{"", ModeSplit},
		{"merger", ModeSplit},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.raw))
		})
	}
}

func TestInitialize_ResetsState(t *testing.T) {
	ctx := context.Background()
	w := NewWorkflow(ModeMerge, newLookup(moderated("C1")), &fakeCommits{})
	require.NoError(t, w.AddSource(ctx, "C1"))
	w.SetPending("C2")

	w.Initialize(ModeSplit)

	assert.Equal(t, ModeSplit, w.Mode())
	assert.False(t, w.IsMerge())
	assert.Empty(t, w.Sources())
	assert.Empty(t, w.Results())
	assert.Empty(t, w.Pending())
	assert.False(t, w.Completed())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	w := NewWorkflow(ModeMerge, newLookup(moderated("C1"), moderated("C2"), moderated("C3")), &fakeCommits{})

	require.NoError(t, w.AddSource(ctx, "C2"))
	require.NoError(t, w.AddSource(ctx, "C1"))
	require.NoError(t, w.AddResult(ctx, "C3"))

	assert.Equal(t, []string{"C2", "C1"}, ids(w.Sources()))
	assert.Equal(t, []string{"C3"}, ids(w.Results()))
}

func TestAdd_BlankIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	lookup := newLookup()
	w := NewWorkflow(ModeMerge, lookup, &fakeCommits{})

	require.NoError(t, w.AddSource(ctx, ""))
	require.NoError(t, w.AddResult(ctx, "   "))

	assert.Empty(t, w.Sources())
	assert.Empty(t, w.Results())
	assert.Zero(t, lookup.calls)
}

func TestAdd_NotFound(t *testing.T) {
	ctx := context.Background()
	w := NewWorkflow(ModeMerge, newLookup(), &fakeCommits{})

	err := w.AddSource(ctx, "C9")

	assert.ErrorIs(t, err, ErrClaimNotFound)
	assert.Empty(t, w.Sources())
	assert.Empty(t, w.Results())
}

func TestAdd_NotModerated(t *testing.T) {
	ctx := context.Background()
	claim := &model.Claim{ID: "C1", StatusCode: model.ClaimStatusUnmoderated}
	w := NewWorkflow(ModeMerge, newLookup(claim), &fakeCommits{})

	assert.ErrorIs(t, w.AddSource(ctx, "C1"), ErrClaimNotModerated)
	assert.ErrorIs(t, w.AddResult(ctx, "C1"), ErrClaimNotModerated)
	assert.Empty(t, w.Sources())
	assert.Empty(t, w.Results())
}

func TestAdd_ActiveRestriction(t *testing.T) {
	ctx := context.Background()
	claim := moderated("C1")
	claim.Restrictions = []model.Restriction{{ID: "R1", Status: "h"}, {ID: "R2", Status: "A"}}
	w := NewWorkflow(ModeSplit, newLookup(claim), &fakeCommits{})

	assert.ErrorIs(t, w.AddSource(ctx, "C1"), ErrClaimHasRestrictions)
	assert.Empty(t, w.Sources())
}

func TestAdd_DuplicateAcrossLists(t *testing.T) {
	ctx := context.Background()
	lookup := newLookup(moderated("C1"))
	w := NewWorkflow(ModeMerge, lookup, &fakeCommits{})
	require.NoError(t, w.AddSource(ctx, "C1"))
	calls := lookup.calls

	assert.ErrorIs(t, w.AddResult(ctx, "C1"), ErrDuplicateClaim)
	assert.ErrorIs(t, w.AddSource(ctx, "c1"), ErrDuplicateClaim)

	assert.Equal(t, calls, lookup.calls, "duplicate check must run before lookup")
	assert.Equal(t, []string{"C1"}, ids(w.Sources()))
	assert.Empty(t, w.Results())
}

func TestAdd_LookupFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("database is locked")
	w := NewWorkflow(ModeMerge, &fakeLookup{err: boom}, &fakeCommits{})

	err := w.AddSource(ctx, "C1")

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, w.Sources())
}

func TestAddPending_ClearsBufferOnSuccess(t *testing.T) {
	ctx := context.Background()
	w := NewWorkflow(ModeSplit, newLookup(moderated("C1")), &fakeCommits{})

	w.SetPending("C1")
	require.NoError(t, w.AddPendingToSource(ctx))
	assert.Empty(t, w.Pending())

	w.SetPending("C1")
	assert.ErrorIs(t, w.AddPendingToResult(ctx), ErrDuplicateClaim)
	assert.Equal(t, "C1", w.Pending())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	w := NewWorkflow(ModeMerge, newLookup(moderated("C1"), moderated("C2"), moderated("C3")), &fakeCommits{})
	require.NoError(t, w.AddSource(ctx, "C1"))
	require.NoError(t, w.AddSource(ctx, "C2"))
	require.NoError(t, w.AddResult(ctx, "C3"))
	before := w.Sources()

	require.NoError(t, w.RemoveSource("c1"))
	assert.Equal(t, []string{"C2"}, ids(w.Sources()))
	assert.Equal(t, []string{"C1", "C2"}, ids(before), "earlier snapshots are not affected")

	require.NoError(t, w.RemoveSource("missing"))
	require.NoError(t, w.RemoveResult("C2"))
	assert.Equal(t, []string{"C2"}, ids(w.Sources()))
	assert.Equal(t, []string{"C3"}, ids(w.Results()))

	require.NoError(t, w.RemoveResult("C3"))
	assert.Empty(t, w.Results())
}

func TestCanShowAdd(t *testing.T) {
	ctx := context.Background()
	lookup := newLookup(moderated("C1"), moderated("C2"), moderated("C3"))

	merge := NewWorkflow(ModeMerge, lookup, &fakeCommits{})
	assert.True(t, merge.CanShowAddSource())
	assert.True(t, merge.CanShowAddResult())
	require.NoError(t, merge.AddSource(ctx, "C1"))
	require.NoError(t, merge.AddResult(ctx, "C3"))
	assert.True(t, merge.CanShowAddSource())
	assert.False(t, merge.CanShowAddResult())

	split := NewWorkflow(ModeSplit, lookup, &fakeCommits{})
	assert.True(t, split.CanShowAddSource())
	assert.True(t, split.CanShowAddResult())
	require.NoError(t, split.AddSource(ctx, "C1"))
	require.NoError(t, split.AddResult(ctx, "C2"))
	assert.False(t, split.CanShowAddSource())
	assert.True(t, split.CanShowAddResult())
}

func TestNoIDInBothLists(t *testing.T) {
	ctx := context.Background()
	lookup := newLookup(moderated("C1"), moderated("C2"), moderated("C3"))
	w := NewWorkflow(ModeMerge, lookup, &fakeCommits{})

	actions := []func() error{
		func() error { return w.AddSource(ctx, "C1") },
		func() error { return w.AddResult(ctx, "C1") },
		func() error { return w.AddResult(ctx, "C2") },
		func() error { return w.RemoveSource("C1") },
		func() error { return w.AddSource(ctx, "C2") },
		func() error { return w.AddResult(ctx, "c1") },
		func() error { return w.AddSource(ctx, "C1") },
		func() error { return w.RemoveResult("C2") },
		func() error { return w.AddSource(ctx, "C2") },
		func() error { return w.AddSource(ctx, "C3") },
	}

	for i, act := range actions {
		_ = act()
		seen := map[string]bool{}
		for _, c := range w.Sources() {
			seen[c.ID] = true
		}
		for _, c := range w.Results() {
			assert.False(t, seen[c.ID], "step %d: %s in both lists", i, c.ID)
		}
	}
}
