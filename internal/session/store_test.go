package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/claimshift/internal/model"
	"github.com/ppiankov/claimshift/internal/mutation"
)

type stubLookup struct{}

func (stubLookup) GetClaim(ctx context.Context, id string) (*model.Claim, error) {
	return &model.Claim{ID: id, StatusCode: model.ClaimStatusModerated}, nil
}

type stubCommits struct{}

func (stubCommits) MergeClaims(ctx context.Context, sources []model.Claim, result model.Claim) error {
	return nil
}

func (stubCommits) SplitClaim(ctx context.Context, source model.Claim, results []model.Claim) error {
	return nil
}

func factory(mode mutation.Mode) *mutation.Workflow {
	return mutation.NewWorkflow(mode, stubLookup{}, stubCommits{})
}

func TestStore_CreateGetDestroy(t *testing.T) {
	s := NewStore(factory, time.Minute, time.Minute, nil)

	h, w := s.Create(mutation.ModeMerge)
	require.NotEmpty(t, h)
	assert.True(t, w.IsMerge())
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(h)
	require.NoError(t, err)
	assert.Same(t, w, got)

	s.Destroy(h)
	_, err = s.Get(h)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, s.Len())

	s.Destroy(h)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(factory, time.Minute, time.Minute, nil)

	h1, w1 := s.Create(mutation.ModeMerge)
	h2, w2 := s.Create(mutation.ModeSplit)
	require.NotEqual(t, h1, h2)

	require.NoError(t, w1.AddSource(ctx, "C1"))
	assert.Len(t, w1.Sources(), 1)
	assert.Empty(t, w2.Sources())
	assert.False(t, w2.IsMerge())
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(factory, 20*time.Millisecond, time.Hour, nil)

	h, _ := s.Create(mutation.ModeSplit)
	time.Sleep(40 * time.Millisecond)

	_, err := s.Get(h)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_UnknownHandle(t *testing.T) {
	s := NewStore(factory, time.Minute, time.Minute, nil)

	_, err := s.Get(Handle("missing"))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(factory, time.Minute, time.Minute, nil)
	s.Create(mutation.ModeMerge)
	s.Create(mutation.ModeSplit)

	s.Clear()

	assert.Zero(t, s.Len())
}
