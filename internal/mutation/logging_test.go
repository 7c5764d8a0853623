package mutation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCommitFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	commits := &fakeCommits{err: errors.New("constraint failed")}
	w := NewWorkflow(ModeSplit, fixtureLookup(), commits, WithLogger(zap.New(core)))
	require.NoError(t, w.AddSource(ctx, "C1"))
	require.NoError(t, w.AddResult(ctx, "C2"))
	require.NoError(t, w.AddResult(ctx, "C3"))

	_, err := w.CommitSplit(ctx)
	require.NoError(t, err)

	failures := logs.FilterMessage("failed to split claim").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, "C1", failures[0].ContextMap()["source"])
}

func TestRejectedCandidateIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	w := NewWorkflow(ModeMerge, newLookup(), &fakeCommits{}, WithLogger(zap.New(core)))

	assert.ErrorIs(t, w.AddSource(ctx, "C9"), ErrClaimNotFound)

	rejected := logs.FilterMessage("claim rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "C9", rejected[0].ContextMap()["claim_id"])
	assert.Equal(t, "source", rejected[0].ContextMap()["list"])
}
