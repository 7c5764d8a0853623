package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/claimshift/internal/model"
)

func TestCheckEligible(t *testing.T) {
	tests := []struct {
		name  string
		claim *model.Claim
		want  error
	}{
		{"nil claim", nil, ErrClaimNotFound},
		{"moderated", &model.Claim{ID: "C1", StatusCode: "moderated"}, nil},
		{"moderated upper case", &model.Claim{ID: "C1", StatusCode: "MODERATED"}, nil},
		{"unmoderated", &model.Claim{ID: "C1", StatusCode: model.ClaimStatusUnmoderated}, ErrClaimNotModerated},
		{"historic", &model.Claim{ID: "C1", StatusCode: model.ClaimStatusHistoric}, ErrClaimNotModerated},
		{"empty status", &model.Claim{ID: "C1"}, ErrClaimNotModerated},
		{
			"historic restriction only",
			&model.Claim{ID: "C1", StatusCode: "moderated", Restrictions: []model.Restriction{{Status: "h"}}},
			nil,
		},
		{
			"active restriction",
			&model.Claim{ID: "C1", StatusCode: "moderated", Restrictions: []model.Restriction{{Status: "h"}, {Status: "a"}}},
			ErrClaimHasRestrictions,
		},
		{
			"status checked before restrictions",
			&model.Claim{ID: "C1", StatusCode: "created", Restrictions: []model.Restriction{{Status: "a"}}},
			ErrClaimNotModerated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEligible(tt.claim)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckNotDuplicate(t *testing.T) {
	w := NewWorkflow(ModeMerge, newLookup(), &fakeCommits{})
	w.sources = []model.Claim{{ID: "S1"}}
	w.results = []model.Claim{{ID: "R1"}}

	assert.ErrorIs(t, w.checkNotDuplicate("s1"), ErrDuplicateClaim)
	assert.ErrorIs(t, w.checkNotDuplicate("R1"), ErrDuplicateClaim)
	assert.NoError(t, w.checkNotDuplicate("X1"))
}
