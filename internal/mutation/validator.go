package mutation

import (
	"strings"

	"github.com/ppiankov/claimshift/internal/model"
)

// checkNotDuplicate fails when id is already in either list.
// It has no "is duplicate" result: it either passes or returns ErrDuplicateClaim.
func (w *Workflow) checkNotDuplicate(id string) error {
	for _, claim := range w.results {
		if strings.EqualFold(claim.ID, id) {
			return ErrDuplicateClaim
		}
	}
	for _, claim := range w.sources {
		if strings.EqualFold(claim.ID, id) {
			return ErrDuplicateClaim
		}
	}
	return nil
}

// CheckEligible decides whether a looked-up claim may join a merge or split.
// Rules apply in order and the first failure is returned: existence, moderated
// status, then absence of active restrictions.
func CheckEligible(claim *model.Claim) error {
	if claim == nil {
		return ErrClaimNotFound
	}
	if !strings.EqualFold(string(claim.StatusCode), string(model.ClaimStatusModerated)) {
		return ErrClaimNotModerated
	}
	for _, r := range claim.Restrictions {
		if strings.EqualFold(r.Status, model.RestrictionStatusActive) {
			return ErrClaimHasRestrictions
		}
	}
	return nil
}
