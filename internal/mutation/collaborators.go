package mutation

import (
	"context"

	"github.com/ppiankov/claimshift/internal/model"
)

// RoleModerateClaim is the role required to merge or split claims
const RoleModerateClaim = "ModerateClaim"

// ClaimLookup fetches claims by id.
// A missing claim is reported as (nil, nil).
type ClaimLookup interface {
	GetClaim(ctx context.Context, id string) (*model.Claim, error)
}

// CommitService executes the merge or split business transaction
type CommitService interface {
	MergeClaims(ctx context.Context, sources []model.Claim, result model.Claim) error
	SplitClaim(ctx context.Context, source model.Claim, results []model.Claim) error
}

// Authorizer answers role membership for the current caller
type Authorizer interface {
	HasRole(ctx context.Context, role string) bool
}

// Localizer renders user-facing messages for a message key
type Localizer interface {
	Localize(key string, args ...any) string
}
