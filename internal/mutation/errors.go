package mutation

import (
	"errors"
	"fmt"

	"github.com/ppiankov/claimshift/internal/i18n"
	"github.com/ppiankov/claimshift/internal/model"
)

// Sentinel errors for workflow operations.
var (
	ErrClaimNotFound        = errors.New("claim not found")
	ErrClaimNotModerated    = errors.New("claim must be moderated")
	ErrClaimHasRestrictions = errors.New("claim has active restrictions")
	ErrDuplicateClaim       = errors.New("claim already in list")
	ErrAlreadyCompleted     = errors.New("transaction has been completed")
	ErrInsufficientRights   = errors.New("insufficient rights")
	ErrCommitFailed         = errors.New("commit failed")
)

// CommitError wraps a failure returned by the commit service
type CommitError struct {
	Type  model.MutationType
	Cause error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("%s claims: %v", e.Type, e.Cause)
}

func (e *CommitError) Unwrap() error {
	return e.Cause
}

// Is reports ErrCommitFailed as a match so callers need not type-assert
func (e *CommitError) Is(target error) bool {
	return target == ErrCommitFailed
}

// MessageKey returns the localization key describing err
func MessageKey(err error) string {
	var commitErr *CommitError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &commitErr):
		if commitErr.Type == model.MutationSplit {
			return i18n.KeyClaimSplitFailed
		}
		return i18n.KeyClaimsMergeFailed
	case errors.Is(err, ErrClaimNotFound):
		return i18n.KeyClaimNotFound
	case errors.Is(err, ErrClaimNotModerated):
		return i18n.KeyClaimMustBeModerated
	case errors.Is(err, ErrClaimHasRestrictions):
		return i18n.KeyClaimHasRestrictions
	case errors.Is(err, ErrDuplicateClaim):
		return i18n.KeyClaimAlreadyInList
	case errors.Is(err, ErrAlreadyCompleted):
		return i18n.KeyTransactionCompleted
	case errors.Is(err, ErrInsufficientRights):
		return i18n.KeyInsufficientRights
	default:
		return i18n.KeyGeneralUnexpectedError
	}
}
