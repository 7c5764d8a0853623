package i18n

// Message keys shared by the workflow and the catalogs
const (
	KeyClaimNotFound          = "claim_not_found"
	KeyClaimMustBeModerated   = "claim_must_be_moderated"
	KeyClaimHasRestrictions   = "claim_has_restrictions"
	KeyClaimAlreadyInList     = "claim_already_in_list"
	KeyTransactionCompleted   = "transaction_has_been_completed"
	KeyInsufficientRights     = "general_insufficient_rights"
	KeyClaimsMergeCount       = "claims_merge_count"
	KeyClaimSplitCount        = "claim_split_count"
	KeyClaimsMergeSuccess     = "claims_merge_success"
	KeyClaimSplitSuccess      = "claim_split_success"
	KeyClaimsMergeFailed      = "claims_merge_failed"
	KeyClaimSplitFailed       = "claim_split_failed"
	KeyGeneralUnexpectedError = "general_unexpected_error"
)
