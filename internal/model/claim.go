package model

import "time"

// Claim is a land claim record as seen by the mutation workflow
type Claim struct {
	ID            string        `json:"id" yaml:"id"`
	Nr            string        `json:"nr,omitempty" yaml:"nr,omitempty"`                       // Human-readable claim number
	ClaimantName  string        `json:"claimant_name,omitempty" yaml:"claimant_name,omitempty"` // Primary claimant
	StatusCode    ClaimStatus   `json:"status_code" yaml:"status_code"`
	LodgementDate *time.Time    `json:"lodgement_date,omitempty" yaml:"lodgement_date,omitempty"`
	Restrictions  []Restriction `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
}

// ClaimStatus is the lifecycle status of a claim
type ClaimStatus string

const (
	ClaimStatusCreated     ClaimStatus = "created"
	ClaimStatusUnmoderated ClaimStatus = "unmoderated"
	ClaimStatusModerated   ClaimStatus = "moderated" // Required for merge/split
	ClaimStatusReviewed    ClaimStatus = "reviewed"
	ClaimStatusChallenged  ClaimStatus = "challenged"
	ClaimStatusWithdrawn   ClaimStatus = "withdrawn"
	ClaimStatusRejected    ClaimStatus = "rejected"
	ClaimStatusHistoric    ClaimStatus = "historic" // Superseded by a merge or split
)

// Restriction is an annotation limiting the usability of a claim
type Restriction struct {
	ID       string `json:"id" yaml:"id"`
	TypeCode string `json:"type_code,omitempty" yaml:"type_code,omitempty"` // e.g. "mortgage", "lease"
	Status   string `json:"status" yaml:"status"`                           // Single character
}

const (
	RestrictionStatusActive   = "a"
	RestrictionStatusHistoric = "h"
)
