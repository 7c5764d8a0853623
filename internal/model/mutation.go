package model

import "time"

// MutationType is the kind of business transaction applied to claims
type MutationType string

const (
	MutationMerge MutationType = "merge"
	MutationSplit MutationType = "split"
)

// MutationRecord is a committed merge or split as kept by the claim store
type MutationRecord struct {
	ID        string       `json:"id"`
	Type      MutationType `json:"type"`
	Sources   []string     `json:"sources"` // Claim IDs that became historic
	Results   []string     `json:"results"`
	CreatedAt time.Time    `json:"created_at"`
}
