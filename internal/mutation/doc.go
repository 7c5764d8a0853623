// Package mutation implements the claim merge/split workflow: two working
// lists built by a moderator, candidate validation on entry, and a one-way
// commit through an external claim service.
//
// A Workflow is owned by a single actor and is not safe for concurrent use.
package mutation
