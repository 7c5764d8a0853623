package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/claimshift/internal/model"
)

// ErrStaleClaim means a claim changed after it was added to the workflow
var ErrStaleClaim = errors.New("claim is no longer eligible")

const (
	roleSource = "source"
	roleResult = "result"
)

// MergeClaims retires the source claims in favour of result, in one transaction
func (r *Repo) MergeClaims(ctx context.Context, sources []model.Claim, result model.Claim) error {
	if len(sources) < 2 {
		return fmt.Errorf("merge needs at least 2 source claims, got %d", len(sources))
	}
	return r.mutate(ctx, model.MutationMerge, sources, []model.Claim{result})
}

// SplitClaim retires source in favour of results, in one transaction
func (r *Repo) SplitClaim(ctx context.Context, source model.Claim, results []model.Claim) error {
	if len(results) < 2 {
		return fmt.Errorf("split needs at least 2 result claims, got %d", len(results))
	}
	return r.mutate(ctx, model.MutationSplit, []model.Claim{source}, results)
}

func (r *Repo) mutate(ctx context.Context, kind model.MutationType, sources, results []model.Claim) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		seen := make(map[string]bool)
		for _, c := range append(append([]model.Claim(nil), sources...), results...) {
			key := strings.ToLower(c.ID)
			if seen[key] {
				return fmt.Errorf("claim %s appears more than once", c.ID)
			}
			seen[key] = true
			if err := checkCurrent(ctx, tx, c.ID); err != nil {
				return err
			}
		}

		mutationID := uuid.NewString()
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO claim_mutations(id, type, created_at) VALUES (?, ?, ?)`,
			mutationID, string(kind), now()); err != nil {
			return fmt.Errorf("insert mutation: %w", err)
		}

		for i, c := range sources {
			if err := addMember(ctx, tx, mutationID, c.ID, roleSource, i); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
			UPDATE claims SET status_code = ? WHERE id = ?`,
				string(model.ClaimStatusHistoric), c.ID); err != nil {
				return fmt.Errorf("retire claim %s: %w", c.ID, err)
			}
		}
		for i, c := range results {
			if err := addMember(ctx, tx, mutationID, c.ID, roleResult, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// checkCurrent re-reads a claim inside the transaction and rejects it unless it
// is still moderated and free of active restrictions
func checkCurrent(ctx context.Context, q querier, id string) error {
	c, err := getClaim(ctx, q, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: claim %s not found", ErrStaleClaim, id)
	}
	if !strings.EqualFold(string(c.StatusCode), string(model.ClaimStatusModerated)) {
		return fmt.Errorf("%w: claim %s is %s", ErrStaleClaim, id, c.StatusCode)
	}
	for _, rs := range c.Restrictions {
		if strings.EqualFold(rs.Status, model.RestrictionStatusActive) {
			return fmt.Errorf("%w: claim %s has active restriction %s", ErrStaleClaim, id, rs.ID)
		}
	}
	return nil
}

func addMember(ctx context.Context, tx *sql.Tx, mutationID, claimID, role string, pos int) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO claim_mutation_members(mutation_id, claim_id, role, position)
	VALUES (?, ?, ?, ?)`, mutationID, claimID, role, pos)
	if err != nil {
		return fmt.Errorf("insert %s member %s: %w", role, claimID, err)
	}
	return nil
}

// Mutations returns committed mutations, newest first
func (r *Repo) Mutations(ctx context.Context) ([]model.MutationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT m.id, m.type, m.created_at, mm.claim_id, mm.role
	FROM claim_mutations m
	JOIN claim_mutation_members mm ON mm.mutation_id = m.id
	ORDER BY m.created_at DESC, m.id, mm.role DESC, mm.position`)
	if err != nil {
		return nil, fmt.Errorf("list mutations: %w", err)
	}
	defer rows.Close()

	var out []model.MutationRecord
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, kind, claimID, role string
			createdAt               time.Time
		)
		if err := rows.Scan(&id, &kind, &createdAt, &claimID, &role); err != nil {
			return nil, fmt.Errorf("scan mutation: %w", err)
		}
		i, ok := index[id]
		if !ok {
			out = append(out, model.MutationRecord{
				ID:        id,
				Type:      model.MutationType(kind),
				CreatedAt: createdAt,
			})
			i = len(out) - 1
			index[id] = i
		}
		if role == roleSource {
			out[i].Sources = append(out[i].Sources, claimID)
		} else {
			out[i].Results = append(out[i].Results, claimID)
		}
	}
	return out, rows.Err()
}
