package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ppiankov/claimshift/internal/model"
)

// Repo reads and writes claims and their mutations
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// querier is satisfied by *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// GetClaim returns the claim with id (case-insensitive) and its restrictions.
// A missing claim is (nil, nil).
func (r *Repo) GetClaim(ctx context.Context, id string) (*model.Claim, error) {
	return getClaim(ctx, r.db, id)
}

func getClaim(ctx context.Context, q querier, id string) (*model.Claim, error) {
	row := q.QueryRowContext(ctx, `
	SELECT id, nr, claimant_name, status_code, lodgement_date
	FROM claims WHERE id = ?`, id)

	var c model.Claim
	var status string
	var lodged sql.NullTime
	if err := row.Scan(&c.ID, &c.Nr, &c.ClaimantName, &status, &lodged); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim %s: %w", id, err)
	}
	c.StatusCode = model.ClaimStatus(status)
	if lodged.Valid {
		t := lodged.Time
		c.LodgementDate = &t
	}

	restrictions, err := listRestrictions(ctx, q, c.ID)
	if err != nil {
		return nil, err
	}
	c.Restrictions = restrictions
	return &c, nil
}

func listRestrictions(ctx context.Context, q querier, claimID string) ([]model.Restriction, error) {
	rows, err := q.QueryContext(ctx, `
	SELECT id, type_code, status FROM restrictions
	WHERE claim_id = ? ORDER BY id`, claimID)
	if err != nil {
		return nil, fmt.Errorf("list restrictions for %s: %w", claimID, err)
	}
	defer rows.Close()

	var out []model.Restriction
	for rows.Next() {
		var rs model.Restriction
		if err := rows.Scan(&rs.ID, &rs.TypeCode, &rs.Status); err != nil {
			return nil, fmt.Errorf("scan restriction: %w", err)
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

// UpsertClaim inserts or replaces a claim together with its restrictions
func (r *Repo) UpsertClaim(ctx context.Context, c model.Claim) error {
	if c.ID == "" {
		return errors.New("claim id is required")
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return upsertClaim(ctx, tx, c)
	})
}

func upsertClaim(ctx context.Context, q querier, c model.Claim) error {
	var lodged any
	if c.LodgementDate != nil {
		lodged = c.LodgementDate.UTC()
	}
	_, err := q.ExecContext(ctx, `
	INSERT INTO claims(id, nr, claimant_name, status_code, lodgement_date)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		nr=excluded.nr,
		claimant_name=excluded.claimant_name,
		status_code=excluded.status_code,
		lodgement_date=excluded.lodgement_date;
	`, c.ID, c.Nr, c.ClaimantName, string(c.StatusCode), lodged)
	if err != nil {
		return fmt.Errorf("upsert claim %s: %w", c.ID, err)
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM restrictions WHERE claim_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clear restrictions for %s: %w", c.ID, err)
	}
	for _, rs := range c.Restrictions {
		if _, err := q.ExecContext(ctx, `
		INSERT INTO restrictions(id, claim_id, type_code, status) VALUES (?, ?, ?, ?)`,
			rs.ID, c.ID, rs.TypeCode, rs.Status); err != nil {
			return fmt.Errorf("insert restriction %s: %w", rs.ID, err)
		}
	}
	return nil
}

// ListClaims returns all claims ordered by id, without restrictions
func (r *Repo) ListClaims(ctx context.Context) ([]model.Claim, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, nr, claimant_name, status_code FROM claims ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	var out []model.Claim
	for rows.Next() {
		var c model.Claim
		var status string
		if err := rows.Scan(&c.ID, &c.Nr, &c.ClaimantName, &status); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		c.StatusCode = model.ClaimStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}
