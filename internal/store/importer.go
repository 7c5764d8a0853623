package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/claimshift/internal/model"
)

// ClaimFile is the YAML layout accepted by ImportFile
type ClaimFile struct {
	Claims []model.Claim `yaml:"claims"`
}

// ParseClaims decodes a YAML claim file
func ParseClaims(data []byte) ([]model.Claim, error) {
	var f ClaimFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}
	for i, c := range f.Claims {
		if c.ID == "" {
			return nil, fmt.Errorf("claim #%d has no id", i+1)
		}
		if c.StatusCode == "" {
			return nil, fmt.Errorf("claim %s has no status_code", c.ID)
		}
	}
	return f.Claims, nil
}

// ImportFile upserts every claim in the YAML file at path in one transaction
// and returns how many were written
func (r *Repo) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read claim file: %w", err)
	}
	claims, err := ParseClaims(data)
	if err != nil {
		return 0, err
	}

	err = WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, c := range claims {
			if err := upsertClaim(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(claims), nil
}
