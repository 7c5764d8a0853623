package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/claimshift/internal/model"
	"github.com/ppiankov/claimshift/internal/mutation"
)

// CheckJob looks up one claim and judges its eligibility
type CheckJob struct {
	ID      string
	Lookup  mutation.ClaimLookup
	Limiter *Limiter
	Key     string // Limiter key, typically the lookup backend
}

// Execute runs the lookup and the eligibility rules
func (j *CheckJob) Execute(ctx context.Context) Result {
	v := &Verdict{ID: j.ID}

	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Key); err != nil {
			v.Error = fmt.Errorf("rate limit: %w", err)
			return v
		}
	}

	claim, err := j.Lookup.GetClaim(ctx, j.ID)
	if err != nil {
		v.Error = err
		return v
	}
	v.Claim = claim
	v.Reason = mutation.CheckEligible(claim)
	return v
}

// Verdict is the eligibility of one candidate claim
type Verdict struct {
	ID     string
	Claim  *model.Claim // nil when not found or on lookup error
	Reason error        // Eligibility failure, nil when eligible
	Error  error        // Lookup failure; Reason is meaningless when set
}

// GetError returns the lookup failure
func (v *Verdict) GetError() error {
	return v.Error
}

// Eligible reports whether the claim may join a merge or split
func (v *Verdict) Eligible() bool {
	return v.Error == nil && v.Reason == nil
}

// Checker vets many candidate claims concurrently
type Checker struct {
	lookup      mutation.ClaimLookup
	limiter     *Limiter
	key         string
	concurrency int
}

// NewChecker creates a checker; limiter may be nil
func NewChecker(lookup mutation.ClaimLookup, limiter *Limiter, key string, concurrency int) *Checker {
	return &Checker{
		lookup:      lookup,
		limiter:     limiter,
		key:         key,
		concurrency: concurrency,
	}
}

// CheckIDs returns one verdict per id, in input order
func (c *Checker) CheckIDs(ctx context.Context, ids []string) []*Verdict {
	if len(ids) == 0 {
		return []*Verdict{}
	}

	pool := NewPool(ctx, c.concurrency)
	pool.Start()

	for _, id := range ids {
		pool.Submit(&CheckJob{
			ID:      id,
			Lookup:  c.lookup,
			Limiter: c.limiter,
			Key:     c.key,
		})
	}

	results := pool.Wait()

	verdicts := make([]*Verdict, len(ids))
	for i, id := range ids {
		if i < len(results) && results[i] != nil {
			verdicts[i] = results[i].(*Verdict)
			continue
		}
		// Dropped by a cancelled context before it ran
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		verdicts[i] = &Verdict{ID: id, Error: err}
	}
	return verdicts
}

// CheckFile reads claim ids from a file and checks them
func (c *Checker) CheckFile(ctx context.Context, filePath string) ([]*Verdict, error) {
	ids, err := ReadIDsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read claim ids: %w", err)
	}
	return c.CheckIDs(ctx, ids), nil
}

// ReadIDsFromFile reads claim ids, one per line.
// Blank lines and # comments are skipped; ids are deduplicated ignoring case.
func ReadIDsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var ids []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := strings.ToLower(line)
		if !seen[key] {
			seen[key] = true
			ids = append(ids, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return ids, nil
}
