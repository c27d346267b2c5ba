package remote

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FillFunc performs one foreign-reference fill on a DTO under construction.
type FillFunc func(ctx context.Context) error

// Enricher runs the fills of a single record. The fills are independent and
// commutative in result, so both orderings below satisfy the same contract.
type Enricher func(ctx context.Context, fills ...FillFunc) error

// Sequential runs fills one after another, matching the original blocking
// call-per-reference behaviour. The first failure aborts the record.
func Sequential(ctx context.Context, fills ...FillFunc) error {
	for _, fill := range fills {
		if err := fill(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Concurrent dispatches the fills in parallel. Callers must make each fill
// write to a distinct field of the record.
func Concurrent(ctx context.Context, fills ...FillFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fill := range fills {
		fill := fill
		g.Go(func() error { return fill(ctx) })
	}
	return g.Wait()
}

// ListPolicy decides what a list operation does when enriching one of its
// elements fails. The original left this undefined, so it is an explicit,
// configurable choice here.
type ListPolicy string

const (
	// ListPolicyAbort fails the whole list on the first element whose
	// lookups fail.
	ListPolicyAbort ListPolicy = "abort"
	// ListPolicySkip drops elements whose lookups fail and returns the rest.
	ListPolicySkip ListPolicy = "skip"
)

func ParseListPolicy(s string) (ListPolicy, error) {
	switch ListPolicy(s) {
	case ListPolicyAbort, ListPolicySkip:
		return ListPolicy(s), nil
	}
	return "", fmt.Errorf("unknown list lookup policy: %q", s)
}
