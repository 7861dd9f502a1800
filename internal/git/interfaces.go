package git

import (
	"context"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// RepositoryReader collects changelog records for a revision range.
// This abstraction allows for easier testing and potential alternative implementations.
type RepositoryReader interface {
	// Collect returns one record per commit reachable from to but not from from,
	// newest first.
	Collect(ctx context.Context, from, to string) ([]commitlog.CommitInfo, error)
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*HistoryReader)(nil)
