package git

import (
	"context"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockHistoryReader struct {
	Commits []commitlog.CommitInfo
	Error   error

	// Calls records the ranges requested, as "from..to".
	Calls []string
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(commits []commitlog.CommitInfo, err error) *MockHistoryReader {
	return &MockHistoryReader{
		Commits: commits,
		Error:   err,
	}
}

// Collect returns the predefined commits or error.
func (m *MockHistoryReader) Collect(_ context.Context, from, to string) ([]commitlog.CommitInfo, error) {
	m.Calls = append(m.Calls, from+".."+to)
	return m.Commits, m.Error
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*MockHistoryReader)(nil)
