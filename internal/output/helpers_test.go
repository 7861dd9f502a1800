package output

import (
	"time"

	"github.com/masmgr/changelog-go/internal/commitlog"
)

var testTime = time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("", 2*60*60))

func makeCommit(message, author, email, hash string) commitlog.CommitInfo {
	return commitlog.NewCommitInfo(commitlog.ParseMessage(message), author, email, testTime, hash)
}

func sampleCommits() []commitlog.CommitInfo {
	return []commitlog.CommitInfo{
		makeCommit("feat(parser): add yaml writer\n\nCloses #12", "Alice", "alice@example.com", "1111111111111111111111111111111111111111"),
		makeCommit("fix!: handle empty repo", "Bob", "bob@example.com", "2222222222222222222222222222222222222222"),
		makeCommit("chore: bump deps", "Carol", "carol@example.com", "3333333333333333333333333333333333333333"),
		makeCommit("feat: 支持 \"quoted\", comma & <html>\n\nline one\nline two", "Dörte", "d@example.com", "4444444444444444444444444444444444444444"),
	}
}
