package commitlog

import (
	"strings"
	"time"
)

// TimeLayout is the ISO-8601 layout used for commit timestamps. Unlike
// time.RFC3339 it always spells out the UTC offset ("+00:00" rather than "Z").
const TimeLayout = "2006-01-02T15:04:05-07:00"

// CommitInfo is one changelog record: the parsed message plus its provenance.
type CommitInfo struct {
	Type          string
	Scope         string
	Title         string
	Body          string
	AuthorName    string
	AuthorEmail   string
	CommittedTime string
	Hash          string
	Breaking      bool
}

// NewCommitInfo builds a record from a parsed message and commit metadata.
func NewCommitInfo(msg CommitMessage, authorName, authorEmail string, committed time.Time, hash string) CommitInfo {
	return CommitInfo{
		Type:          msg.Type,
		Scope:         msg.Scope,
		Title:         msg.Title,
		Body:          msg.Body,
		AuthorName:    authorName,
		AuthorEmail:   authorEmail,
		CommittedTime: committed.Format(TimeLayout),
		Hash:          hash,
		Breaking:      msg.Breaking,
	}
}

// FromRawCommit parses message and builds the record in one step. Trailing
// newlines written by git after the last message line are dropped first.
func FromRawCommit(message, authorName, authorEmail string, committed time.Time, hash string) CommitInfo {
	return NewCommitInfo(ParseMessage(strings.TrimRight(message, "\r\n")), authorName, authorEmail, committed, hash)
}

// ShortHash returns the first 8 characters of the commit hash.
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}
