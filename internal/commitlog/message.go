// Package commitlog turns raw commit messages into structured changelog records.
package commitlog

import "strings"

// CommitMessage is the structured form of a commit message written as
// "type(scope): title" followed by an optional body.
type CommitMessage struct {
	Type     string
	Scope    string
	Title    string
	Body     string
	Breaking bool
}

// ParseMessage parses a raw commit message. It never fails: a message without
// any colon is returned unstructured, with the whole text as both title and body.
//
// The title is the text between the first and the second colon of the whole
// message, so "fix: handle http://host" yields the title "handle http".
// This matches the changelogs produced by earlier releases of the tool.
func ParseMessage(raw string) CommitMessage {
	if !strings.Contains(raw, ":") {
		return CommitMessage{Title: raw, Body: raw}
	}

	fields := strings.Split(raw, ":")
	head := fields[0]

	var msg CommitMessage
	if strings.Contains(head, "(") && strings.Contains(head, ")") {
		parts := strings.Split(head, "(")
		msg.Type = parts[0]
		msg.Scope, _, _ = strings.Cut(parts[1], ")")
	} else {
		msg.Type = head
	}

	if strings.HasSuffix(msg.Type, "!") {
		msg.Breaking = true
		msg.Type = strings.TrimSuffix(msg.Type, "!")
	}

	title := strings.TrimSpace(fields[1])
	title, _, _ = strings.Cut(title, "\n")
	msg.Title = title

	if _, rest, ok := strings.Cut(raw, "\n"); ok {
		msg.Body = strings.TrimSpace(rest)
	}

	return msg
}
