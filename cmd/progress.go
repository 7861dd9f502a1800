package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/masmgr/changelog-go/internal/git"
)

// cloneProgress reports clone activity. It animates a spinner on terminals
// and falls back to plain lines elsewhere.
type cloneProgress struct {
	out  io.Writer
	spin *spinner.Spinner
}

func newCloneProgress(out *os.File) *cloneProgress {
	p := &cloneProgress{out: out}
	if term.IsTerminal(int(out.Fd())) {
		p.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	}
	return p
}

func (p *cloneProgress) start(url, dir string) {
	msg := fmt.Sprintf("Cloning %s into %s", url, dir)
	if p.spin == nil {
		fmt.Fprintln(p.out, msg)
		return
	}
	p.spin.Suffix = " " + msg
	p.spin.Start()
}

func (p *cloneProgress) done(err error) {
	if p.spin != nil {
		p.spin.Stop()
	}
	if err == nil {
		color.New(color.FgGreen).Fprintln(p.out, "Clone complete")
	}
}

// collected shows the running commit count. It only updates the spinner, so
// plain output stays free of per-commit lines.
func (p *cloneProgress) collected(n int) {
	if p.spin == nil {
		return
	}
	p.spin.Lock()
	p.spin.Suffix = fmt.Sprintf(" Collected %d commits", n)
	p.spin.Unlock()
	if !p.spin.Active() {
		p.spin.Start()
	}
}

// stop halts the spinner if it is running.
func (p *cloneProgress) stop() {
	if p.spin != nil && p.spin.Active() {
		p.spin.Stop()
	}
}

// acquireOptions wires the progress hooks into repository acquisition.
func (p *cloneProgress) acquireOptions(cloneDir string) git.AcquireOptions {
	return git.AcquireOptions{
		CloneDir:     cloneDir,
		OnCloneStart: p.start,
		OnCloneDone:  p.done,
	}
}
