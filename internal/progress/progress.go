// Package progress renders the step counter shown while a project is scaffolded.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	completeChar   = "█"
	incompleteChar = "░"
	barWidth       = 20
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// Reporter is notified as scaffold tasks finish.
type Reporter interface {
	Start(total int)
	Advance(label string)
	Stop()
}

// Bar prints one line per completed task with a filled bar and percentage.
type Bar struct {
	w     io.Writer
	total int
	done  int
}

// NewBar returns a Bar writing to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Start resets the bar to zero of total tasks.
func (b *Bar) Start(total int) {
	b.total = total
	b.done = 0
}

// Advance marks one task as complete.
func (b *Bar) Advance(label string) {
	if b.done < b.total {
		b.done++
	}
	fmt.Fprintln(b.w, b.render(label))
}

// Stop is a no-op; each Advance already ends its line.
func (b *Bar) Stop() {}

// Done returns the number of completed tasks.
func (b *Bar) Done() int { return b.done }

func (b *Bar) render(label string) string {
	pct := 0
	filled := 0
	if b.total > 0 {
		pct = b.done * 100 / b.total
		filled = b.done * barWidth / b.total
	}
	bar := strings.Repeat(completeChar, filled) + strings.Repeat(incompleteChar, barWidth-filled)
	return fmt.Sprintf("|%s| %3d%% | %d/%d %s", barStyle.Render(bar), pct, b.done, b.total, labelStyle.Render(label))
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)      {}
func (Nop) Advance(string) {}
func (Nop) Stop()          {}
