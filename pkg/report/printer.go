// Package report renders merge progress and collection listings for the terminal.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/blackcoderx/postman-merge/pkg/merger"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes one human-readable line per merge event.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Handle renders a single event. Its signature matches merger.EventCallback.
func (p *Printer) Handle(ev merger.Event) {
	base := filepath.Base(ev.Path)

	switch ev.Type {
	case merger.EventSectionAdded:
		p.line(SuccessStyle, SuccessGlyph, fmt.Sprintf("Added section %s to %s", ev.Section, base))
	case merger.EventSectionExists:
		p.line(SkipStyle, SkipGlyph, fmt.Sprintf("Section %s already exists in %s", ev.Section, base))
	case merger.EventSaved:
		p.line(SuccessStyle, SuccessGlyph, "Saved: "+ev.Path)
	case merger.EventUnchanged:
		p.line(WarnStyle, WarnGlyph, "No changes in: "+ev.Path)
	case merger.EventDiff:
		p.line(WarnStyle, WarnGlyph, "Dry run, not writing: "+ev.Path)
		fmt.Fprint(p.out, ev.Diff)
		if !strings.HasSuffix(ev.Diff, "\n") {
			fmt.Fprintln(p.out)
		}
	case merger.EventNotFound:
		p.line(WarnStyle, WarnGlyph, "File not found: "+ev.Path)
	case merger.EventError:
		p.line(ErrorStyle, ErrorGlyph, fmt.Sprintf("Error in %s: %v", ev.Path, ev.Err))
	case merger.EventDone:
		fmt.Fprintln(p.out)
		msg := "Done"
		if s := ev.Summary; s != nil {
			msg = fmt.Sprintf("Done (%d updated, %d unchanged, %d failed)", s.Updated, s.Unchanged, s.Failed)
			if s.Pending > 0 {
				msg = fmt.Sprintf("Done, dry run (%d would be updated, %d unchanged, %d failed)", s.Pending, s.Unchanged, s.Failed)
			}
		}
		p.line(SuccessStyle, SuccessGlyph, msg)
	}
}

func (p *Printer) line(style lipgloss.Style, glyph, msg string) {
	fmt.Fprintf(p.out, "%s %s\n", style.Render(glyph), msg)
}
