package main

import (
	"fmt"
	"io"

	"github.com/aromax/storefront/internal/domain"
	"github.com/fatih/color"
)

// UI prints human-readable output. In JSON mode every method is a no-op.
type UI struct {
	out      io.Writer
	jsonMode bool

	header  *color.Color
	label   *color.Color
	price   *color.Color
	warning *color.Color
	done    *color.Color
	pending *color.Color
}

// NewUI creates a new UI instance.
func NewUI(out io.Writer, jsonMode bool) *UI {
	return &UI{
		out:      out,
		jsonMode: jsonMode,
		header:   color.New(color.FgCyan, color.Bold),
		label:    color.New(color.FgHiBlack),
		price:    color.New(color.FgGreen),
		warning:  color.New(color.FgYellow),
		done:     color.New(color.FgGreen),
		pending:  color.New(color.FgHiBlack),
	}
}

// Header prints a section heading.
func (ui *UI) Header(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	ui.header.Fprintf(ui.out, format+"\n", args...)
}

// Product prints one catalog entry.
func (ui *UI) Product(p domain.Product) {
	if ui.jsonMode {
		return
	}
	fmt.Fprintf(ui.out, "  #%-3d %-18s ", p.ID, p.Name)
	ui.price.Fprintf(ui.out, "$%-7.2f", p.Price)
	ui.label.Fprintf(ui.out, " %s · %s\n", p.ScentProfile, p.Season)
}

// Field prints a label/value pair.
func (ui *UI) Field(label, value string) {
	if ui.jsonMode {
		return
	}
	ui.label.Fprintf(ui.out, "  %-10s ", label)
	fmt.Fprintln(ui.out, value)
}

// Bullet prints a list item.
func (ui *UI) Bullet(s string) {
	if ui.jsonMode {
		return
	}
	fmt.Fprintf(ui.out, "  • %s\n", s)
}

// Info prints an informational line.
func (ui *UI) Info(s string) {
	if ui.jsonMode {
		return
	}
	fmt.Fprintf(ui.out, "ℹ %s\n", s)
}

// Warning prints a warning message.
func (ui *UI) Warning(s string) {
	if ui.jsonMode {
		return
	}
	ui.warning.Fprintf(ui.out, "⚠ %s\n", s)
}

// Reply prints an assistant answer.
func (ui *UI) Reply(s string) {
	if ui.jsonMode {
		return
	}
	ui.header.Fprint(ui.out, "AromaAI: ")
	fmt.Fprintln(ui.out, s)
}

// Step prints one delivery timeline entry.
func (ui *UI) Step(e domain.TimelineEvent) {
	if ui.jsonMode {
		return
	}
	if e.Completed {
		ui.done.Fprintf(ui.out, "  ✓ %-17s %s\n", e.Status, e.Date)
		return
	}
	ui.pending.Fprintf(ui.out, "  ○ %-17s %s\n", e.Status, e.Date)
}
