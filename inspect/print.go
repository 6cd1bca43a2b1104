// Package inspect implements commands which print information about colors.
package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"colorkit/colors"
	"colorkit/common"
)

// Printer writes colors as aligned text.
type Printer struct {
	Notation colors.Notation
	// Preview adds 24-bit color sample after every color.
	Preview bool
}

func (p Printer) sample(cs ...colors.Color) string {
	if !p.Preview {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("  ")
	for _, c := range cs {
		sb.WriteString(common.Preview(c.R, c.G, c.B))
	}
	return sb.String()
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// WriteLine prints text followed by the color sample.
func (p Printer) WriteLine(w io.Writer, text string, cs ...colors.Color) error {
	_, err := fmt.Fprintln(w, text+p.sample(cs...))
	return err
}

// WriteNotations prints input followed by the color in every notation.
func (p Printer) WriteNotations(w io.Writer, input string, c colors.Color) error {
	if err := p.WriteLine(w, input, c); err != nil {
		return err
	}
	tw := newTabWriter(w)
	for _, name := range colors.NotationNames() {
		n, _ := colors.ParseNotation(name)
		fmt.Fprintf(tw, "  %s\t%s\n", name, c.Format(n))
	}
	return tw.Flush()
}

// WriteVariations prints labelled variations strip, one entry per line.
func (p Printer) WriteVariations(w io.Writer, vars []colors.Variation) error {
	tw := newTabWriter(w)
	for _, v := range vars {
		fmt.Fprintf(tw, "%s\t%s%s\n", v.Label, v.Color.Display(p.Notation), p.sample(v.Color))
	}
	return tw.Flush()
}

// WriteNames prints named colors table.
func (p Printer) WriteNames(w io.Writer, names []string) error {
	tw := newTabWriter(w)
	for _, name := range names {
		c, ok := colors.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s%s\n", name, c.Display(p.Notation), p.sample(c))
	}
	return tw.Flush()
}

// matchNames selects names containing substring, case is ignored.
func matchNames(names []string, substr string) []string {
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return names
	}
	var res []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), substr) {
			res = append(res, n)
		}
	}
	return res
}
