package extract

import (
	"fmt"
	"io"
	"text/tabwriter"

	"colorkit/colors"
	"colorkit/common"
)

// Printer writes extraction results as aligned text.
type Printer struct {
	SummaryOnly bool
	MinCount    int
	Notation    colors.Notation
	// Preview adds 24-bit color sample at the end of every line.
	Preview bool
}

// Write prints every finding (unless SummaryOnly is set) followed by per
// color summary.
func (p Printer) Write(w io.Writer, res *Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if !p.SummaryOnly {
		for _, f := range res.Findings {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%s\n", f.Source, f.Kind, f.Context, f.Raw, f.Color.Display(p.Notation), p.sample(f.Color))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(res.Findings) > 0 {
			fmt.Fprintln(w)
		}
	}

	summary := res.Summary(p.MinCount)
	fmt.Fprintf(tw, "%d colors\t%d findings\t%d sources\n", len(summary), len(res.Findings), res.Sources)
	for _, c := range summary {
		fmt.Fprintf(tw, "%d\t%s\t%d sources%s\n", c.Count, c.Color.Display(p.Notation), len(c.Sources), p.sample(c.Color))
	}
	return tw.Flush()
}

func (p Printer) sample(c colors.Color) string {
	if !p.Preview {
		return ""
	}
	return "  " + common.Preview(c.R, c.G, c.B)
}
