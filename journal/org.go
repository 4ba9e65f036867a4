package journal

import (
	"fmt"
	"strings"
)

// FormatEntryOrg renders an Entry as an Org-mode block. Structured fields go
// in the PROPERTIES drawer; the reason becomes the body.
func FormatEntryOrg(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Entry: %s %s %+.2f (%s)\n", e.Date, e.Direction, e.PnL, shortID(e.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", e.ID)
	fmt.Fprintf(&b, ":DATE: %s\n", e.Date)
	fmt.Fprintf(&b, ":PNL: %.2f\n", e.PnL)
	fmt.Fprintf(&b, ":TRADES: %d\n", e.Trades)
	fmt.Fprintf(&b, ":LONG: %d\n", e.Longs())
	fmt.Fprintf(&b, ":SHORT: %d\n", e.Shorts())
	fmt.Fprintf(&b, ":DIRECTION: %s\n", e.Direction)
	fmt.Fprintf(&b, ":BIAS: %s\n", e.Bias)
	if e.Image != "" {
		fmt.Fprintf(&b, ":IMAGE: %s\n", e.Image)
	}
	b.WriteString(":END:\n\n")

	b.WriteString("*** Reason\n")
	if r := strings.TrimSpace(e.Reason); r != "" {
		b.WriteString(r)
		b.WriteString("\n")
	} else {
		b.WriteString("- \n")
	}
	if e.Image != "" {
		fmt.Fprintf(&b, "\n[[%s]]\n", e.Image)
	}
	return b.String()
}

// FormatEntriesOrg renders multiple entries separated by blank lines.
func FormatEntriesOrg(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatEntryOrg(e))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
