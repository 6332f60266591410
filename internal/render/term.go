package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/rcliao/chat-wrapped/internal/analysis"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteSummary prints the compact recap shown after generating a report.
func WriteSummary(w io.Writer, env Envelope) {
	b := env.Metrics
	t := b.Totals
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  CHAT WRAPPED %d\n", env.Year)
	fmt.Fprintf(w, "%s\n\n", rule)

	fmt.Fprintf(w, "  messages     %s (%s sent, %s received)\n", comma(t.Messages), comma(t.Sent), comma(t.Received))
	fmt.Fprintf(w, "  contacts     %s\n", comma(t.Contacts))
	if g := env.Groups; g != nil && g.Groups > 0 {
		fmt.Fprintf(w, "  group chats  %s (%s messages, %s sent)\n", comma(g.Groups), comma(g.Messages), comma(g.Sent))
	}
	fmt.Fprintf(w, "  characters   %s\n", comma(t.SentChars))
	fmt.Fprintf(w, "  peak hour    %s on %ss\n", hourLabel(t.PeakHour), t.PeakWeekday)
	if t.BusiestDay != "" {
		fmt.Fprintf(w, "  busiest day  %s (%s messages)\n", formatDay(t.BusiestDay), comma(t.BusiestCount))
	}
	if b.Latency.Sent.Samples > 0 {
		fmt.Fprintf(w, "  reply time   %dm median\n", replyMinutes(b.Latency.Sent.MedianSeconds))
	}
	fmt.Fprintf(w, "  diagnosis    %s\n", b.Personality.Label)
	if top := b.Rankings[string(analysis.MetricTopContacts)]; len(top) > 0 {
		fmt.Fprintf(w, "  your #1      %s (%s messages)\n", env.DisplayName(top[0].ContactKey), comma(int(top[0].Value)))
	}
	fmt.Fprintln(w)
}
