package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/escapetime/internal/orbit"
	"github.com/san-kum/escapetime/internal/trace"
)

// Summary renders the parameters, outcome and metrics of a run.
func Summary(name string, p orbit.Params, out orbit.Outcome) string {
	var b strings.Builder

	b.WriteString(Title.Render("orbit "+name) + "\n")
	b.WriteString(row("c", fmt.Sprintf("%s %s i", trace.FormatDecimal(p.CRe), signed(p.CIm))))
	b.WriteString(row("max_iter", fmt.Sprintf("%d", p.MaxIter)))
	b.WriteString(row("radius", trace.FormatDecimal(p.Radius)))
	b.WriteString(row("steps", fmt.Sprintf("%d", out.Steps)))

	if out.Escaped {
		b.WriteString(row("status", StatusEscaped.Render(fmt.Sprintf("escaped at step %d", out.EscapeStep))))
	} else {
		b.WriteString(row("status", StatusBounded.Render("bounded")))
	}

	if len(out.Metrics) > 0 {
		keys := make([]string, 0, len(out.Metrics))
		for k := range out.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(Separator(36) + "\n")
		for _, k := range keys {
			b.WriteString(row(k, fmt.Sprintf("%.6f", out.Metrics[k])))
		}
	}

	return Panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

func row(label, value string) string {
	return MetricLabel.Render(fmt.Sprintf("%-16s", label)) + MetricValue.Render(value) + "\n"
}

func signed(v float64) string {
	s := trace.FormatDecimal(v)
	if strings.HasPrefix(s, "-") {
		return "- " + s[1:]
	}
	return "+ " + s
}
