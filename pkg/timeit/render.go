package timeit

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mugendi/wraptimer/pkg/timer"
)

const ruleWidth = 80

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	lineColor   = color.New(color.FgHiBlack)
	tookColor   = color.New(color.FgGreen)
)

// render writes a report to the configured writer in the console format:
// a heavy rule naming the function, one row per recorded step, then the
// arguments (when enabled) and the total.
func (ti *TimeIt) render(r Report) {
	ti.outMu.Lock()
	defer ti.outMu.Unlock()

	kind := "SYNC FUNC"
	if r.Async {
		kind = "ASYNC FUNC"
	}

	head := fmt.Sprintf(" [ %s: %s ] ", kind, r.Name)
	pad := ruleWidth - len(head)
	if pad < 2 {
		pad = 2
	}
	left := strings.Repeat("━", pad/2)
	right := strings.Repeat("━", pad-pad/2)
	fmt.Fprintf(ti.out, "%s%s%s\n", left, headerColor.Sprint(head), right)

	for _, ln := range r.Lines {
		fmt.Fprintf(ti.out, "%s %s\n", lineColor.Sprint(lineHeading(ln)+","), tookColor.Sprintf("TOOK: %s", timer.Format(ln.Took)))
	}
	if len(r.Lines) > 0 {
		fmt.Fprintln(ti.out, strings.Repeat("-", ruleWidth))
	}

	if ti.showArgs && len(r.Args) > 0 {
		parts := make([]string, 0, len(r.Args))
		for _, a := range r.Args {
			parts = append(parts, fmt.Sprintf("%v", a))
		}
		fmt.Fprintf(ti.out, "ARGS: (%s)\n", strings.Join(parts, ", "))
	}

	fmt.Fprintf(ti.out, "%s\n", tookColor.Sprintf("TOOK: %s", timer.Format(r.Total)))
	fmt.Fprintln(ti.out, strings.Repeat("━", ruleWidth))
}

func lineHeading(ln LineTiming) string {
	switch {
	case ln.Line > 0 && ln.Label != "":
		return fmt.Sprintf("LINE: %d (%s)", ln.Line, ln.Label)
	case ln.Line > 0:
		return fmt.Sprintf("LINE: %d", ln.Line)
	default:
		if ln.Label == "" {
			return "STEP"
		}
		return strings.ToUpper(ln.Label)
	}
}
