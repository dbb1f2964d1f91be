package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/pipeline"
)

// Comma formats an int64 with commas as thousand separators, the way the
// run summary reports read counts.
func Comma(value int64) string {
	neg := value < 0
	if neg {
		value = -value
	}
	str := strconv.FormatInt(value, 10)
	result := ""
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		if count > 0 && count%3 == 0 {
			result = "," + result
		}
		result = string(str[i]) + result
		count++
	}
	if neg {
		result = "-" + result
	}
	return result
}

// PrintSummary writes the end-of-run human-readable summary to w, gated by
// the --verbose level (SPEC_FULL.md, SUPPLEMENTED FEATURES).
func PrintSummary(w io.Writer, stats pipeline.Stats, elapsed time.Duration, verbose int) {
	if verbose < 2 {
		return
	}

	pct := 0.0
	if stats.Total > 0 {
		pct = float64(stats.Kept) / float64(stats.Total) * 100
	}

	fmt.Fprintf(w, "\nTotal reads: %s\n", Comma(int64(stats.Total)))
	fmt.Fprintf(w, "Kept reads: %s\n", Comma(int64(stats.Kept)))
	color.New(color.FgHiGreen).Fprintf(w, "Kept percentage: %.2f%%\n", pct)

	if verbose >= 4 {
		color.New(color.FgHiMagenta).Fprintf(w, "\nDiscarded reads: %s\n", Comma(int64(stats.Discarded)))
		for kind, count := range stats.DiscardedByFilter {
			color.New(color.FgHiMagenta).Fprintf(w, "  %s: %s\n", kind, Comma(int64(count)))
		}
	}

	if verbose >= 5 {
		fmt.Fprintf(w, "\nElapsed: %s\n", elapsed)
	}
}
