package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// helpFunc prints a custom, colorized help screen in place of cobra's
// default usage template, in the style phredsort uses for its own root
// command help.
func helpFunc(cmd *cobra.Command, args []string) {
	fmt.Printf(`
%s

%s
  Trims and filters FASTQ reads in batches: quality-based tail and
  sliding-window trimming, minimum-length discard, and low-complexity
  (DUST) or excess-N discard. Single-end, paired (forward/reverse) and
  paired interleaved FASTQ are all supported, gzip-compressed or not.

%s
  %s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s

%s
  %s
  %s

%s
  hmntrimmer --iff in.fq.gz --off out.fq.gz --length-min 36
  hmntrimmer --ifi in.fq.gz --ofi out.fq.gz --quality-tail 20:5 --length-min 30
  hmntrimmer --iff r1.fq.gz --ifr r2.fq.gz --off r1.out.fq.gz --ofr r2.out.fq.gz \
    --quality-sliding-window 25:4 --information-n 5 -t 4 -r report.json

`,
		bold(green("hmntrimmer")+" "+Version+" - batch FASTQ quality/length/complexity trimmer"),
		bold(yellow("Description:")),
		bold(yellow("Input/output:")),
		cyan("--iff, --input-fastq-forward")+"        FILE : forward (or single-end) input",
		cyan("--ifr, --input-fastq-reverse")+"        FILE : reverse input",
		cyan("--ifi, --input-fastq-interleaved")+"    FILE : interleaved paired input",
		cyan("--off, --output-fastq-forward")+"       FILE : forward (or single-end) output",
		cyan("--ofr, --output-fastq-reverse")+"       FILE : reverse output",
		cyan("--ofi, --output-fastq-interleaved")+"   FILE : interleaved paired output",
		cyan("-u,    --output-fastq-discard")+"       FILE : discarded reads sink (optional)",
		bold(yellow("Filters (repeatable, applied in the order given):")),
		cyan("--quality-tail")+"            Q[:N[:P]] : trim a trailing run of N+ bases at/below Q",
		cyan("--quality-sliding-window")+"  M:W       : trim where a window of W bases drops below mean M",
		cyan("--length-min")+"              L         : discard reads of length L or shorter",
		cyan("--information-dust")+"        C         : discard low-complexity reads above DUST score C",
		cyan("--information-n")+"           S         : discard reads with S or more N bases",
		bold(yellow("Run control:")),
		cyan("-t,   --threads")+"      N : worker threads, 1..8 (default 1)",
		cyan("--rb,  --reads-batch")+" B : reads per in-memory batch, 100..50000000 (default 1000000)",
		cyan("--ver, --verbose")+"     L : verbosity, 1..6 (default 4)",
		bold(yellow("Report:")),
		cyan("-r, --output-report")+" FILE : write a JSON run report to FILE",
		cyan("-v, --version")+"            : print the version and exit",
		bold(yellow("Examples:")),
	)
}
