package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/batch"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/config"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/fastqio"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/pipeline"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/report"
)

var (
	inputForward, inputReverse, inputInterleaved    string
	outputForward, outputReverse, outputInterleaved string
	outputDiscard, outputReport                     string

	threads    int
	readsBatch int
	verbose    int

	filterSpecs []config.FilterSpec
)

// bindAlias registers name as a second, hidden long flag writing into the
// same variable as an already-bound flag, giving §6's "-iff/--long-name"
// pairs without relying on pflag's single-character shorthand.
func bindAlias(flags *pflag.FlagSet, p *string, name string) {
	flags.StringVar(p, name, *p, "")
	flags.Lookup(name).Hidden = true
}

func bindIntAlias(flags *pflag.FlagSet, p *int, name string) {
	flags.IntVar(p, name, *p, "")
	flags.Lookup(name).Hidden = true
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hmntrimmer",
		Short:         "Batch FASTQ quality/length/complexity trimmer",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	cmd.SetHelpFunc(helpFunc)

	flags := cmd.Flags()

	flags.StringVar(&inputForward, "input-fastq-forward", "", "Forward (or single-end) input FASTQ file")
	bindAlias(flags, &inputForward, "iff")
	flags.StringVar(&inputReverse, "input-fastq-reverse", "", "Reverse input FASTQ file")
	bindAlias(flags, &inputReverse, "ifr")
	flags.StringVar(&inputInterleaved, "input-fastq-interleaved", "", "Interleaved paired input FASTQ file")
	bindAlias(flags, &inputInterleaved, "ifi")

	flags.StringVar(&outputForward, "output-fastq-forward", "", "Forward (or single-end) output FASTQ file")
	bindAlias(flags, &outputForward, "off")
	flags.StringVar(&outputReverse, "output-fastq-reverse", "", "Reverse output FASTQ file")
	bindAlias(flags, &outputReverse, "ofr")
	flags.StringVar(&outputInterleaved, "output-fastq-interleaved", "", "Interleaved paired output FASTQ file")
	bindAlias(flags, &outputInterleaved, "ofi")

	flags.StringVarP(&outputDiscard, "output-fastq-discard", "u", "", "Discarded-read sink FASTQ file (optional)")
	flags.StringVarP(&outputReport, "output-report", "r", "", "JSON report path (optional)")

	flags.Var(&config.FilterFlag{Kind: filter.QualTail, Specs: &filterSpecs}, "quality-tail", "Q[:N[:P]] - discard/trim on a trailing low-quality run")
	flags.Var(&config.FilterFlag{Kind: filter.QualSld, Specs: &filterSpecs}, "quality-sliding-window", "M:W - trim where a sliding window's mean quality drops below M")
	flags.Var(&config.FilterFlag{Kind: filter.LenMin, Specs: &filterSpecs}, "length-min", "L - discard reads of length L or shorter")
	flags.Var(&config.FilterFlag{Kind: filter.InfoDust, Specs: &filterSpecs}, "information-dust", "C - discard low-complexity reads above DUST score C")
	flags.Var(&config.FilterFlag{Kind: filter.InfoN, Specs: &filterSpecs}, "information-n", "S - discard reads with S or more N bases")

	flags.IntVarP(&threads, "threads", "t", 1, "Worker threads, 1..8")
	flags.IntVar(&readsBatch, "reads-batch", 1_000_000, "Reads per batch, 100..50000000")
	bindIntAlias(flags, &readsBatch, "rb")
	flags.IntVar(&verbose, "verbose", 4, "Verbosity level, 1..6")
	bindIntAlias(flags, &verbose, "ver")

	// "version" is a genuine single-character shorthand (-v), so it is bound
	// explicitly here rather than left to cobra's InitDefaultVersionFlag,
	// matching how every other real shorthand in this command is wired.
	flags.BoolP("version", "v", false, "Print the version and exit")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	start := time.Now()

	ioMode, err := config.ValidateIO(config.IOConfig{
		InputForward: inputForward, InputReverse: inputReverse, InputInterleaved: inputInterleaved,
		OutputForward: outputForward, OutputReverse: outputReverse, OutputInterleaved: outputInterleaved,
	})
	if err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}
	if threads, err = config.ClampThreads(threads); err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}
	if readsBatch, err = config.ClampReadsBatch(readsBatch); err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}
	if verbose, err = config.ClampVerbose(verbose); err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}

	if verbose >= 6 {
		for _, spec := range filterSpecs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: filter %s %v\n", cyan("parsed"), spec.Kind, spec.Params)
		}
	}

	paired := ioMode == "paired"
	interleavedIn := inputInterleaved != ""
	interleavedOut := outputInterleaved != ""

	store := batch.New(paired, outputDiscard != "")

	r1, err := fastqio.NewReader(pick(inputForward, inputInterleaved))
	if err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}
	defer r1.Close()

	runner := pipeline.NewRunner(store, filterSpecs, threads, readsBatch)
	runner.SourceR1 = r1
	runner.Interleaved = interleavedIn
	runner.InterleavedOutput = interleavedOut

	if paired && !interleavedIn {
		r2, err := fastqio.NewReader(inputReverse)
		if err != nil {
			return errors.Wrap(err, "hmntrimmer")
		}
		defer r2.Close()
		runner.SourceR2 = r2
	}

	w1, err := fastqio.NewWriter(pick(outputForward, outputInterleaved), threads)
	if err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}
	defer w1.Close()
	runner.WriterR1 = w1

	if paired && !interleavedOut {
		w2, err := fastqio.NewWriter(outputReverse, threads)
		if err != nil {
			return errors.Wrap(err, "hmntrimmer")
		}
		defer w2.Close()
		runner.WriterR2 = w2
	}

	if outputDiscard != "" {
		dw, err := fastqio.NewWriter(outputDiscard, threads)
		if err != nil {
			return errors.Wrap(err, "hmntrimmer")
		}
		defer dw.Close()
		runner.DiscardWriter = dw
	}

	stats, err := runner.RunAll()
	if err != nil {
		return errors.Wrap(err, "hmntrimmer")
	}

	elapsed := time.Since(start)
	PrintSummary(cmd.ErrOrStderr(), stats, elapsed, verbose)

	if outputReport != "" {
		rpt := report.Build(
			report.Software{Name: "hmntrimmer", Version: Version},
			ioMode,
			report.Files{
				Input:  [2]string{inputForward, inputReverse},
				Output: [2]string{outputForward, outputReverse},
			},
			filterSpecs,
			uint64(elapsed.Seconds()),
			stats,
		)
		out, err := report.Marshal(rpt)
		if err != nil {
			return errors.Wrap(err, "hmntrimmer")
		}
		if err := os.WriteFile(outputReport, out, 0o644); err != nil {
			return errors.Wrap(err, "hmntrimmer: writing report")
		}
	}

	return nil
}

func pick(forward, interleaved string) string {
	if interleaved != "" {
		return interleaved
	}
	return forward
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error:"), err)
		os.Exit(1)
	}
}
