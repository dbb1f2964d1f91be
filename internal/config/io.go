package config

import "github.com/pkg/errors"

// IOConfig is the raw set of file-path flags from §6.
type IOConfig struct {
	InputForward, InputReverse, InputInterleaved    string
	OutputForward, OutputReverse, OutputInterleaved string
	OutputDiscard, OutputReport                     string
}

func ioMode(forward, reverse, interleaved string) (string, error) {
	hasF, hasR, hasI := forward != "", reverse != "", interleaved != ""
	switch {
	case hasI && (hasF || hasR):
		return "", errors.New("interleaved cannot be combined with forward/reverse")
	case hasI:
		return "paired", nil
	case hasF && hasR:
		return "paired", nil
	case hasF:
		return "single", nil
	case hasR:
		return "", errors.New("reverse given without forward")
	default:
		return "undefined", nil
	}
}

// ValidateIO checks that the input and output combinations are each
// internally valid and that their single/paired modes match (§6). It
// returns the resolved mode ("single" or "paired").
func ValidateIO(c IOConfig) (string, error) {
	inMode, err := ioMode(c.InputForward, c.InputReverse, c.InputInterleaved)
	if err != nil {
		return "", errors.Wrap(err, "config: invalid input combination")
	}
	if inMode == "undefined" {
		return "", errors.New("config: no input specified")
	}
	outMode, err := ioMode(c.OutputForward, c.OutputReverse, c.OutputInterleaved)
	if err != nil {
		return "", errors.Wrap(err, "config: invalid output combination")
	}
	if outMode == "undefined" {
		return "", errors.New("config: no output specified")
	}
	if inMode != outMode {
		return "", errors.Errorf("config: input is %s but output is %s", inMode, outMode)
	}
	return inMode, nil
}

// ClampThreads validates the --threads bound [1, 8] (§5, §6).
func ClampThreads(n int) (int, error) {
	if n < 1 || n > 8 {
		return 0, errors.Errorf("config: threads must be in [1, 8], got %d", n)
	}
	return n, nil
}

// ClampReadsBatch validates the --reads-batch bound [100, 50_000_000] (§6).
func ClampReadsBatch(n int) (int, error) {
	if n < 100 || n > 50_000_000 {
		return 0, errors.Errorf("config: reads-batch must be in [100, 50000000], got %d", n)
	}
	return n, nil
}

// ClampVerbose validates the --verbose bound [1, 6] (§6, SPEC_FULL.md
// SUPPLEMENTED FEATURES).
func ClampVerbose(n int) (int, error) {
	if n < 1 || n > 6 {
		return 0, errors.Errorf("config: verbose must be in [1, 6], got %d", n)
	}
	return n, nil
}
