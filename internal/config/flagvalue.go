package config

import "github.com/guillaume-gricourt/HmnTrimmer/internal/filter"

// FilterFlag is a pflag.Value bound to one filter's CLI flag (e.g.
// --quality-tail). Several FilterFlag instances of different Kind share
// the same *[]FilterSpec pointer so that repeated, differently-named
// filter flags land in one list in the exact left-to-right order pflag
// encounters them on the command line (§4.5's "filters execute in the
// order given on the command line").
type FilterFlag struct {
	Kind  filter.Kind
	Specs *[]FilterSpec
}

func (f *FilterFlag) String() string {
	return ""
}

func (f *FilterFlag) Type() string {
	return "string"
}

func (f *FilterFlag) Set(raw string) error {
	spec, err := ParseSpec(f.Kind, raw)
	if err != nil {
		return err
	}
	*f.Specs = append(*f.Specs, spec)
	return nil
}
