// Package config implements the configuration model (C5): parsing the
// repeatable `:`-delimited filter flags into an ordered list of
// FilterSpecs, and validating the I/O combination and numeric bounds
// described in §6 before any batch runs.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
)

// FilterSpec is one parsed, validated filter step: a kind plus its
// parameter map, in the order it will be applied (§4.5).
type FilterSpec struct {
	Kind   filter.Kind
	Params filter.Params
}

func parseU32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "config: %q is not a valid unsigned integer", s)
	}
	return uint32(v), nil
}

// ParseSpec parses the `:`-delimited argument list for one filter flag
// occurrence into a validated FilterSpec.
func ParseSpec(kind filter.Kind, raw string) (FilterSpec, error) {
	if !filter.Valid(kind) {
		return FilterSpec{}, errors.Errorf("config: unrecognised filter kind %q", kind)
	}
	parts := strings.Split(raw, ":")
	params := filter.Params{}

	switch kind {
	case filter.QualTail:
		if len(parts) < 1 || len(parts) > 3 || parts[0] == "" {
			return FilterSpec{}, errors.Errorf("config: --quality-tail expects Q[:N[:P]], got %q", raw)
		}
		q, err := parseU32(parts[0])
		if err != nil {
			return FilterSpec{}, err
		}
		params["base_quality"] = q
		n := uint32(1)
		if len(parts) >= 2 && parts[1] != "" {
			if n, err = parseU32(parts[1]); err != nil {
				return FilterSpec{}, err
			}
		}
		params["base_number"] = n
		if len(parts) == 3 && parts[2] != "" {
			p, err := parseU32(parts[2])
			if err != nil {
				return FilterSpec{}, err
			}
			params["len_perc"] = p
		}

	case filter.QualSld:
		if len(parts) != 2 {
			return FilterSpec{}, errors.Errorf("config: --quality-sliding-window expects M:W, got %q", raw)
		}
		m, err := parseU32(parts[0])
		if err != nil {
			return FilterSpec{}, err
		}
		w, err := parseU32(parts[1])
		if err != nil {
			return FilterSpec{}, err
		}
		params["mean_quality"] = m
		params["windows_length"] = w

	case filter.LenMin:
		if len(parts) != 1 {
			return FilterSpec{}, errors.Errorf("config: --length-min expects L, got %q", raw)
		}
		l, err := parseU32(parts[0])
		if err != nil {
			return FilterSpec{}, err
		}
		params["len_min"] = l

	case filter.InfoDust:
		if len(parts) != 1 {
			return FilterSpec{}, errors.Errorf("config: --information-dust expects C, got %q", raw)
		}
		c, err := parseU32(parts[0])
		if err != nil {
			return FilterSpec{}, err
		}
		params["score"] = c

	case filter.InfoN:
		if len(parts) != 1 {
			return FilterSpec{}, errors.Errorf("config: --information-n expects S, got %q", raw)
		}
		s, err := parseU32(parts[0])
		if err != nil {
			return FilterSpec{}, err
		}
		params["score"] = s
	}

	if err := validateParamNames(kind, params); err != nil {
		return FilterSpec{}, err
	}
	return FilterSpec{Kind: kind, Params: params}, nil
}

func validateParamNames(kind filter.Kind, params filter.Params) error {
	allowed := make(map[string]struct{})
	for _, name := range filter.RequiredParams[kind] {
		allowed[name] = struct{}{}
	}
	for _, name := range filter.OptionalParams[kind] {
		allowed[name] = struct{}{}
	}
	for _, name := range filter.RequiredParams[kind] {
		if _, ok := params[name]; !ok {
			return errors.Errorf("config: %s missing required parameter %q", kind, name)
		}
	}
	for name := range params {
		if _, ok := allowed[name]; !ok {
			return errors.Errorf("config: %s does not recognise parameter %q", kind, name)
		}
	}
	return nil
}
