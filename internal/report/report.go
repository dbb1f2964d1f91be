// Package report builds and marshals the run's JSON report (§6), plus the
// supplemented discarded_by_filter breakdown.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/config"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/pipeline"
)

// Software identifies the tool in the report's "software" block.
type Software struct {
	Name    string
	Version string
}

// Files names the input/output paths used for a run, forward then reverse
// (empty string when not applicable to the run's mode).
type Files struct {
	Input  [2]string
	Output [2]string
}

// Report is the root JSON document (§6).
type Report struct {
	Software softwareJSON `json:"software"`
	Analyze  analyzeJSON  `json:"analyze"`
	Stats    statsJSON    `json:"statistics"`
}

type softwareJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type analyzeJSON struct {
	Runtime    runtimeJSON       `json:"runtime"`
	Sequencing string            `json:"sequencing"`
	File       fileJSON          `json:"file"`
	Trimmers   map[string]string `json:"trimmers"`
}

type runtimeJSON struct {
	Unit  string `json:"unit"`
	Value uint64 `json:"value"`
}

type fileJSON struct {
	Input  [2]string `json:"input"`
	Output [2]string `json:"output"`
}

type statsJSON struct {
	Total             uint64            `json:"total"`
	Kept              uint64            `json:"kept"`
	Discarded         uint64            `json:"discarded"`
	LengthBefore      map[string]uint64 `json:"length_reads_before"`
	LengthAfter       map[string]uint64 `json:"length_reads_after"`
	DiscardedByFilter map[string]uint64 `json:"discarded_by_filter"`
}

// Build assembles a Report from the run's configuration and accumulated
// statistics.
func Build(sw Software, sequencing string, files Files, specs []config.FilterSpec, runtimeSeconds uint64, stats pipeline.Stats) Report {
	trimmers := make(map[string]string)
	for _, spec := range specs {
		trimmers[string(spec.Kind)] = formatParams(spec.Params)
	}

	return Report{
		Software: softwareJSON{Name: sw.Name, Version: sw.Version},
		Analyze: analyzeJSON{
			Runtime:    runtimeJSON{Unit: "seconds", Value: runtimeSeconds},
			Sequencing: sequencing,
			File:       fileJSON{Input: files.Input, Output: files.Output},
			Trimmers:   trimmers,
		},
		Stats: statsJSON{
			Total:             stats.Total,
			Kept:              stats.Kept,
			Discarded:         stats.Discarded,
			LengthBefore:      stringifyLengthMap(stats.LengthBefore),
			LengthAfter:       stringifyLengthMap(stats.LengthAfter),
			DiscardedByFilter: stats.DiscardedByFilter,
		},
	}
}

func formatParams(params map[string]uint32) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	// Deterministic, human-readable ordering in the report string.
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, params[name]))
	}
	return strings.Join(parts, ", ")
}

func stringifyLengthMap(m map[int]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(m))
	for length, count := range m {
		out[strconv.Itoa(length)] = count
	}
	return out
}

// Marshal renders the report as indented JSON.
func Marshal(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
