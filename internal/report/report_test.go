package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/config"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/filter"
	"github.com/guillaume-gricourt/HmnTrimmer/internal/pipeline"
)

func TestBuildAndMarshal(t *testing.T) {
	spec, err := config.ParseSpec(filter.LenMin, "36")
	assert.NoError(t, err)

	stats := pipeline.Stats{
		Total:             10,
		Kept:              8,
		Discarded:         2,
		LengthBefore:      map[int]uint64{100: 10},
		LengthAfter:       map[int]uint64{100: 8},
		DiscardedByFilter: map[string]uint64{"LenMin": 2},
	}

	r := Build(
		Software{Name: "hmntrimmer", Version: "0.1.0"},
		"single",
		Files{Input: [2]string{"in.fq", ""}, Output: [2]string{"out.fq", ""}},
		[]config.FilterSpec{spec},
		42,
		stats,
	)

	assert.Equal(t, "hmntrimmer", r.Software.Name)
	assert.Equal(t, "single", r.Analyze.Sequencing)
	assert.Equal(t, "len_min:36", r.Analyze.Trimmers["LenMin"])
	assert.Equal(t, uint64(10), r.Stats.Total)
	assert.Equal(t, uint64(2), r.Stats.DiscardedByFilter["LenMin"])

	out, err := Marshal(r)
	assert.NoError(t, err)

	var roundTrip map[string]interface{}
	assert.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.Contains(t, roundTrip, "software")
	assert.Contains(t, roundTrip, "analyze")
	assert.Contains(t, roundTrip, "statistics")
}
