package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/designlens/designlens/schema"
)

// neighbor pairs a corpus entry with its Euclidean distance from the query.
type neighbor struct {
	entry    schema.CorpusEntry
	distance float64
}

// knnResult is the outcome of weighted nearest-neighbor regression.
// EmptyCorpus signals the predictor to fall back to the baseline; it is not
// an error.
type knnResult struct {
	score       float64
	confidence  float64
	emptyCorpus bool
}

// nearestNeighbors ranks candidates by Euclidean distance over the full
// feature space. Entries whose schema version or dimensionality does not
// match the query are excluded, never truncated or padded; each exclusion is
// reported as a warning.
func nearestNeighbors(query schema.FeatureVector, candidates []schema.CorpusEntry, k int) ([]neighbor, []string) {
	var warnings []string
	neighbors := make([]neighbor, 0, len(candidates))

	for _, entry := range candidates {
		if entry.SchemaVersion != query.SchemaVersion {
			warnings = append(warnings, fmt.Sprintf(
				"corpus entry %d excluded: %v (entry version %d, query version %d)",
				entry.ID, schema.ErrSchemaVersionMismatch, entry.SchemaVersion, query.SchemaVersion))
			continue
		}
		if len(entry.Features) != len(query.Values) {
			warnings = append(warnings, fmt.Sprintf(
				"corpus entry %d excluded: %v (entry has %d dims, query has %d)",
				entry.ID, schema.ErrDimensionMismatch, len(entry.Features), len(query.Values)))
			continue
		}
		neighbors = append(neighbors, neighbor{
			entry:    entry,
			distance: floats.Distance(query.Values, entry.Features, 2),
		})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].distance < neighbors[j].distance
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors, warnings
}

// predictFromNeighbors runs distance-weighted k-NN regression.
//
// An exact match (distance 0) short-circuits to that neighbor's score with
// full confidence. Otherwise each neighbor is weighted 1/(1+distance) and
// confidence decays linearly with the nearest distance; the decay scale is a
// tunable with no calibration rationale in the source heuristics.
func predictFromNeighbors(neighbors []neighbor, tun schema.Tunables) knnResult {
	if len(neighbors) == 0 {
		return knnResult{score: tun.BaselineScore, confidence: 0, emptyCorpus: true}
	}

	nearest := neighbors[0]
	if nearest.distance == 0 {
		return knnResult{score: nearest.entry.Score, confidence: 1}
	}

	var weightedSum, weightTotal float64
	for _, n := range neighbors {
		w := 1 / (1 + n.distance)
		weightedSum += n.entry.Score * w
		weightTotal += w
	}

	confidence := 1 - nearest.distance/tun.ConfidenceDistance
	if confidence < 0 {
		confidence = 0
	}

	return knnResult{
		score:      weightedSum / weightTotal,
		confidence: confidence,
	}
}
