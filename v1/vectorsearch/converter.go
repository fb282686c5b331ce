package vectorsearch

import "math"

// Distance-similarity conversion.
//
// pgvector's operators return raw distances; callers reason in normalized
// similarity scores. Both directions are needed: scores for output, distances
// for threshold and cursor predicates. For every metric the two functions are
// inverses on the valid score domain, which is what keeps cursor-driven
// pagination stable across pages.
//
// The cosine score clamps at 0, so every cosine distance above 1 maps to
// score 0 and converts back to distance 1. A cursor taken at a score-0 row
// therefore cannot distinguish rows beyond distance 1, and continuation past
// that point may re-return them.

// operatorFor returns the pgvector distance operator for a metric.
// Unknown metrics fall back to cosine.
func operatorFor(m Metric) string {
	switch m {
	case MetricL2:
		return "<->"
	case MetricInnerProduct:
		return "<#>"
	default:
		return "<=>"
	}
}

// DistanceToScore converts a raw distance into a normalized similarity score.
//
//	Cosine:       max(0, 1 - distance)
//	L2:           1 / (1 + distance)
//	InnerProduct: -distance (the <#> operator already negates)
//
// Unknown metrics are treated as cosine.
func DistanceToScore(distance float64, m Metric) float64 {
	switch m {
	case MetricL2:
		return 1 / (1 + distance)
	case MetricInnerProduct:
		return -distance
	default:
		return math.Max(0, 1-distance)
	}
}

// ScoreToDistance is the inverse of DistanceToScore. It is used to turn
// similarity thresholds and cursor scores back into distance bounds.
//
// The L2 inverse divides by score and is undefined at score = 0; callers must
// reject a zero score for L2 before converting (see the executor's cursor
// handling).
func ScoreToDistance(score float64, m Metric) float64 {
	switch m {
	case MetricL2:
		return 1/score - 1
	case MetricInnerProduct:
		return -score
	default:
		return 1 - score
	}
}
