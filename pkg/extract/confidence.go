package extract

// Confidence weighting for drafts built from web-extracted text: how much
// of the score comes from the extraction step (how much of the input was
// usable) versus the parse step (how complete the resulting draft is).
// The weights must sum to 1.
const (
	ExtractionConfidenceWeight = 0.3
	ParseConfidenceWeight      = 0.7
)

// CombineConfidence folds the two stage scores into one 0-1 score.
func CombineConfidence(extraction, parse float64) float64 {
	score := ExtractionConfidenceWeight*clamp01(extraction) + ParseConfidenceWeight*clamp01(parse)
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
