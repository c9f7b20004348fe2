// File path: internal/engine/vector.go
package engine

import "math"

// Vectorize builds a term vector from a normalized token stream. Term
// frequencies get sublinear scaling (1 + log tf) so heavy repetition of one
// term cannot dominate the vector: the score measures vocabulary breadth, not
// raw repetition. No inverse-document-frequency weighting is applied — with
// exactly two documents compared pairwise, IDF would penalize the shared
// vocabulary the score is meant to reward.
func Vectorize(tokens []string) TermVector {
	if len(tokens) == 0 {
		return TermVector{}
	}
	vec := make(TermVector, len(tokens))
	for _, tok := range tokens {
		vec[tok]++
	}
	for term, tf := range vec {
		vec[term] = 1 + math.Log(tf)
	}
	return vec
}

// Cosine computes the normalized dot product of two term vectors. The result
// is clamped to [0, 1]; a zero-norm vector yields 0 rather than an error.
func Cosine(a, b TermVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller vector for the dot product.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	var dot float64
	for term, w := range small {
		if other, ok := large[term]; ok {
			dot += w * other
		}
	}
	denom := norm(a) * norm(b)
	if denom == 0 {
		return 0
	}
	score := dot / denom
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func norm(v TermVector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
