// Package ats holds the match-score math: a TF-IDF vector space built over
// exactly two documents, cosine similarity between them, and keyword
// highlighting of the rewritten resume.
package ats

import (
	"math"
	"regexp"
	"strings"
)

var termRe = regexp.MustCompile(`\b\w\w+\b`)

// Score vectorizes the candidate and reference documents with smoothed
// TF-IDF, L2-normalizes both vectors, and returns their cosine similarity as
// a percentage rounded to two decimals. Empty input or fully disjoint
// vocabularies score 0. The measure is symmetric in its arguments.
func Score(candidate, reference string) float64 {
	candTerms := terms(candidate)
	refTerms := terms(reference)
	if len(candTerms) == 0 || len(refTerms) == 0 {
		return 0
	}

	vocab := make(map[string]struct{}, len(candTerms)+len(refTerms))
	for t := range candTerms {
		vocab[t] = struct{}{}
	}
	for t := range refTerms {
		vocab[t] = struct{}{}
	}

	// Smoothed inverse document frequency over the two-document corpus:
	// idf = ln((1+n)/(1+df)) + 1 with n = 2.
	var dot, candNorm, refNorm float64
	for t := range vocab {
		df := 0
		if candTerms[t] > 0 {
			df++
		}
		if refTerms[t] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		cw := float64(candTerms[t]) * idf
		rw := float64(refTerms[t]) * idf
		dot += cw * rw
		candNorm += cw * cw
		refNorm += rw * rw
	}
	if candNorm == 0 || refNorm == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(candNorm) * math.Sqrt(refNorm))
	return math.Round(cos*100*100) / 100
}

func terms(text string) map[string]int {
	counts := make(map[string]int)
	for _, t := range termRe.FindAllString(strings.ToLower(text), -1) {
		counts[t]++
	}
	return counts
}
