package service

import (
	"math"
	"unicode/utf8"

	"github.com/profolio/profolio/internal/domain"
)

const scoreRawMax = 13

// Score derives the 0-100 profile completeness signal. Sub-scores are summed
// and normalized against the raw maximum of 13, rounding half up.
func Score(p *domain.Profile) int {
	if p == nil {
		return 0
	}
	raw := introductionScore(p.Introduction) +
		technologyScore(len(p.Technologies)) +
		positionScore(len(p.Positions)) +
		countPairScore(len(p.Awards)) +
		countPairScore(len(p.Links))
	return int(math.Round(float64(raw) / scoreRawMax * 100))
}

func introductionScore(s string) int {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return 0
	case n >= 300:
		return 4
	case n >= 200:
		return 2
	case n >= 100:
		return 1
	default:
		return 0
	}
}

func technologyScore(n int) int {
	switch {
	case n >= 5:
		return 4
	case n >= 2:
		return 2
	case n >= 1:
		return 1
	default:
		return 0
	}
}

func positionScore(n int) int {
	if n > 0 {
		return 1
	}
	return 0
}

// countPairScore covers awards and links: one item scores 1, two or more 2.
func countPairScore(n int) int {
	switch {
	case n >= 2:
		return 2
	case n == 1:
		return 1
	default:
		return 0
	}
}
