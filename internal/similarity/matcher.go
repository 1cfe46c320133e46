// Package similarity ranks owned garments against a described target.
// Ranking is a pure function of its inputs: same collection, same query,
// same ordered result.
package similarity

import (
	"sort"
	"strconv"
	"strings"

	"wardrobe/internal/model"
)

// Scoring weights. Brand+size together is the strongest predictor of fit;
// brand or size alone are weaker signals; measurement proximity is an
// independent additive refinement.
const (
	scoreBrandAndSize = 100
	scoreBrandOnly    = 40
	scoreSizeOnly     = 20

	measurementClose = 30 // |diff| <= 2
	measurementNear  = 15 // |diff| <= 5
)

// Rank scores every item of the query's type and returns them in descending
// score order. Items of any other type are excluded entirely. Ties keep the
// input collection order. A query without a type yields no matches — callers
// are expected to validate the type before ranking.
func Rank(query Query, clothes []model.ClothingItem) []Match {
	if query.Type == "" {
		return nil
	}

	matches := make([]Match, 0, len(clothes))
	for _, item := range clothes {
		if item.Type != query.Type {
			continue
		}
		matches = append(matches, Match{ID: item.ID, Score: score(query, item)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func score(query Query, item model.ClothingItem) int {
	sizeMatch := query.Size != "" && item.Size == query.Size
	brandMatch := query.Brand != "" && strings.EqualFold(item.Brand, query.Brand)

	total := 0
	switch {
	case sizeMatch && brandMatch:
		total += scoreBrandAndSize
	case brandMatch:
		total += scoreBrandOnly
	case sizeMatch:
		total += scoreSizeOnly
	}

	// Footwear is compared on shoe size alone; width/length do not apply.
	if !query.Type.UsesShoeSizing() {
		total += measurementScore(query.Width, item.Width)
		total += measurementScore(query.Length, item.Length)
	}
	return total
}

// measurementScore awards proximity points when both sides carry a parseable
// numeric measurement. Missing on either side contributes nothing.
func measurementScore(want, have string) int {
	w, err := strconv.ParseFloat(strings.TrimSpace(want), 64)
	if err != nil {
		return 0
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(have), 64)
	if err != nil {
		return 0
	}

	diff := w - h
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 2:
		return measurementClose
	case diff <= 5:
		return measurementNear
	default:
		return 0
	}
}
