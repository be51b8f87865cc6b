package models

import (
	"fmt"
	"strings"
)

// Pillar identifies one of the four startup-evaluation dimensions.
type Pillar string

const (
	PillarCapital   Pillar = "capital"
	PillarAdvantage Pillar = "advantage"
	PillarMarket    Pillar = "market"
	PillarPeople    Pillar = "people"
)

// Pillars is the canonical pillar ordering. The meta combiner consumes pillar
// probabilities in exactly this order, matching the meta-model's training
// schema.
var Pillars = []Pillar{PillarCapital, PillarAdvantage, PillarMarket, PillarPeople}

func (p Pillar) String() string {
	return string(p)
}

// ParsePillar converts a string to a Pillar.
func ParsePillar(s string) (Pillar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "capital":
		return PillarCapital, nil
	case "advantage":
		return PillarAdvantage, nil
	case "market":
		return PillarMarket, nil
	case "people":
		return PillarPeople, nil
	default:
		return "", fmt.Errorf("invalid pillar %q: must be capital, advantage, market, or people", s)
	}
}
