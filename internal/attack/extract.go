// Package attack turns the player's challenge snippet into attack parameters.
//
// The snippet is never compiled or run. Extract is a tolerant field scraper:
// it looks for a handful of assignment shapes anywhere in the text and
// ignores everything else, so broken or unrelated code still yields a
// usable record.
package attack

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

// Template is the snippet the editor opens with
//
//go:embed template.js
var Template string

// Element is one of the four attack elements
type Element string

const (
	Fire  Element = "fire"
	Water Element = "water"
	Earth Element = "earth"
	Wind  Element = "wind"
)

// Elements lists the elements in circuit order
var Elements = []Element{Fire, Water, Earth, Wind}

// Record holds the numbers scraped from one submission
type Record struct {
	Fire  uint64
	Water uint64
	Earth uint64
	Wind  uint64
	Moves []string
}

// Power returns the value stored for e
func (r Record) Power(e Element) uint64 {
	switch e {
	case Fire:
		return r.Fire
	case Water:
		return r.Water
	case Earth:
		return r.Earth
	case Wind:
		return r.Wind
	}
	return 0
}

// Total sums all four powers
func (r Record) Total() uint64 {
	return r.Fire + r.Water + r.Earth + r.Wind
}

var (
	powerPattern = regexp.MustCompile(`(?:\b(?:let|const|var)\s+)?\b((?i:fire|water|earth|wind))AttackPower\s*=\s*(\d+)\b`)
	movesPattern = regexp.MustCompile(`\bmoves\s*=\s*\[([^\]]*)\]`)
	quoted       = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)
)

// Extract scans source for element power assignments and a moves list
// Later assignments win; elements never assigned stay zero.
func Extract(source string) Record {
	var rec Record

	for _, m := range powerPattern.FindAllStringSubmatch(source, -1) {
		v, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			continue
		}
		rec.set(Element(strings.ToLower(m[1])), v)
	}

	if all := movesPattern.FindAllStringSubmatch(source, -1); len(all) > 0 {
		body := all[len(all)-1][1]
		for _, q := range quoted.FindAllStringSubmatch(body, -1) {
			name := q[1]
			if name == "" {
				name = q[2]
			}
			if name = strings.TrimSpace(name); name != "" {
				rec.Moves = append(rec.Moves, name)
			}
		}
	}

	return rec
}

func (r *Record) set(e Element, v uint64) {
	switch e {
	case Fire:
		r.Fire = v
	case Water:
		r.Water = v
	case Earth:
		r.Earth = v
	case Wind:
		r.Wind = v
	}
}
