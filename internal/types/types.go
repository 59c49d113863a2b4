// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// storage, search, render and the handlers can all import types without
// depending on each other.
package types

import (
	"fmt"
	"strconv"
)

// Unknown is shown in place of any optional field the roster left empty.
const Unknown = "Unknown"

// Name is the nested name object of a roster record.
// Either part may be missing in the upstream data.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Student represents one student record as returned by the remote roster.
//
// The json:"..." tags match the upstream payload exactly:
//
//	{
//	  "name": { "first": "Bucky", "last": "Badger" },
//	  "major": "Computer Science",
//	  "interests": ["rowing", "cheese"],
//	  "numCredits": 15,
//	  "fromWisconsin": true
//	}
//
// A Student is never mutated after it has been decoded.
type Student struct {
	Name          Name     `json:"name"`
	Major         string   `json:"major"`
	Interests     []string `json:"interests"`
	NumCredits    int      `json:"numCredits"`
	FromWisconsin bool     `json:"fromWisconsin"`
}

// DisplayFirst returns the first name, or Unknown when it is missing.
func (s Student) DisplayFirst() string {
	return orUnknown(s.Name.First)
}

// DisplayLast returns the last name, or Unknown when it is missing.
func (s Student) DisplayLast() string {
	return orUnknown(s.Name.Last)
}

// DisplayName returns "<first> <last>" with Unknown defaults applied.
func (s Student) DisplayName() string {
	return s.DisplayFirst() + " " + s.DisplayLast()
}

// DisplayMajor returns the major, or Unknown when it is missing.
func (s Student) DisplayMajor() string {
	return orUnknown(s.Major)
}

// DisplayCredits returns the credit count as text. A zero count is
// indistinguishable from a missing one upstream, so both read Unknown.
func (s Student) DisplayCredits() string {
	if s.NumCredits == 0 {
		return Unknown
	}
	return strconv.Itoa(s.NumCredits)
}

// Residency describes the in-state flag in words.
func (s Student) Residency() string {
	if s.FromWisconsin {
		return "from Wisconsin"
	}
	return "not from Wisconsin"
}

// Summary is the one-sentence description shown on every card.
func (s Student) Summary() string {
	return fmt.Sprintf("%s is taking %s credits and is %s.",
		s.DisplayName(), s.DisplayCredits(), s.Residency())
}

// InterestsLine introduces the interest list on a card.
func (s Student) InterestsLine() string {
	return fmt.Sprintf("They have %d interests including:", len(s.Interests))
}

// SearchName is the text the name filter matches against. It is built
// from the raw fields, so a missing part never matches "unknown".
func (s Student) SearchName() string {
	return s.Name.First + " " + s.Name.Last
}

func orUnknown(v string) string {
	if v == "" {
		return Unknown
	}
	return v
}
