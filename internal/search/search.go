// Package search implements the filter applied to the roster before it
// is rendered.
package search

import (
	"net/url"
	"strings"

	"github.com/aanand-mishra/students-directory/internal/types"
)

// Query parameter names, shared by the form inputs and the JSON API.
const (
	ParamName     = "name"
	ParamMajor    = "major"
	ParamInterest = "interest"
)

// Query holds the three search terms. An empty term matches everything.
type Query struct {
	Name     string `json:"name"     validate:"max=100"`
	Major    string `json:"major"    validate:"max=100"`
	Interest string `json:"interest" validate:"max=100"`
}

// FromValues reads a Query from request parameters, trimming each term.
func FromValues(v url.Values) Query {
	return Query{
		Name:     strings.TrimSpace(v.Get(ParamName)),
		Major:    strings.TrimSpace(v.Get(ParamMajor)),
		Interest: strings.TrimSpace(v.Get(ParamInterest)),
	}
}

// IsEmpty reports whether no term is set.
func (q Query) IsEmpty() bool {
	return q.Name == "" && q.Major == "" && q.Interest == ""
}

// WithInterest returns a copy of q searching for interest instead,
// keeping the name and major terms.
func (q Query) WithInterest(interest string) Query {
	q.Interest = strings.TrimSpace(interest)
	return q
}

// Values encodes q back into request parameters, omitting empty terms.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Name != "" {
		v.Set(ParamName, q.Name)
	}
	if q.Major != "" {
		v.Set(ParamMajor, q.Major)
	}
	if q.Interest != "" {
		v.Set(ParamInterest, q.Interest)
	}
	return v
}

// Matches is the filter predicate: name, major and interest are checked
// independently as case-insensitive substrings and all three must hold.
func (q Query) Matches(s types.Student) bool {
	if q.Name != "" && !containsFold(s.SearchName(), q.Name) {
		return false
	}
	if q.Major != "" && !containsFold(s.Major, q.Major) {
		return false
	}
	if q.Interest != "" && !anyContainsFold(s.Interests, q.Interest) {
		return false
	}
	return true
}

// Filter returns the students matching q in their original order.
// The input slice is left untouched and the result is never nil.
func (q Query) Filter(students []types.Student) []types.Student {
	out := make([]types.Student, 0, len(students))
	for _, s := range students {
		if q.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func anyContainsFold(values []string, term string) bool {
	for _, v := range values {
		if containsFold(v, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
