package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_DisplayDefaults(t *testing.T) {
	var s Student

	assert.Equal(t, "Unknown Unknown", s.DisplayName())
	assert.Equal(t, Unknown, s.DisplayMajor())
	assert.Equal(t, Unknown, s.DisplayCredits())
	assert.Equal(t, "not from Wisconsin", s.Residency())
	assert.Equal(t, " ", s.SearchName())
}

func TestStudent_Summary(t *testing.T) {
	s := Student{
		Name:          Name{First: "Bucky", Last: "Badger"},
		Major:         "Computer Science",
		Interests:     []string{"rowing", "cheese"},
		NumCredits:    15,
		FromWisconsin: true,
	}

	assert.Equal(t, "Bucky Badger is taking 15 credits and is from Wisconsin.", s.Summary())
	assert.Equal(t, "They have 2 interests including:", s.InterestsLine())
	assert.Equal(t, "Bucky Badger", s.SearchName())
}

func TestStudent_PartialName(t *testing.T) {
	s := Student{Name: Name{Last: "Badger"}}

	assert.Equal(t, "Unknown Badger", s.DisplayName())
	assert.Equal(t, "They have 0 interests including:", s.InterestsLine())
	assert.Equal(t, "Unknown Badger is taking Unknown credits and is not from Wisconsin.", s.Summary())
}
