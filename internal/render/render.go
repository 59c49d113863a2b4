// Package render turns a filtered roster into the HTML page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/aanand-mishra/students-directory/internal/search"
	"github.com/aanand-mishra/students-directory/internal/types"
)

//go:embed templates/page.html
var templates embed.FS

// Interest is one entry of a card's interest list. Href re-runs the
// current search with this interest as the interest term.
type Interest struct {
	Label string
	Href  string
}

// Card is the view model of one student column.
type Card struct {
	Name          string
	Major         string
	Summary       string
	InterestsLine string
	Interests     []Interest
}

// PageData is everything the page template needs.
type PageData struct {
	Query search.Query
	Cards []Card
	Count int
	Error string
}

// NewPageData builds the page for the given (already filtered) students.
func NewPageData(students []types.Student, q search.Query) PageData {
	cards := NewCards(students, q)
	return PageData{
		Query: q,
		Cards: cards,
		Count: len(cards),
	}
}

// NewCards converts students into cards, in order.
func NewCards(students []types.Student, q search.Query) []Card {
	cards := make([]Card, 0, len(students))
	for _, s := range students {
		interests := make([]Interest, 0, len(s.Interests))
		for _, in := range s.Interests {
			interests = append(interests, Interest{
				Label: in,
				Href:  "/?" + q.WithInterest(in).Values().Encode(),
			})
		}

		cards = append(cards, Card{
			Name:          s.DisplayName(),
			Major:         s.DisplayMajor(),
			Summary:       s.Summary(),
			InterestsLine: s.InterestsLine(),
			Interests:     interests,
		})
	}
	return cards
}

// Renderer executes the page template. It is safe for concurrent use.
type Renderer struct {
	page *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	page, err := template.ParseFS(templates, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("render.New: parse templates: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Page writes the full HTML page for data to w.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if err := r.page.Execute(w, data); err != nil {
		return fmt.Errorf("render.Page: %w", err)
	}
	return nil
}
