// Package student contains the HTTP handlers that search the roster.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// To inject dependencies we use a factory function that accepts them
// (storage, renderer) and returns a function with exactly that shape:
//
//	r.Get("/", student.Page(storage, renderer))
//
// Page(storage, renderer) is called ONCE at startup; the returned
// closure runs on EVERY incoming request. Each request fetches the
// roster afresh, filters it and throws it away once written.
package student

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/students-directory/internal/render"
	"github.com/aanand-mishra/students-directory/internal/search"
	"github.com/aanand-mishra/students-directory/internal/storage"
	"github.com/aanand-mishra/students-directory/internal/types"
	"github.com/aanand-mishra/students-directory/internal/utils/response"
)

// FetchFailedMessage is shown on the page when the roster is unavailable.
const FetchFailedMessage = "could not load students, please try again"

// ListResponse is the body of GET /api/students.
type ListResponse struct {
	Count    int             `json:"count"`
	Query    search.Query    `json:"query"`
	Students []types.Student `json:"students"`
}

// Page handles GET /
// Renders the search form and every student matching the query string.
//
//	GET /?name=bucky&major=computer&interest=rowing
//
// Status codes:
//
//	200 OK           — page rendered (possibly with zero results)
//	400 Bad Request  — a search term is too long
//	502 Bad Gateway  — the roster could not be fetched
func Page(storage storage.Storage, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := search.FromValues(r.URL.Query())
		slog.Info("rendering students page",
			slog.String("name", q.Name),
			slog.String("major", q.Major),
			slog.String("interest", q.Interest),
		)

		if err := validator.New().Struct(q); err != nil {
			var validateErrs validator.ValidationErrors
			errors.As(err, &validateErrs)
			writePage(w, renderer, http.StatusBadRequest, render.PageData{
				Query: q,
				Error: response.ValidationMessage(validateErrs),
			})
			return
		}

		students, err := storage.GetStudents(r.Context())
		if err != nil {
			slog.Error("error fetching students", slog.String("error", err.Error()))
			writePage(w, renderer, http.StatusBadGateway, render.PageData{
				Query: q,
				Error: FetchFailedMessage,
			})
			return
		}

		matched := q.Filter(students)
		slog.Info("students filtered",
			slog.Int("total", len(students)),
			slog.Int("matched", len(matched)),
		)

		writePage(w, renderer, http.StatusOK, render.NewPageData(matched, q))
	}
}

// GetList handles GET /api/students
// Returns the students matching the query string as JSON.
//
// Success response (200 OK):
//
//	{ "count": 1, "query": {...}, "students": [ {...} ] }
//
// Error responses:
//
//	400 Bad Request  — a search term is too long
//	502 Bad Gateway  — the roster could not be fetched
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := search.FromValues(r.URL.Query())
		slog.Info("listing students", slog.Bool("filtered", !q.IsEmpty()))

		if err := validator.New().Struct(q); err != nil {
			var validateErrs validator.ValidationErrors
			errors.As(err, &validateErrs)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		students, err := storage.GetStudents(r.Context())
		if err != nil {
			slog.Error("error fetching students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusBadGateway, response.GeneralError(err))
			return
		}

		matched := q.Filter(students)
		response.WriteJSON(w, http.StatusOK, ListResponse{
			Count:    len(matched),
			Query:    q,
			Students: matched,
		})
	}
}

// writePage renders into a buffer first so a template failure can still
// turn into a clean 500 instead of a half-written page.
func writePage(w http.ResponseWriter, renderer *render.Renderer, status int, data render.PageData) {
	var buf bytes.Buffer
	if err := renderer.Page(&buf, data); err != nil {
		slog.Error("error rendering page", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
