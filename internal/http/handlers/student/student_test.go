package student

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students-directory/internal/render"
	"github.com/aanand-mishra/students-directory/internal/types"
	"github.com/aanand-mishra/students-directory/internal/utils/response"
)

type fakeStorage struct {
	students []types.Student
	err      error
	calls    int
}

func (f *fakeStorage) GetStudents(context.Context) ([]types.Student, error) {
	f.calls++
	return f.students, f.err
}

func newFake() *fakeStorage {
	return &fakeStorage{students: []types.Student{
		{
			Name:          types.Name{First: "Bucky", Last: "Badger"},
			Major:         "Computer Science",
			Interests:     []string{"rowing", "cheese"},
			NumCredits:    15,
			FromWisconsin: true,
		},
		{
			Name:      types.Name{First: "Ada", Last: "Lovelace"},
			Major:     "Mathematics",
			Interests: []string{"poetry"},
		},
	}}
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func TestPage_All(t *testing.T) {
	store := newFake()
	w := httptest.NewRecorder()

	Page(store, newRenderer(t))(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, store.calls)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "2", doc.Find("#num-results").Text())
	assert.Equal(t, 2, doc.Find("#students .student").Length())
}

func TestPage_Filtered(t *testing.T) {
	w := httptest.NewRecorder()

	Page(newFake(), newRenderer(t))(w,
		httptest.NewRequest(http.MethodGet, "/?major=+MATH+&interest=poe", nil))

	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "1", doc.Find("#num-results").Text())
	assert.Equal(t, "Ada Lovelace", doc.Find(".student-name strong").Text())

	major, _ := doc.Find("#search-major").Attr("value")
	assert.Equal(t, "MATH", major)
}

func TestPage_FetchError(t *testing.T) {
	store := &fakeStorage{err: errors.New("roster down")}
	w := httptest.NewRecorder()

	Page(store, newRenderer(t))(w, httptest.NewRequest(http.MethodGet, "/?name=bucky", nil))

	require.Equal(t, http.StatusBadGateway, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, FetchFailedMessage, doc.Find("#error").Text())
	assert.Equal(t, "0", doc.Find("#num-results").Text())
	assert.NotContains(t, doc.Text(), "roster down")
}

func TestPage_InvalidQuery(t *testing.T) {
	store := newFake()
	w := httptest.NewRecorder()

	target := "/?name=" + strings.Repeat("a", 101)
	Page(store, newRenderer(t))(w, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.calls)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "field Name must be at most 100 characters", doc.Find("#error").Text())
}

func TestGetList(t *testing.T) {
	w := httptest.NewRecorder()

	GetList(newFake())(w, httptest.NewRequest(http.MethodGet, "/api/students?name=BUCKY", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "BUCKY", body.Query.Name)
	require.Len(t, body.Students, 1)
	assert.Equal(t, "Badger", body.Students[0].Name.Last)
	assert.Equal(t, []string{"rowing", "cheese"}, body.Students[0].Interests)
}

func TestGetList_NoMatchesIsEmptyArray(t *testing.T) {
	w := httptest.NewRecorder()

	GetList(newFake())(w, httptest.NewRequest(http.MethodGet, "/api/students?interest=chess", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"count":0,"query":{"name":"","major":"","interest":"chess"},"students":[]}`,
		w.Body.String())
}

func TestGetList_Errors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		w := httptest.NewRecorder()

		GetList(&fakeStorage{err: errors.New("roster down")})(w,
			httptest.NewRequest(http.MethodGet, "/api/students", nil))

		require.Equal(t, http.StatusBadGateway, w.Code)
		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, response.StatusError, body.Status)
		assert.Equal(t, "roster down", body.Error)
	})

	t.Run("term too long", func(t *testing.T) {
		w := httptest.NewRecorder()

		GetList(newFake())(w, httptest.NewRequest(http.MethodGet,
			"/api/students?interest="+strings.Repeat("x", 101), nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "field Interest must be at most 100 characters", body.Error)
	})
}
