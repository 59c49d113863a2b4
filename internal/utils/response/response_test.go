package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteJSON(w, http.StatusBadGateway, GeneralError(errors.New("boom"))))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, body)
}

func TestOK_OmitsError(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteJSON(w, http.StatusOK, OK()))

	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestValidationError(t *testing.T) {
	type input struct {
		Name     string `validate:"max=3"`
		Endpoint string `validate:"required"`
		Site     string `validate:"url"`
		Env      string `validate:"oneof=dev prod"`
	}

	err := validator.New().Struct(input{Name: strings.Repeat("x", 4), Site: "nope", Env: "qa"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	resp := ValidationError(verrs)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field Name must be at most 3 characters, field Endpoint is required, "+
			"field Site must be a valid URL, field Env is invalid",
		resp.Error)
}
