// Package remote implements storage.Storage against the HTTP roster
// endpoint. Every call performs exactly one GET; nothing is cached.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/students-directory/internal/config"
	"github.com/aanand-mishra/students-directory/internal/types"
)

// ErrUnexpectedStatus is returned when the roster answers with anything
// other than 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected roster status")

// Remote fetches student records from the roster endpoint.
type Remote struct {
	endpoint    string
	headerName  string
	headerValue string
	client      *http.Client
}

// New builds a Remote from the roster section of the config.
func New(cfg config.Roster) *Remote {
	return &Remote{
		endpoint:    cfg.Endpoint,
		headerName:  cfg.HeaderName,
		headerValue: cfg.HeaderValue,
		client:      &http.Client{Timeout: cfg.Timeout},
	}
}

// GetStudents performs one GET against the roster and decodes the JSON
// array it returns.
func (r *Remote) GetStudents(ctx context.Context) ([]types.Student, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("remote.GetStudents: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(r.headerName, r.headerValue)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote.GetStudents: do request: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("roster responded",
		slog.Int("status", resp.StatusCode),
		slog.String("status_text", http.StatusText(resp.StatusCode)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote.GetStudents: %w: %d %s",
			ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var students []types.Student
	if err := json.NewDecoder(resp.Body).Decode(&students); err != nil {
		return nil, fmt.Errorf("remote.GetStudents: decode body: %w", err)
	}

	if students == nil {
		students = make([]types.Student, 0)
	}
	for i := range students {
		if students[i].Interests == nil {
			students[i].Interests = []string{}
		}
	}

	return students, nil
}
