// Package storage defines the Storage interface — the contract any
// source of student records must satisfy to work with this application.
//
// Handlers (HTTP layer) should not know or care where the records come
// from. By depending only on this interface:
//
//   - Switching sources = implement the interface for the new backend,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No network needed for handler tests.
package storage

import (
	"context"

	"github.com/aanand-mishra/students-directory/internal/types"
)

// Storage is the read-only record source contract.
type Storage interface {
	// GetStudents returns every student the source knows about, in the
	// order the source returned them. Returns an empty slice (not nil)
	// if there are no students.
	GetStudents(ctx context.Context) ([]types.Student, error)
}
