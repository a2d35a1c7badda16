// Package importer turns spreadsheet exports into directory records: raw rows
// are staged in a Session, mapped to fields, and committed as one batch.
package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"forum-directory/models"
)

var (
	ErrSessionClosed    = errors.New("import session is no longer staged")
	ErrSessionNotFound  = errors.New("import session not found")
	ErrUnknownField     = errors.New("unknown field")
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// State is the lifecycle position of an import session.
type State string

const (
	StateStaged    State = "staged"
	StateCommitted State = "committed"
	StateCanceled  State = "canceled"
)

// Gateway is the write side of the record store used by Commit.
type Gateway interface {
	AddBatch(batch []models.Person) error
}

// Session holds the staging state of one import attempt.
type Session struct {
	ID        string     `json:"id"`
	Filename  string     `json:"filename"`
	Rows      [][]string `json:"rows"` // Rows[0] is the header
	Mapping   Mapping    `json:"mapping"`
	State     State      `json:"state"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Result reports the outcome of a commit.
type Result struct {
	Imported int  `json:"imported"`
	NoOp     bool `json:"noOp"` // true when there were no data rows
}

// NewSession stages parsed rows under a fresh session id.
func NewSession(filename string, rows [][]string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Filename:  filename,
		Rows:      rows,
		Mapping:   Mapping{},
		State:     StateStaged,
		CreatedAt: time.Now().UTC(),
	}
}

// Header returns the column labels, or nil if nothing was parsed.
func (s *Session) Header() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns every row after the header.
func (s *Session) DataRows() [][]string {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}

func (s *Session) staged() error {
	if s.State != StateStaged {
		return fmt.Errorf("session %s is %s: %w", s.ID, s.State, ErrSessionClosed)
	}
	return nil
}

// AutoMap replaces the mapping with the one inferred from the header.
func (s *Session) AutoMap() error {
	if err := s.staged(); err != nil {
		return err
	}
	s.Mapping = AutoMap(s.Header())
	return nil
}

// Remap points field at column, leaving every other field untouched.
func (s *Session) Remap(field models.Field, column int) error {
	if err := s.staged(); err != nil {
		return err
	}
	if !models.IsField(string(field)) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if column < 0 || column >= len(s.Header()) {
		return fmt.Errorf("%w: %d (header has %d columns)", ErrColumnOutOfRange, column, len(s.Header()))
	}
	if s.Mapping == nil {
		s.Mapping = Mapping{}
	}
	s.Mapping[field] = column
	return nil
}

// Unmap clears the column of field.
func (s *Session) Unmap(field models.Field) error {
	if err := s.staged(); err != nil {
		return err
	}
	if !models.IsField(string(field)) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	delete(s.Mapping, field)
	return nil
}

// Commit builds a record for every data row and adds them to gw as a single
// batch. With no data rows it reports a no-op and leaves the session staged.
func (s *Session) Commit(gw Gateway, ids IDSource, fallbackUnion string) (Result, error) {
	if err := s.staged(); err != nil {
		return Result{}, err
	}
	data := s.DataRows()
	if len(data) == 0 {
		slog.Info("Import has no data rows, nothing committed", "session_id", s.ID)
		return Result{NoOp: true}, nil
	}

	batch := BuildRecords(data, s.Mapping, fallbackUnion, ids)
	if err := gw.AddBatch(batch); err != nil {
		return Result{}, fmt.Errorf("failed to commit import %s: %w", s.ID, err)
	}

	s.clear(StateCommitted)
	slog.Info("Import committed", "session_id", s.ID, "imported", len(batch))
	return Result{Imported: len(batch)}, nil
}

// Cancel discards the staged rows without touching the store.
func (s *Session) Cancel() error {
	if err := s.staged(); err != nil {
		return err
	}
	s.clear(StateCanceled)
	return nil
}

func (s *Session) clear(state State) {
	s.Rows = nil
	s.Mapping = nil
	s.State = state
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	if s.Rows != nil {
		c.Rows = make([][]string, len(s.Rows))
		for i, row := range s.Rows {
			c.Rows[i] = append([]string(nil), row...)
		}
	}
	if s.Mapping != nil {
		c.Mapping = s.Mapping.Clone()
	}
	return &c
}
