package appointment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/barbeariapremium/booking-service/internal/domain"
)

// Store is the durable appointment collection. The full set is loaded once at
// construction and rewritten as a whole after every mutation (full snapshot,
// not an append log).
//
// Persistence is best-effort: when the snapshot write fails the mutating call
// returns ErrPersist but the in-memory change stays applied. The snapshot is
// written to a temp file and renamed, so a failed write never corrupts the
// previous snapshot on disk.
type Store struct {
	mu           sync.RWMutex
	path         string
	appointments []*domain.Appointment
	byID         map[string]*domain.Appointment
}

// NewStore opens the snapshot at path, creating an empty store when the file
// does not exist yet.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		byID: make(map[string]*domain.Appointment),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// All returns a snapshot of every appointment ever created, in insertion
// order. Entries are copies; mutating them does not affect the store.
func (s *Store) All() []*domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Appointment, len(s.appointments))
	for i, a := range s.appointments {
		cp := *a
		out[i] = &cp
	}
	return out
}

// GetByID returns a copy of the appointment with the given id.
func (s *Store) GetByID(id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

// Append adds a new appointment and persists the full collection. An id
// collision fails with ErrDuplicateID before anything is mutated.
func (s *Store) Append(a *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[a.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
	}

	cp := *a
	s.appointments = append(s.appointments, &cp)
	s.byID[cp.ID] = &cp

	return s.persistLocked()
}

// SetStatus updates the status of an existing appointment and persists the
// full collection. Unknown ids fail with ErrAppointmentNotFound.
func (s *Store) SetStatus(id string, status domain.AppointmentStatus) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}

	a.Status = status
	return s.persistLocked()
}

// Len returns the total number of stored appointments, cancelled included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

// ActiveLen returns the number of non-cancelled appointments.
func (s *Store) ActiveLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.appointments {
		if a.IsActive() {
			n++
		}
	}
	return n
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrLoad, s.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrLoad, s.path, err)
	}

	for _, rec := range snap.Appointments {
		a, err := fromRecord(rec)
		if err != nil {
			return fmt.Errorf("%w: record %s: %v", ErrLoad, rec.ID, err)
		}
		s.appointments = append(s.appointments, a)
		s.byID[a.ID] = a
	}

	return nil
}

// persistLocked writes the whole collection; callers hold s.mu.
func (s *Store) persistLocked() error {
	snap := snapshot{Appointments: make([]appointmentRecord, len(s.appointments))}
	for i, a := range s.appointments {
		snap.Appointments[i] = toRecord(a)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrPersist, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersist, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrPersist, tmp, err)
	}

	return nil
}
