package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// UseCase computes, for a (date, staff) pair, which canonical slots are free
// and which are taken by non-cancelled appointments.
type UseCase struct {
	store   AppointmentStore
	policy  SchedulePolicy
	catalog StaffCatalog
	logger  Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(store AppointmentStore, policy SchedulePolicy, catalog StaffCatalog, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		policy:  policy,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute runs the availability computation. The result is deterministic for
// a fixed store state, so the UI can refresh it idempotently.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: staff=%s, date=%s", req.StaffID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, ok := uc.catalog.StaffByID(req.StaffID); !ok {
		uc.logger.Warn("GetAvailability: staff id=%s not found", req.StaffID)
		return nil, ErrStaffNotFound
	}

	candidates := uc.policy.SlotsFor(req.Date)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailability: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			StaffID: req.StaffID,
			Date:    req.Date,
			Closed:  true,
			Slots:   []Slot{},
		}, nil
	}

	occupied := occupiedTimes(uc.store.All(), req.Date, req.StaffID)

	slots := make([]Slot, len(candidates))
	for i, start := range candidates {
		_, taken := occupied[start]
		slots[i] = Slot{StartTime: start, Taken: taken}
	}

	uc.logger.Info("GetAvailability: %d slots (%d taken) for staff=%s, date=%s",
		len(slots), len(occupied), req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		StaffID: req.StaffID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

// occupiedTimes collects the start times of non-cancelled appointments for
// the given (date, staff).
func occupiedTimes(appointments []*domain.Appointment, date time.Time, staffID string) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{})
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		if a.StaffID != staffID || !domain.SameDay(a.Date, date) {
			continue
		}
		occupied[a.Time] = struct{}{}
	}
	return occupied
}

func validateRequest(req *Request) error {
	if req.StaffID == "" {
		return fmt.Errorf("%w: staffID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
