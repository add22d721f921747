package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbeariapremium/booking-service/internal/domain"
	appointmentStore "github.com/barbeariapremium/booking-service/internal/infra/storage/appointment"
)

// UseCase is the booking coordinator: it validates a request, rechecks slot
// availability at commit time and atomically appends the new appointment.
// This is the only place a conflict can be rejected.
type UseCase struct {
	store        AppointmentStore
	policy       SchedulePolicy
	catalog      Catalog
	txManager    TransactionManager
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking coordinator.
func NewUseCase(
	store AppointmentStore,
	policy SchedulePolicy,
	catalog Catalog,
	txManager TransactionManager,
	idGenerator IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		policy:       policy,
		catalog:      catalog,
		txManager:    txManager,
		idGenerator:  idGenerator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute books a slot. Availability shown to the user earlier may be stale;
// the recheck inside the transaction is authoritative ("commit-time check
// wins over display-time check").
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: client=%q, staff=%s, service=%s, date=%s, time=%s",
		req.ClientName, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Ordered field validation.
	now := uc.timeProvider.Now()
	if err := uc.validate(req, now); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	service, _ := uc.catalog.ServiceByID(req.ServiceID)
	staff, _ := uc.catalog.StaffByID(req.StaffID)

	var created *domain.Appointment

	// 2. Commit-time conflict check and append, as one serialized unit.
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if uc.slotTaken(req) {
			uc.logger.Warn("BookAppointment: slot conflict for staff=%s, date=%s, time=%s",
				req.StaffID, req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotConflict
		}

		appointment := &domain.Appointment{
			ID:            uc.idGenerator.NewID(),
			ClientName:    req.ClientName,
			ClientContact: req.ClientContact,
			ServiceID:     req.ServiceID,
			StaffID:       req.StaffID,
			Date:          domain.DateOnly(req.Date),
			Time:          req.Time,
			Status:        domain.StatusConfirmed,
			CreatedAt:     now,
		}

		err := uc.store.Append(appointment)
		if errors.Is(err, appointmentStore.ErrDuplicateID) {
			// Regenerate once on an id collision.
			uc.logger.Warn("BookAppointment: id collision on %s, regenerating", appointment.ID)
			appointment.ID = uc.idGenerator.NewID()
			err = uc.store.Append(appointment)
			if errors.Is(err, appointmentStore.ErrDuplicateID) {
				return fmt.Errorf("%w: repeated id collision: %v", ErrInternal, err)
			}
		}
		if errors.Is(err, appointmentStore.ErrPersist) {
			// The in-memory commit stands; only the snapshot write failed.
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		created = appointment
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrSlotConflict) {
			uc.logger.Error("BookAppointment: commit failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment id=%s for staff=%s at %s %s",
		created.ID, created.StaffID, created.Date.Format(domain.DateFormat), created.Time)

	return &Response{
		ID:            created.ID,
		ClientName:    created.ClientName,
		ClientContact: created.ClientContact,
		ServiceID:     created.ServiceID,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		StaffID:       created.StaffID,
		StaffName:     staff.Name,
		Date:          created.Date,
		Time:          created.Time,
		Status:        created.Status,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// slotTaken re-runs the availability check for the requested slot against the
// current store state.
func (uc *UseCase) slotTaken(req *Request) bool {
	for _, a := range uc.store.All() {
		if a.OccupiesSlot(req.Date, req.StaffID, req.Time) {
			return true
		}
	}
	return false
}
