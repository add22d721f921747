package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/barbeariapremium/booking-service/internal/domain"
	appointmentStore "github.com/barbeariapremium/booking-service/internal/infra/storage/appointment"
	"github.com/barbeariapremium/booking-service/internal/service/appointments/models"
)

// Service exposes the read and cancel operations over the appointment store.
type Service struct {
	store   AppointmentStore
	catalog Catalog
	logger  Logger
}

// NewService creates the appointment service.
func NewService(store AppointmentStore, catalog Catalog, logger Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// GetByID returns one appointment enriched with catalog names.
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentView, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	a, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, appointmentStore.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: store error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	view := s.toView(a)
	return &view, nil
}

// List returns appointments sorted newest first by (date, time), truncated to
// limit when limit > 0. Cancelled appointments are included; the caller
// renders their status.
func (s *Service) List(ctx context.Context, limit int) (*models.AppointmentList, error) {
	all := s.store.All()
	s.logger.Info("List: fetching appointments, total=%d, limit=%d", len(all), limit)

	sort.SliceStable(all, func(i, j int) bool {
		if !domain.SameDay(all[i].Date, all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].Time.IsAfter(all[j].Time)
	})

	total := len(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	views := make([]models.AppointmentView, len(all))
	for i, a := range all {
		views[i] = s.toView(a)
	}

	return &models.AppointmentList{Appointments: views, Total: total}, nil
}

// Cancel flips the appointment status to cancelled. Cancellation is
// irreversible and needs no timing re-validation: past or imminent
// appointments can be cancelled too.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	err := s.store.SetStatus(id, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, appointmentStore.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		if errors.Is(err, appointmentStore.ErrPersist) {
			// Cancelled in memory; only the snapshot write failed.
			s.logger.Error("Cancel: persist failed for id=%s: %v", id, err)
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		s.logger.Error("Cancel: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%s cancelled", id)
	return nil
}

func (s *Service) toView(a *domain.Appointment) models.AppointmentView {
	view := models.AppointmentView{
		ID:            a.ID,
		ClientName:    a.ClientName,
		ClientContact: a.ClientContact,
		ServiceID:     a.ServiceID,
		StaffID:       a.StaffID,
		Date:          a.Date,
		Time:          a.Time,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}

	if service, ok := s.catalog.ServiceByID(a.ServiceID); ok {
		view.ServiceName = service.Name
		view.ServicePrice = service.Price
	}
	if staff, ok := s.catalog.StaffByID(a.StaffID); ok {
		view.StaffName = staff.Name
	}

	return view
}
