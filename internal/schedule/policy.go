package schedule

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/config"
	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// Policy generates the canonical set of bookable slot start times for a date.
// It is a pure function of the date and the static schedule configuration:
// repeated calls with the same date always yield the same sequence.
type Policy struct {
	openHour          int
	closeHour         int
	intervalMinutes   int
	closureWeekday    time.Weekday
	shortDayWeekday   time.Weekday
	shortDayCloseHour int
	windowDays        int
}

// NewPolicy builds a policy from the validated schedule configuration.
func NewPolicy(cfg config.ScheduleConfig) *Policy {
	return &Policy{
		openHour:          cfg.OpenHour,
		closeHour:         cfg.CloseHour,
		intervalMinutes:   cfg.SlotIntervalMinutes,
		closureWeekday:    time.Weekday(cfg.ClosureWeekday),
		shortDayWeekday:   time.Weekday(cfg.ShortDayWeekday),
		shortDayCloseHour: cfg.ShortDayCloseHour,
		windowDays:        cfg.BookingWindowDays,
	}
}

// SlotsFor returns the ordered slot start times for the given date. The
// closure weekday yields an empty sequence, which callers must render as
// "closed" rather than "fully booked". Slots are half-open: the closing hour
// itself is never an offerable start.
func (p *Policy) SlotsFor(date time.Time) []types.TimeString {
	weekday := date.Weekday()
	if weekday == p.closureWeekday {
		return []types.TimeString{}
	}

	closeHour := p.closeHour
	if weekday == p.shortDayWeekday {
		closeHour = p.shortDayCloseHour
	}

	slots := make([]types.TimeString, 0, (closeHour-p.openHour)*60/p.intervalMinutes)
	for m := p.openHour * 60; m < closeHour*60; m += p.intervalMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			// Unreachable for validated configs: m stays below 24*60.
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// Contains reports whether t belongs to the canonical slot set for date.
func (p *Policy) Contains(date time.Time, t types.TimeString) bool {
	for _, slot := range p.SlotsFor(date) {
		if slot == t {
			return true
		}
	}
	return false
}

// WithinWindow reports whether date is inside the allowed booking window:
// strictly after today and at most BookingWindowDays ahead. Comparison is by
// calendar day, in the date's own location.
func (p *Policy) WithinWindow(date, now time.Time) bool {
	day := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if !day.After(today) {
		return false
	}
	return !day.After(today.AddDate(0, 0, p.windowDays))
}

// WindowDays exposes the configured booking horizon.
func (p *Policy) WindowDays() int {
	return p.windowDays
}
