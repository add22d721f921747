package book_appointment

import (
	"strings"
	"time"
	"unicode"

	"github.com/barbeariapremium/booking-service/internal/domain"
)

// validate applies the rejection checks in their fixed order: name, contact,
// service, staff, date, time. The first failure wins.
func (uc *UseCase) validate(req *Request, now time.Time) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" || len(name) > domain.MaxClientNameLen {
		return ErrInvalidName
	}

	if countDigits(req.ClientContact) < domain.MinContactDigits {
		return ErrInvalidContact
	}

	if _, ok := uc.catalog.ServiceByID(req.ServiceID); !ok {
		return ErrInvalidService
	}

	if _, ok := uc.catalog.StaffByID(req.StaffID); !ok {
		return ErrInvalidStaff
	}

	if req.Date.IsZero() || !uc.policy.WithinWindow(req.Date, now) {
		return ErrInvalidDate
	}

	if req.Time.IsZero() || !uc.policy.Contains(req.Date, req.Time) {
		return ErrInvalidTime
	}

	return nil
}

// countDigits counts decimal digits, ignoring formatting characters like
// "(11) 99999-8888".
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
