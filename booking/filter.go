package booking

import (
	"strings"

	"github.com/samber/lo"

	"hoteldesk/entity"
)

// StatusFilterAll passes every payment status.
const StatusFilterAll = "all"

// Visible derives the visible subset of bookings for a status filter and a
// free-text search term. A booking is visible iff its payment status matches
// the filter (or the filter is "all") and the term, case-insensitively, is a
// substring of the guest's first name, last name or email. The empty term
// matches everything. Input order is preserved.
func Visible(bookings []entity.Booking, statusFilter, term string) []entity.Booking {
	term = strings.ToLower(term)

	return lo.Filter(bookings, func(b entity.Booking, _ int) bool {
		return matchesStatus(b, statusFilter) && matchesTerm(b, term)
	})
}

func matchesStatus(b entity.Booking, statusFilter string) bool {
	return statusFilter == StatusFilterAll || string(b.Payment.Status) == statusFilter
}

func matchesTerm(b entity.Booking, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Guest.FirstName), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Guest.LastName), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Guest.Email), lowerTerm)
}
