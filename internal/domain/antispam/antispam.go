package antispam

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/studio-sofia/barbershop-booking/internal/clock"
	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// Stable reason codes surfaced to callers.
const (
	ReasonExactDuplicate = "exact_duplicate"
	ReasonRecentBooking  = "recent_booking_exists"
	ReasonRateLimit      = "rate_limit_exceeded"
)

// Result of the duplicate/spam check. Advisory: the checker never blocks
// anything itself. The lifecycle manager treats ReasonRateLimit as a hard
// rejection and stores the rest as flag metadata on the created appointment.
type Result struct {
	IsDuplicate      bool                 `json:"is_duplicate"`
	IsSuspicious     bool                 `json:"is_suspicious"`
	ExistingBookings []models.Appointment `json:"existing_bookings"`
	Warnings         []string             `json:"warnings"`
	Reason           string               `json:"reason,omitempty"`
}

// Blocked reports whether the lifecycle manager should reject outright.
func (r *Result) Blocked() bool {
	return r.Reason == ReasonRateLimit
}

// Checker inspects a customer's recent booking history, matched by
// normalized phone or normalized name. The matching is deliberately fuzzy:
// phone containment catches partial re-entry but can false-positive when one
// number is a substring of an unrelated longer one. That looseness is
// inherited behavior, kept on purpose.
type Checker struct {
	repo  schedule.Repository
	cfg   config.AntiSpam
	clock clock.Clock
}

func NewChecker(repo schedule.Repository, cfg config.AntiSpam, clk clock.Clock) *Checker {
	return &Checker{repo: repo, cfg: cfg, clock: clk}
}

// Check evaluates a booking request against the customer's upcoming
// bookings. Decision order: exact duplicate and rate limit return
// immediately; the near-window check records its result but lets the rate
// limit override it; the suspicious-volume checks only add flags.
func (c *Checker) Check(ctx context.Context, customerName, customerPhone, date, timeOfDay string) (*Result, error) {
	result := &Result{
		ExistingBookings: []models.Appointment{},
		Warnings:         []string{},
	}

	upcoming, err := c.repo.ListAppointments(ctx, schedule.AppointmentFilter{
		Status: models.StatusUpcoming,
	})
	if err != nil {
		return nil, err
	}

	var customerBookings []models.Appointment
	for _, ap := range upcoming {
		if PhonesMatch(ap.CustomerPhone, customerPhone) || NamesMatch(ap.CustomerName, customerName) {
			customerBookings = append(customerBookings, ap)
		}
	}

	result.ExistingBookings = customerBookings
	if len(customerBookings) == 0 {
		return result, nil
	}

	// 1. Exact duplicate: same customer, identical date and time.
	for _, ap := range customerBookings {
		if ap.AppointmentDate == date && ap.AppointmentTime == timeOfDay {
			result.IsDuplicate = true
			result.Reason = ReasonExactDuplicate
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("You already have a booking for %s at %s.", date, timeOfDay))
			return result, nil
		}
	}

	// 2. Near-window duplicate: an upcoming booking within the minimum
	// days-between-bookings window of the requested date.
	nearWindow := 0
	for _, ap := range customerBookings {
		if daysDifference(ap.AppointmentDate, date) <= c.cfg.MinDaysBetweenBookings {
			nearWindow++
		}
	}
	if nearWindow > 0 {
		result.IsDuplicate = true
		result.Reason = ReasonRecentBooking
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("You already have %d active booking(s) within %d days of this date.",
				nearWindow, c.cfg.MinDaysBetweenBookings))
	}

	now := c.clock.Now()

	// 3. Rate limit: too many upcoming bookings created within the
	// trailing period. The one outcome treated as a hard block.
	createdInPeriod := countCreatedWithin(customerBookings, now, time.Duration(c.cfg.PeriodHours)*time.Hour)
	if createdInPeriod >= c.cfg.MaxBookingsPerPeriod {
		result.IsDuplicate = true
		result.IsSuspicious = true
		result.Reason = ReasonRateLimit
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("You reached the limit of %d bookings per %d hours. Please contact us directly.",
				c.cfg.MaxBookingsPerPeriod, c.cfg.PeriodHours))
		return result, nil
	}

	// 4. Rapid submissions inside the short flag window: suspicious, not
	// blocking.
	createdInFlagWindow := countCreatedWithin(customerBookings, now, time.Duration(c.cfg.FlagPeriodHours)*time.Hour)
	if createdInFlagWindow >= c.cfg.FlagIfMoreThan {
		result.IsSuspicious = true
	}

	// 5. Unusually many upcoming bookings overall.
	if len(customerBookings) >= c.cfg.MaxUpcomingBookings {
		result.IsSuspicious = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("You have %d active bookings. If this is a mistake, please contact us.",
				len(customerBookings)))
	}

	return result, nil
}

// --------------------------------------------------
// Matching
// --------------------------------------------------

var phoneStripRe = regexp.MustCompile(`[\s\-()]`)

// NormalizePhone strips whitespace, hyphens and parentheses, lower-cases,
// and canonicalizes the Bulgarian trunk prefix (+359/00359 -> 0) so the
// international and local spellings of the same number compare equal.
func NormalizePhone(phone string) string {
	p := strings.ToLower(phoneStripRe.ReplaceAllString(phone, ""))
	if strings.HasPrefix(p, "+359") {
		p = "0" + p[len("+359"):]
	} else if strings.HasPrefix(p, "00359") {
		p = "0" + p[len("00359"):]
	}
	return p
}

// PhonesMatch reports equality after normalization, or containment in
// either direction to catch partial re-entry.
func PhonesMatch(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

// NormalizeName trims, lower-cases and collapses internal whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func NamesMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}

// --------------------------------------------------
// Windows
// --------------------------------------------------

const dateLayout = "2006-01-02"

func daysDifference(date1, date2 string) int {
	d1, err1 := time.Parse(dateLayout, date1)
	d2, err2 := time.Parse(dateLayout, date2)
	if err1 != nil || err2 != nil {
		return math.MaxInt32
	}
	diff := d2.Sub(d1)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func countCreatedWithin(bookings []models.Appointment, now time.Time, window time.Duration) int {
	count := 0
	for _, ap := range bookings {
		if ap.CreatedAt.IsZero() {
			continue
		}
		if age := now.Sub(ap.CreatedAt); age >= 0 && age <= window {
			count++
		}
	}
	return count
}
