// Package arena generates the fixed seat geometry of the arena and
// reconciles it with ticket listings to produce per-seat availability.
// Everything in this package is pure: no I/O, no shared state, safe to
// call concurrently from request handlers.
package arena

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier names assigned to sections.  The tier is cosmetic grouping for
// clients; pricing is derived from the section number range.
const (
	TierLower = "lower"
	TierUpper = "upper"
)

// Default prices in cents per section range.  Sections outside both
// ranges fall back to the baseline.
const (
	priceLowerCents    = 9500
	priceUpperCents    = 7500
	priceBaselineCents = 6000
)

// Section describes one block of seats: a name ("101"), a number of
// rows and a uniform seats-per-row count.  The full seat universe of
// the arena is the product of all sections' rows and seat counts.
type Section struct {
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	Tier        string `json:"tier"`
}

// Sections returns the canonical arena layout in deterministic order:
// lower bowl sections 101-140 (15 rows of 20), then upper bowl
// sections 201-240 (12 rows of 16).  The slice is freshly allocated
// on every call so callers may modify it freely.
func Sections() []Section {
	out := make([]Section, 0, 80)
	for i := 0; i < 40; i++ {
		out = append(out, Section{
			Name:        strconv.Itoa(101 + i),
			Rows:        15,
			SeatsPerRow: 20,
			Tier:        TierLower,
		})
	}
	for i := 0; i < 40; i++ {
		out = append(out, Section{
			Name:        strconv.Itoa(201 + i),
			Rows:        12,
			SeatsPerRow: 16,
			Tier:        TierUpper,
		})
	}
	return out
}

// TotalSeats returns the number of seats across all sections.
func TotalSeats(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += s.Rows * s.SeatsPerRow
	}
	return n
}

// DefaultPriceCents maps a section name to its default price.  The
// function is total: section names that are not numeric or fall
// outside the known ranges get the baseline price.
func DefaultPriceCents(section string) uint32 {
	n, err := strconv.Atoi(section)
	if err != nil {
		return priceBaselineCents
	}
	switch {
	case n >= 101 && n <= 140:
		return priceLowerCents
	case n >= 201 && n <= 240:
		return priceUpperCents
	default:
		return priceBaselineCents
	}
}

// SeatID composes the canonical seat identifier "section-row-seat".
func SeatID(section string, row, seat int) string {
	return fmt.Sprintf("%s-%d-%d", section, row, seat)
}

// ParseSeatID splits a composite seat id back into its parts.  It
// reports false when the string is not of the form
// "section-row-seat" with positive numeric row and seat.
func ParseSeatID(id string) (section string, row, seat int, ok bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil || row <= 0 {
		return "", 0, 0, false
	}
	seat, err = strconv.Atoi(parts[2])
	if err != nil || seat <= 0 {
		return "", 0, 0, false
	}
	return parts[0], row, seat, true
}

// ContainsSeat reports whether a seat id addresses a real position in
// the given layout.  Handlers use it to reject listings for seats
// that do not exist instead of letting orphan rows accumulate.
func ContainsSeat(sections []Section, id string) bool {
	name, row, seat, ok := ParseSeatID(id)
	if !ok {
		return false
	}
	for _, s := range sections {
		if s.Name == name {
			return row <= s.Rows && seat <= s.SeatsPerRow
		}
	}
	return false
}
