package arena

import "github.com/seatwell/seatwell-api/internal/model"

// Mode selects the perspective a seat map is computed for.  Buyer and
// seller mode invert the availability rule: buyers can take seats
// that carry an open listing, sellers can list seats that do not.
type Mode string

const (
	ModeBuyer  Mode = "buyer"
	ModeSeller Mode = "seller"
)

// ParseMode normalizes a mode string from a query parameter.  Empty
// input defaults to buyer; anything unrecognized reports false.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", string(ModeBuyer):
		return ModeBuyer, true
	case string(ModeSeller):
		return ModeSeller, true
	default:
		return "", false
	}
}

// Seat is one derived position in the reconciled seat map.  Seats are
// never persisted; the reconciler rebuilds the full universe from the
// layout on every call and overlays the game's ticket rows onto it.
//
// TicketID is set only in buyer mode and only when an open listing
// backs the seat, so a buyer client can address the purchase call.
type Seat struct {
	ID         string  `json:"id"`
	Section    string  `json:"section"`
	Row        int     `json:"row"`
	Seat       int     `json:"seat"`
	PriceCents uint32  `json:"price_cents"`
	Available  bool    `json:"available"`
	TicketID   *uint64 `json:"ticket_id,omitempty"`
}

// Reconcile overlays the game's ticket rows onto the layout and
// classifies every seat for the given mode.
//
// Rules, applied independently per seat:
//   - a matching ticket's price overrides the section default;
//   - buyer mode: available iff a matching ticket exists with status
//     available, in which case TicketID references it;
//   - seller mode: available iff no matching ticket exists or the
//     matching ticket is not available (cancelled and sold seats can
//     be re-listed).
//
// When several tickets reference the same seat the first one in
// slice order wins; the unique (game_id, seat_number) key makes that
// case impossible for rows created through this service.  Tickets
// whose seat number addresses no seat in the layout affect nothing.
//
// The function never mutates tickets and allocates a fresh result on
// every call, so identical input always yields identical output.
func Reconcile(sections []Section, tickets []model.Ticket, mode Mode) []Seat {
	bySeat := make(map[string]*model.Ticket, len(tickets))
	for i := range tickets {
		t := &tickets[i]
		if _, dup := bySeat[t.SeatNumber]; !dup {
			bySeat[t.SeatNumber] = t
		}
	}

	seats := make([]Seat, 0, TotalSeats(sections))
	for _, sec := range sections {
		for row := 1; row <= sec.Rows; row++ {
			for num := 1; num <= sec.SeatsPerRow; num++ {
				seat := Seat{
					ID:         SeatID(sec.Name, row, num),
					Section:    sec.Name,
					Row:        row,
					Seat:       num,
					PriceCents: DefaultPriceCents(sec.Name),
				}
				t := bySeat[seat.ID]
				if t != nil {
					seat.PriceCents = t.PriceCents
				}
				switch mode {
				case ModeSeller:
					seat.Available = t == nil || t.Status != model.TicketStatusAvailable
				default: // buyer
					if t != nil && t.Status == model.TicketStatusAvailable {
						seat.Available = true
						id := t.ID
						seat.TicketID = &id
					}
				}
				seats = append(seats, seat)
			}
		}
	}
	return seats
}
