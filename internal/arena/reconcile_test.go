package arena

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seatwell/seatwell-api/internal/model"
)

// smallLayout is a single section "101" with one row of two seats,
// which keeps the expected seat universe easy to enumerate.
func smallLayout() []Section {
	return []Section{{Name: "101", Rows: 1, SeatsPerRow: 2, Tier: TierLower}}
}

func seatByID(t *testing.T, seats []Seat, id string) Seat {
	t.Helper()
	for _, s := range seats {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("seat %s not in output", id)
	return Seat{}
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("")
	require.True(t, ok)
	require.Equal(t, ModeBuyer, m)

	m, ok = ParseMode("seller")
	require.True(t, ok)
	require.Equal(t, ModeSeller, m)

	_, ok = ParseMode("admin")
	require.False(t, ok)
}

func TestReconcileEmptyGame(t *testing.T) {
	// Scenario A: no tickets. Buyers see nothing to buy, sellers can
	// list every seat at the section default price.
	buyer := Reconcile(smallLayout(), nil, ModeBuyer)
	require.Len(t, buyer, 2)
	for _, s := range buyer {
		require.False(t, s.Available)
		require.Nil(t, s.TicketID)
		require.Equal(t, uint32(9500), s.PriceCents)
	}

	seller := Reconcile(smallLayout(), nil, ModeSeller)
	require.Len(t, seller, 2)
	for _, s := range seller {
		require.True(t, s.Available)
		require.Nil(t, s.TicketID)
		require.Equal(t, uint32(9500), s.PriceCents)
	}
}

func TestReconcileOpenListing(t *testing.T) {
	// Scenario B: one open listing on 101-1-1 at a non-default price.
	tickets := []model.Ticket{{
		ID:         7,
		SeatNumber: "101-1-1",
		PriceCents: 9900,
		Status:     model.TicketStatusAvailable,
	}}

	buyer := Reconcile(smallLayout(), tickets, ModeBuyer)
	listed := seatByID(t, buyer, "101-1-1")
	require.True(t, listed.Available)
	require.NotNil(t, listed.TicketID)
	require.Equal(t, uint64(7), *listed.TicketID)
	require.Equal(t, uint32(9900), listed.PriceCents, "listing price overrides tier default")
	other := seatByID(t, buyer, "101-1-2")
	require.False(t, other.Available)
	require.Equal(t, uint32(9500), other.PriceCents)

	seller := Reconcile(smallLayout(), tickets, ModeSeller)
	require.False(t, seatByID(t, seller, "101-1-1").Available, "already listed")
	require.True(t, seatByID(t, seller, "101-1-2").Available)
	for _, s := range seller {
		require.Nil(t, s.TicketID, "seller view never references tickets")
	}
}

func TestReconcileSoldFlipsModes(t *testing.T) {
	// Scenario C: the same seat before and after a sale.
	open := []model.Ticket{{ID: 7, SeatNumber: "101-1-1", PriceCents: 9900, Status: model.TicketStatusAvailable}}
	sold := []model.Ticket{{ID: 7, SeatNumber: "101-1-1", PriceCents: 9900, Status: model.TicketStatusSold}}

	require.True(t, seatByID(t, Reconcile(smallLayout(), open, ModeBuyer), "101-1-1").Available)
	require.False(t, seatByID(t, Reconcile(smallLayout(), sold, ModeBuyer), "101-1-1").Available)

	require.False(t, seatByID(t, Reconcile(smallLayout(), open, ModeSeller), "101-1-1").Available)
	require.True(t, seatByID(t, Reconcile(smallLayout(), sold, ModeSeller), "101-1-1").Available, "sold seat can be re-listed")
}

func TestReconcileOrphanTicketIgnored(t *testing.T) {
	// Scenario D: a ticket pointing outside the layout affects no seat.
	tickets := []model.Ticket{{ID: 9, SeatNumber: "999-9-9", PriceCents: 100, Status: model.TicketStatusAvailable}}

	for _, mode := range []Mode{ModeBuyer, ModeSeller} {
		seats := Reconcile(smallLayout(), tickets, mode)
		require.Len(t, seats, 2)
		for _, s := range seats {
			require.Nil(t, s.TicketID)
			require.Equal(t, uint32(9500), s.PriceCents)
		}
	}
}

func TestReconcileDuplicateSeatFirstMatchWins(t *testing.T) {
	tickets := []model.Ticket{
		{ID: 1, SeatNumber: "101-1-1", PriceCents: 5000, Status: model.TicketStatusAvailable},
		{ID: 2, SeatNumber: "101-1-1", PriceCents: 8000, Status: model.TicketStatusSold},
	}
	s := seatByID(t, Reconcile(smallLayout(), tickets, ModeBuyer), "101-1-1")
	require.True(t, s.Available)
	require.Equal(t, uint64(1), *s.TicketID)
	require.Equal(t, uint32(5000), s.PriceCents)
}

func TestReconcileIdempotentAndInputPreserving(t *testing.T) {
	tickets := []model.Ticket{
		{ID: 1, SeatNumber: "101-1-1", PriceCents: 5000, Status: model.TicketStatusAvailable},
		{ID: 2, SeatNumber: "101-1-2", PriceCents: 7000, Status: model.TicketStatusCancelled},
	}
	snapshot := make([]model.Ticket, len(tickets))
	copy(snapshot, tickets)

	first := Reconcile(smallLayout(), tickets, ModeBuyer)
	second := Reconcile(smallLayout(), tickets, ModeBuyer)
	require.Equal(t, first, second)
	require.Equal(t, snapshot, tickets, "input must not be mutated")
}

func TestReconcilePartitionsFullLayout(t *testing.T) {
	// Availability must partition the full seat universe for any mode:
	// every generated seat appears exactly once, available or not.
	tickets := []model.Ticket{
		{ID: 1, SeatNumber: "101-1-1", PriceCents: 9900, Status: model.TicketStatusAvailable},
		{ID: 2, SeatNumber: "102-3-4", PriceCents: 8800, Status: model.TicketStatusSold},
		{ID: 3, SeatNumber: "201-2-2", PriceCents: 7700, Status: model.TicketStatusCancelled},
	}
	sections := Sections()
	for _, mode := range []Mode{ModeBuyer, ModeSeller} {
		seats := Reconcile(sections, tickets, mode)
		require.Len(t, seats, TotalSeats(sections))
		seen := make(map[string]struct{}, len(seats))
		avail, unavail := 0, 0
		for _, s := range seats {
			_, dup := seen[s.ID]
			require.False(t, dup, "duplicate seat id %s", s.ID)
			seen[s.ID] = struct{}{}
			if s.Available {
				avail++
			} else {
				unavail++
			}
		}
		require.Equal(t, TotalSeats(sections), avail+unavail)
	}
}
