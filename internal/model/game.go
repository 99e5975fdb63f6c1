package model

import "time"

// Game statuses.  A game starts out upcoming and is moved to
// finished or cancelled by an admin; ticket listings are only
// meaningful while the game is upcoming.
const (
	GameStatusUpcoming  = "upcoming"
	GameStatusFinished  = "finished"
	GameStatusCancelled = "cancelled"
)

// Game describes a fixture in the `games` table.  Games supply
// context for ticket listings; seat geometry comes from the arena
// package and is never persisted.
//
// Fields:
//  ID        – primary key identifier.
//  HomeTeam  – name of the home team.
//  AwayTeam  – name of the visiting team.
//  StartsAt  – kickoff time in UTC.
//  Venue     – arena name.
//  Status    – upcoming, finished or cancelled.
//  ImageURL  – optional artwork URL (empty when unset).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Game struct {
	ID        uint64    // games.id
	HomeTeam  string    // games.home_team
	AwayTeam  string    // games.away_team
	StartsAt  time.Time // games.starts_at
	Venue     string    // games.venue
	Status    string    // games.status
	ImageURL  string    // games.image_url
	CreatedAt time.Time // games.created_at
	UpdatedAt time.Time // games.updated_at
}
