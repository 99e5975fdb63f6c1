package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/seatwell/seatwell-api/internal/model"
)

// ErrGameNotFound is returned when a game id does not exist.
var ErrGameNotFound = errors.New("game not found")

// GameRepo encapsulates database operations for games.
type GameRepo struct{ db *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

// DB exposes the underlying handle so handlers can open
// transactions spanning multiple repositories.
func (r *GameRepo) DB() *sql.DB { return r.db }

const gameCols = "id,home_team,away_team,starts_at,venue,status,image_url,created_at,updated_at"

func scanGame(scan func(dest ...any) error) (model.Game, error) {
	var g model.Game
	var image sql.NullString
	err := scan(&g.ID, &g.HomeTeam, &g.AwayTeam, &g.StartsAt, &g.Venue, &g.Status, &image, &g.CreatedAt, &g.UpdatedAt)
	g.ImageURL = image.String
	return g, err
}

// List returns all games ordered by start time, soonest first.
func (r *GameRepo) List(ctx context.Context) ([]model.Game, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+gameCols+" FROM games ORDER BY starts_at ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	games := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows.Scan)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetByID fetches one game.  ErrGameNotFound when the id is unknown.
func (r *GameRepo) GetByID(ctx context.Context, id uint64) (model.Game, error) {
	g, err := scanGame(r.db.QueryRowContext(ctx,
		"SELECT "+gameCols+" FROM games WHERE id=? LIMIT 1", id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Game{}, ErrGameNotFound
	}
	return g, err
}

// Create inserts a game and fills in its ID.
func (r *GameRepo) Create(ctx context.Context, g *model.Game) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO games (home_team, away_team, starts_at, venue, status, image_url) VALUES (?,?,?,?,?,?)",
		g.HomeTeam, g.AwayTeam, g.StartsAt, g.Venue, g.Status, nullIfEmpty(g.ImageURL))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// Update replaces the mutable columns of a game.  ErrGameNotFound
// when the id is unknown.
func (r *GameRepo) Update(ctx context.Context, g model.Game) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE games SET home_team=?, away_team=?, starts_at=?, venue=?, status=?, image_url=? WHERE id=?",
		g.HomeTeam, g.AwayTeam, g.StartsAt, g.Venue, g.Status, nullIfEmpty(g.ImageURL), g.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// the row may exist with identical values; verify
		var exists int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM games WHERE id=? LIMIT 1", g.ID).Scan(&exists); errors.Is(err, sql.ErrNoRows) {
			return ErrGameNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a game and its unsold listings.  A game that
// already has sold tickets is part of the audit trail and cannot be
// deleted; ErrConflict is returned instead.
func (r *GameRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	var sold int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tickets WHERE game_id=? AND status=?",
		id, model.TicketStatusSold).Scan(&sold); err != nil {
		return err
	}
	if sold > 0 {
		return ErrConflict
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tickets WHERE game_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM games WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGameNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
