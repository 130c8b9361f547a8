package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: players and game_nights must be created BEFORE the tables that
// reference them due to foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS game_nights (
    id TEXT PRIMARY KEY,
    started_at INTEGER NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS game_players (
    game_id TEXT NOT NULL,
    seat INTEGER NOT NULL,
    player_id TEXT NOT NULL,
    score INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (game_id, seat),
    FOREIGN KEY (game_id) REFERENCES game_nights(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS rounds (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    bidder TEXT NOT NULL,
    partner TEXT,
    bid_level INTEGER NOT NULL,
    trump_type TEXT NOT NULL,
    vip_count INTEGER,
    special_bid TEXT,
    tricks_won INTEGER NOT NULL,
    success INTEGER NOT NULL,
    points INTEGER NOT NULL,
    FOREIGN KEY (game_id) REFERENCES game_nights(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS app_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_game_players_game_id ON game_players(game_id);
CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id, seq);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
