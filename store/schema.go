package store

// Schema creates the series store tables. Applied on every open; all
// statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS series (
	id         TEXT PRIMARY KEY,
	symbol     TEXT NOT NULL,
	source     TEXT NOT NULL,
	interval   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS points (
	series_id TEXT NOT NULL REFERENCES series(id) ON DELETE CASCADE,
	time      TIMESTAMP NOT NULL,
	price     REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_points_series_time ON points(series_id, time);
`
