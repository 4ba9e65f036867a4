package store

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	date TEXT NOT NULL,
	pnl REAL NOT NULL,
	trades INTEGER NOT NULL,
	direction TEXT NOT NULL,
	bias TEXT NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	long_count INTEGER,
	short_count INTEGER
);

CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`
