package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Clips table - stores clip metadata
		`CREATE TABLE IF NOT EXISTS clips (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Clip frames table - one row per frame, landmark data as JSON
		`CREATE TABLE IF NOT EXISTS clip_frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			clip_id TEXT NOT NULL REFERENCES clips(id) ON DELETE CASCADE,
			frame_index INTEGER NOT NULL,
			data TEXT NOT NULL
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_clip_frames_clip_id ON clip_frames(clip_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
