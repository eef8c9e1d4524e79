package store

const (
	saveSession = `INSERT OR REPLACE INTO session (id, user_id, token, created_at)
		VALUES (1, ?, ?, ?);`

	loadSession = `SELECT user_id, token, created_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session;`

	getPreferences = `SELECT user_id, sort_key, section, view_mode
		FROM preferences
		WHERE user_id = ?;`

	savePreferences = `INSERT INTO preferences (user_id, sort_key, section, view_mode, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			sort_key = excluded.sort_key,
			section = excluded.section,
			view_mode = excluded.view_mode,
			updated_at = excluded.updated_at;`
)
