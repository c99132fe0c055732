package store

import (
	"time"
)

// HistoryEntry is one saved recommendation run.
type HistoryEntry struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	InputText    string    `json:"input_text"`
	Goal         string    `json:"goal"`
	TemplateID   string    `json:"template_id"`
	TemplateName string    `json:"template_name"`
	Score        int       `json:"score"`
	Reason       string    `json:"reason"`
}

// SaveRecommendation records a recommendation run and returns its row ID.
func (db *DB) SaveRecommendation(e HistoryEntry) (int64, error) {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := db.conn.Exec(
		`INSERT INTO recommendations
		(created_at, input_text, goal, template_id, template_name, score, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339), e.InputText, e.Goal,
		e.TemplateID, e.TemplateName, e.Score, e.Reason,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListRecommendations returns the most recent entries, newest first.
// A limit of 0 or less returns everything.
func (db *DB) ListRecommendations(limit int) ([]HistoryEntry, error) {
	query := `SELECT id, created_at, input_text, goal, template_id, template_name, score, reason
		FROM recommendations ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &createdAt, &e.InputText, &e.Goal,
			&e.TemplateID, &e.TemplateName, &e.Score, &e.Reason); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearRecommendations deletes all saved entries and returns how many
// rows were removed.
func (db *DB) ClearRecommendations() (int64, error) {
	result, err := db.conn.Exec("DELETE FROM recommendations")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
