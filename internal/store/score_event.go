package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendScoreEvent(ctx context.Context, data ScoreEventData) error {
	err := r.insertEvent(ctx, scoreTableName,
		[]string{"student_id", "session_id", "unit_id", "mode", "reason", "points", "xp_after", "level_after"},
		[]any{data.StudentID, data.SessionID, data.UnitID, data.Mode, data.Reason, data.Points, data.XPAfter, data.LevelAfter},
	)
	if err != nil {
		return fmt.Errorf("save score event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScoreEvents(ctx context.Context, studentID string, opts QueryOpts) ([]ScoreEventRecord, error) {
	sel := selectEvents(scoreTableName, opts,
		"student_id", "session_id", "unit_id", "mode", "reason", "points", "xp_after", "level_after")
	sel.Where(entsql.EQ("student_id", studentID))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query score events: %w", err)
	}
	defer rows.Close()

	var out []ScoreEventRecord
	for rows.Next() {
		var e ScoreEventRecord
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp,
			&e.StudentID, &e.SessionID, &e.UnitID, &e.Mode, &e.Reason,
			&e.Points, &e.XPAfter, &e.LevelAfter); err != nil {
			return nil, fmt.Errorf("scan score event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) XPByMode(ctx context.Context, studentID string) ([]ModeTotal, error) {
	query, args := builder().
		Select("mode", entsql.As(entsql.Count("*"), "awards"), entsql.As(entsql.Sum("points"), "points")).
		From(entsql.Table(scoreTableName)).
		Where(entsql.EQ("student_id", studentID)).
		GroupBy("mode").
		OrderBy("mode").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query xp by mode: %w", err)
	}
	defer rows.Close()

	var out []ModeTotal
	for rows.Next() {
		var t ModeTotal
		if err := rows.Scan(&t.Mode, &t.Awards, &t.Points); err != nil {
			return nil, fmt.Errorf("scan xp by mode: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
