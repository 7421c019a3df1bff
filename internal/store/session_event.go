package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insertEvent(ctx, sessionTableName,
		[]string{"session_id", "unit_id", "mode", "action", "xp_earned", "correct_answers", "questions", "duration_secs"},
		[]any{data.SessionID, data.UnitID, data.Mode, data.Action, data.XPEarned, data.CorrectAnswers, data.Questions, data.DurationSecs},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	query, args := selectEvents(sessionTableName, opts,
		"session_id", "unit_id", "mode", "action", "xp_earned", "correct_answers", "questions", "duration_secs",
	).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEventRecord
	for rows.Next() {
		var e SessionEventRecord
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.UnitID, &e.Mode, &e.Action,
			&e.XPEarned, &e.CorrectAnswers, &e.Questions, &e.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
