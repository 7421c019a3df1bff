package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	kvTableName         = "kv_records"
	scoreTableName      = "score_events"
	sessionTableName    = "session_events"
	llmRequestTableName = "llm_request_events"
)

// eventColumns returns the columns every event table starts with: an
// auto-increment ID, the global sequence and the UTC timestamp.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	cols := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(cols, extra...)
}

// eventIndexes indexes sequence and timestamp for range queries.
func eventIndexes(table string, cols []*schema.Column) []*schema.Index {
	return []*schema.Index{
		{Name: table + "_sequence", Columns: []*schema.Column{cols[1]}},
		{Name: table + "_timestamp", Columns: []*schema.Column{cols[2]}},
	}
}

var (
	kvColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KVTable holds small JSON documents such as the learner profile.
	KVTable = &schema.Table{
		Name:       kvTableName,
		Columns:    kvColumns,
		PrimaryKey: []*schema.Column{kvColumns[0]},
	}

	scoreColumns = eventColumns(
		&schema.Column{Name: "student_id", Type: field.TypeString},
		&schema.Column{Name: "session_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "unit_id", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "mode", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "reason", Type: field.TypeString},
		&schema.Column{Name: "points", Type: field.TypeInt},
		&schema.Column{Name: "xp_after", Type: field.TypeInt},
		&schema.Column{Name: "level_after", Type: field.TypeInt},
	)
	// ScoreEventsTable records every XP award.
	ScoreEventsTable = &schema.Table{
		Name:       scoreTableName,
		Columns:    scoreColumns,
		PrimaryKey: []*schema.Column{scoreColumns[0]},
		Indexes: append(eventIndexes(scoreTableName, scoreColumns),
			&schema.Index{Name: scoreTableName + "_student_id", Columns: []*schema.Column{scoreColumns[3]}}),
	}

	sessionColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "unit_id", Type: field.TypeInt},
		&schema.Column{Name: "mode", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
		&schema.Column{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "questions", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	)
	// SessionEventsTable records practice session lifecycle events.
	SessionEventsTable = &schema.Table{
		Name:       sessionTableName,
		Columns:    sessionColumns,
		PrimaryKey: []*schema.Column{sessionColumns[0]},
		Indexes: append(eventIndexes(sessionTableName, sessionColumns),
			&schema.Index{Name: sessionTableName + "_session_id", Columns: []*schema.Column{sessionColumns[3]}}),
	}

	llmRequestColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	// LLMRequestEventsTable records every oracle call for cost tracking and debugging.
	LLMRequestEventsTable = &schema.Table{
		Name:       llmRequestTableName,
		Columns:    llmRequestColumns,
		PrimaryKey: []*schema.Column{llmRequestColumns[0]},
		Indexes: append(eventIndexes(llmRequestTableName, llmRequestColumns),
			&schema.Index{Name: llmRequestTableName + "_purpose", Columns: []*schema.Column{llmRequestColumns[5]}}),
	}

	// Tables lists every table the store migrates.
	Tables = []*schema.Table{
		KVTable,
		ScoreEventsTable,
		SessionEventsTable,
		LLMRequestEventsTable,
	}
)
