package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// KVRepo stores small JSON documents under fixed keys.
type KVRepo interface {
	// Get returns the stored value, or ok=false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put creates or replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ScoreEventData captures a single XP award.
type ScoreEventData struct {
	StudentID  string
	SessionID  string
	UnitID     int
	Mode       string
	Reason     string
	Points     int
	XPAfter    int
	LevelAfter int
}

// ScoreEventRecord is a persisted score event.
type ScoreEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ScoreEventData
}

// SessionEventData captures a practice session lifecycle event.
type SessionEventData struct {
	SessionID      string
	UnitID         int
	Mode           string
	Action         string // "start", "complete" or "exit"
	XPEarned       int
	CorrectAnswers int
	Questions      int
	DurationSecs   int
}

// SessionEventRecord is a persisted session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates LLM usage for one purpose.
type UsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ModeTotal aggregates awarded XP for one practice mode.
type ModeTotal struct {
	Mode   string
	Awards int
	Points int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendScoreEvent records an XP award.
	AppendScoreEvent(ctx context.Context, data ScoreEventData) error

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryScoreEvents returns score events for a student, newest first.
	QueryScoreEvents(ctx context.Context, studentID string, opts QueryOpts) ([]ScoreEventRecord, error)

	// XPByMode sums awarded points per mode for a student.
	XPByMode(ctx context.Context, studentID string) ([]ModeTotal, error)

	// QuerySessionEvents returns session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// Purge deletes every event. The sequence keeps counting.
	Purge(ctx context.Context) error
}
