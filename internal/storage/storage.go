package storage

import "time"

// Event is a single answer reveal shown to a user. One record is
// appended per reveal; records are never rewritten or deleted.
type Event struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
}

// Recorder abstracts persistence of answer events.
// Implementations can be file-based, database, etc.
// AppendAnswer should atomically append a new event.
// LoadAnswers should return events in chronological order.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendAnswer(event Event) error
	LoadAnswers() ([]Event, error)
}
