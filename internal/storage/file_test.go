package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "user_answers.log")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := Event{Timestamp: time.Unix(1, 0).UTC(), UserID: 1, Username: "alice", Question: "2+2?", Answer: "4"}
	ev2 := Event{Timestamp: time.Unix(2, 0).UTC(), UserID: 2, Username: "bob", Question: "DNA?", Answer: "double helix"}
	if err := rec.AppendAnswer(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendAnswer(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadAnswers()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].UserID != 1 || events[1].UserID != 2 {
		t.Fatalf("order mismatch: %+v", events)
	}
	if events[0].Question != "2+2?" || events[0].Answer != "4" {
		t.Fatalf("payload mismatch: %+v", events[0])
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}

func TestNewFileRecorder_CreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "logs", "user_answers.log")
	if _, err := NewFileRecorder(p); err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
