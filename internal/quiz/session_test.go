package quiz

import (
	"testing"

	"quiz-cards-bot/internal/cards"
)

func TestSessions_MarkShownAndReads(t *testing.T) {
	s := NewSessions()
	userA := int64(1)
	userB := int64(2)

	if _, ok := s.CurrentCard(userA); ok {
		t.Fatalf("fresh user should have no current card")
	}
	if len(s.SeenSet(userA)) != 0 {
		t.Fatalf("fresh user should have empty seen set")
	}

	c1 := cards.Card{Category: "math", Question: "2+2?", Answer: "4"}
	c2 := cards.Card{Category: "bio", Question: "DNA?", Answer: "double helix"}
	s.MarkShown(userA, c1)
	s.MarkShown(userB, c2)

	cur, ok := s.CurrentCard(userA)
	if !ok || cur != c1 {
		t.Fatalf("unexpected current for A: %+v ok=%v", cur, ok)
	}
	seen := s.SeenSet(userA)
	if len(seen) != 1 {
		t.Fatalf("want 1 seen for A, got %d", len(seen))
	}
	if _, ok := seen[cardKey{"math", "2+2?"}]; !ok {
		t.Fatalf("shown card missing from seen set: %v", seen)
	}
	if len(s.SeenSet(userB)) != 1 {
		t.Fatalf("user B seen set affected or missing")
	}

	// Ensure copy semantics (mutating the returned set does not affect internal state)
	seen[cardKey{"x", "y"}] = struct{}{}
	if len(s.SeenSet(userA)) != 1 {
		t.Fatalf("internal state mutated via returned set")
	}
}

func TestSessions_SameQuestionDifferentCategory(t *testing.T) {
	s := NewSessions()
	s.MarkShown(1, cards.Card{Category: "math", Question: "origin?", Answer: "a"})
	s.MarkShown(1, cards.Card{Category: "bio", Question: "origin?", Answer: "b"})
	if len(s.SeenSet(1)) != 2 {
		t.Fatalf("identity must be (category, question), got %v", s.SeenSet(1))
	}
}

func TestSessions_ClearHistoryKeepsCurrent(t *testing.T) {
	s := NewSessions()
	c := cards.Card{Category: "math", Question: "2+2?", Answer: "4"}
	s.MarkShown(1, c)
	s.MarkShown(2, c)

	s.ClearHistory(1)
	if len(s.SeenSet(1)) != 0 {
		t.Fatalf("clear did not empty seen set")
	}
	if cur, ok := s.CurrentCard(1); !ok || cur != c {
		t.Fatalf("clear must not touch current card, got %+v ok=%v", cur, ok)
	}
	if len(s.SeenSet(2)) != 1 {
		t.Fatalf("clear should not affect other users")
	}
}

func TestSessions_UserIDs(t *testing.T) {
	s := NewSessions()
	s.MarkShown(7, cards.Card{Category: "c", Question: "q", Answer: "a"})
	s.MarkShown(9, cards.Card{Category: "c", Question: "q", Answer: "a"})
	ids := s.UserIDs()
	if len(ids) != 2 {
		t.Fatalf("want 2 users, got %v", ids)
	}
	found := map[int64]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found[7] || !found[9] {
		t.Fatalf("missing user in snapshot: %v", ids)
	}
}
