package quiz

import (
	"sync"

	"quiz-cards-bot/internal/cards"
)

// cardKey identifies a card inside a user's seen set. Questions are only
// unique within a category, so the key is always the pair.
type cardKey struct {
	category string
	question string
}

type session struct {
	seen    map[cardKey]struct{}
	current *cards.Card
}

// Sessions owns all per-user quiz state: which cards a user has already
// been shown and the card currently awaiting an answer reveal. Sessions
// are created lazily on first use and live for the process lifetime.
type Sessions struct {
	mu    sync.RWMutex
	users map[int64]*session
}

func NewSessions() *Sessions {
	return &Sessions{users: make(map[int64]*session)}
}

// callers hold mu
func (s *Sessions) get(userID int64) *session {
	u, ok := s.users[userID]
	if !ok {
		u = &session{seen: make(map[cardKey]struct{})}
		s.users[userID] = u
	}
	return u
}

// MarkShown records the card as seen for the user and makes it the
// current card awaiting a reveal, in one step.
func (s *Sessions) MarkShown(userID int64, card cards.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.get(userID)
	u.seen[cardKey{card.Category, card.Question}] = struct{}{}
	c := card
	u.current = &c
}

// ClearHistory empties the user's seen set so a new pass over the full
// bank can begin. The current card is left in place; the next shown card
// overwrites it.
func (s *Sessions) ClearHistory(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).seen = make(map[cardKey]struct{})
}

// CurrentCard returns the card awaiting a reveal for the user, if any.
func (s *Sessions) CurrentCard(userID int64) (cards.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok || u.current == nil {
		return cards.Card{}, false
	}
	return *u.current, true
}

// SeenSet returns a copy of the user's seen set. Unknown users read as
// empty.
func (s *Sessions) SeenSet(userID int64) map[cardKey]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[cardKey]struct{})
	if u, ok := s.users[userID]; ok {
		for k := range u.seen {
			out[k] = struct{}{}
		}
	}
	return out
}

// UserIDs returns a snapshot of every user with session state.
func (s *Sessions) UserIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	return ids
}
