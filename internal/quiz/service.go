package quiz

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"quiz-cards-bot/internal/cards"
	"quiz-cards-bot/internal/storage"
)

var (
	// ErrDeckExhausted reports that the user has seen every card in the
	// bank. It is a normal terminal outcome, not a failure: the user's
	// history has already been cleared, and the next NextCard call draws
	// from the full bank again.
	ErrDeckExhausted = errors.New("quiz: deck exhausted")

	// ErrNoActiveCard reports a reveal request with no card pending.
	ErrNoActiveCard = errors.New("quiz: no active card")

	// ErrLogWrite wraps a failed answer-log append. The reveal itself
	// succeeded and the returned answer text is valid; callers decide
	// whether to retry the write.
	ErrLogWrite = errors.New("quiz: answer log write failed")
)

const fallbackUsername = "anonymous"

// Service drives one user's pass through the card bank: it hands out
// previously-unseen cards one at a time and records every revealed
// answer through the Recorder.
type Service struct {
	bank     *cards.Bank
	sessions *Sessions
	selector *Selector
	rec      storage.Recorder

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewService composes a quiz service. rec may be nil, in which case
// reveals are not audited.
func NewService(bank *cards.Bank, sessions *Sessions, selector *Selector, rec storage.Recorder) *Service {
	return &Service{
		bank:     bank,
		sessions: sessions,
		selector: selector,
		rec:      rec,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// userLock serializes NextCard/RevealAnswer per user; operations on
// distinct users never contend on it.
func (s *Service) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lk, ok := s.locks[userID]
	if !ok {
		lk = &sync.Mutex{}
		s.locks[userID] = lk
	}
	return lk
}

// NextCard picks an unseen card for the user, marks it shown and makes
// it the pending card for a reveal. When the bank is exhausted it clears
// the user's history and returns ErrDeckExhausted.
func (s *Service) NextCard(userID int64) (cards.Card, error) {
	lk := s.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	card, ok := s.selector.NextUnseen(s.bank, s.sessions.SeenSet(userID))
	if !ok {
		s.sessions.ClearHistory(userID)
		return cards.Card{}, ErrDeckExhausted
	}
	s.sessions.MarkShown(userID, card)
	return card, nil
}

// RevealAnswer returns the answer text of the user's pending card and
// appends one audit event. A failed append still returns the answer,
// wrapped together with ErrLogWrite; the pending card is left as is and
// is simply overwritten by the next NextCard call.
func (s *Service) RevealAnswer(userID int64, username string) (string, error) {
	lk := s.userLock(userID)
	lk.Lock()
	card, ok := s.sessions.CurrentCard(userID)
	lk.Unlock()
	if !ok {
		return "", ErrNoActiveCard
	}

	if username == "" {
		username = fallbackUsername
	}
	// The append runs outside the user lock so slow storage never holds
	// up session state.
	if s.rec != nil {
		ev := storage.Event{
			UserID:    userID,
			Username:  username,
			Timestamp: time.Now(),
			Question:  card.Question,
			Answer:    card.Answer,
		}
		if err := s.rec.AppendAnswer(ev); err != nil {
			return card.Answer, fmt.Errorf("%w: %v", ErrLogWrite, err)
		}
	}
	return card.Answer, nil
}

// Users returns every user the service has state for.
func (s *Service) Users() []int64 {
	return s.sessions.UserIDs()
}
