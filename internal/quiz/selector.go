package quiz

import (
	"math/rand"
	"sync"

	"quiz-cards-bot/internal/cards"
)

// Selector picks uniformly-random unseen cards. The randomness source is
// injected so selection can be made deterministic in tests.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSelector(src rand.Source) *Selector {
	return &Selector{rnd: rand.New(src)}
}

// NextUnseen returns one card from the bank whose (category, question)
// pair is not in seen, chosen with uniform probability over all such
// candidates regardless of category size. The second return is false
// when no unseen card remains, including for an empty bank.
func (sel *Selector) NextUnseen(bank *cards.Bank, seen map[cardKey]struct{}) (cards.Card, bool) {
	var candidates []cards.Card
	for _, c := range bank.All() {
		if _, ok := seen[cardKey{c.Category, c.Question}]; !ok {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return cards.Card{}, false
	}
	sel.mu.Lock()
	i := sel.rnd.Intn(len(candidates))
	sel.mu.Unlock()
	return candidates[i], true
}
