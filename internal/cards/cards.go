package cards

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Card is one question/answer pair tagged with its category.
// Questions are unique within a category but not across categories,
// so the identity of a card is always the (Category, Question) pair.
type Card struct {
	Category string
	Question string
	Answer   string
}

// Bank is the full card collection, grouped by category. It is built
// once at startup and read-only afterwards, so it needs no locking.
type Bank struct {
	cards []Card
}

// Load reads a card file of the form
//
//	{"category": [["question", "answer"], ...], ...}
//
// and returns the parsed bank. Any unreadable or malformed source is an
// error; the bot cannot run without its cards.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cards file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cards file %s: %w", path, err)
	}
	return b, nil
}

// Parse builds a Bank from raw JSON card data.
func Parse(data []byte) (*Bank, error) {
	var raw map[string][][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}

	categories := make([]string, 0, len(raw))
	for cat := range raw {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var cs []Card
	for _, cat := range categories {
		for i, pair := range raw[cat] {
			if len(pair) != 2 {
				return nil, fmt.Errorf("category %q, entry %d: want [question, answer], got %d elements", cat, i, len(pair))
			}
			cs = append(cs, Card{Category: cat, Question: pair[0], Answer: pair[1]})
		}
	}
	return &Bank{cards: cs}, nil
}

// All returns every card in a stable order: categories sorted, pairs in
// source order within a category. The returned slice is a copy.
func (b *Bank) All() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Count is the total number of cards across all categories.
func (b *Bank) Count() int { return len(b.cards) }
