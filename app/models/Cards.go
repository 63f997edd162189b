package models

import "math/rand"

// CardType distinguishes the two deck families.
type CardType string

const (
	CardOpportunity CardType = "opportunity"
	CardExperience  CardType = "experience"
)

// Card is one concrete drawable card. Opportunity cards carry a destination
// border-square name; experience cards carry a fixed movement value.
type Card struct {
	Type        CardType `json:"type"`
	Text        string   `json:"text"`
	Destination string   `json:"destination,omitempty"`
	Dice        int      `json:"dice,omitempty"`
}

// CardSpec is a quantity-bearing card description from the edition data.
type CardSpec struct {
	Card
	Quantity int `json:"quantity"`
}

// CardDeck is a fixed multiset of cards drawn through a reshuffling
// permutation: every card is seen exactly once per full cycle and the deck
// never empties.
type CardDeck struct {
	cards      []Card
	perm       []int
	cursor     int
	reshuffles int
	rng        *rand.Rand
}

// NewCardDeck expands the specs into one card instance per unit of quantity
// and deals an initial permutation. The deck is never resized afterwards.
func NewCardDeck(specs []CardSpec, rng *rand.Rand) *CardDeck {
	d := &CardDeck{rng: rng}
	for _, spec := range specs {
		for i := 0; i < spec.Quantity; i++ {
			d.cards = append(d.cards, spec.Card)
		}
	}
	d.perm = rng.Perm(len(d.cards))
	return d
}

// Draw returns the next card of the current cycle, regenerating a fresh
// permutation when the cycle is exhausted.
func (d *CardDeck) Draw() Card {
	if len(d.cards) == 0 {
		return Card{}
	}
	if d.cursor >= len(d.cards) {
		d.perm = d.rng.Perm(len(d.cards))
		d.cursor = 0
		d.reshuffles++
	}
	c := d.cards[d.perm[d.cursor]]
	d.cursor++
	return c
}

// DrawMany is n sequential single draws.
func (d *CardDeck) DrawMany(n int) []Card {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.Draw())
	}
	return out
}

func (d *CardDeck) Size() int {
	return len(d.cards)
}

// Reshuffles reports how many times the permutation has been regenerated
// since construction.
func (d *CardDeck) Reshuffles() int {
	return d.reshuffles
}
