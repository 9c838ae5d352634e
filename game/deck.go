package game

import (
	"slices"

	"machikoro/meta"
	"machikoro/utils"
)

// Market is the face-up display of a pile: distinct tags with their
// remaining counts, kept in the order they were first revealed.
type Market[T comparable] struct {
	order  []T
	counts map[T]int
}

func newMarket[T comparable]() *Market[T] {
	return &Market[T]{counts: make(map[T]int)}
}

// Len returns the number of distinct tags face up.
func (m *Market[T]) Len() int {
	return len(m.order)
}

// Count returns how many copies of tag are face up.
func (m *Market[T]) Count(tag T) int {
	return m.counts[tag]
}

func (m *Market[T]) Contains(tag T) bool {
	return m.counts[tag] > 0
}

// Tags returns the face-up tags in reveal order.
func (m *Market[T]) Tags() []T {
	return slices.Clone(m.order)
}

func (m *Market[T]) add(tag T) {
	if m.counts[tag] == 0 {
		m.order = append(m.order, tag)
	}
	m.counts[tag]++
}

func (m *Market[T]) remove(tag T) bool {
	if m.counts[tag] == 0 {
		return false
	}
	m.counts[tag]--
	if m.counts[tag] == 0 {
		delete(m.counts, tag)
		i := utils.FindIndex(m.order, tag)
		m.order = slices.Delete(m.order, i, i+1)
	}
	return true
}

// Pile pairs a shuffled draw deck with its face-up market.
type Pile[T comparable] struct {
	deck   []T
	market *Market[T]
}

// NewPile primes the market from deck, whose last element is the top.
func NewPile[T comparable](deck []T) *Pile[T] {
	p := &Pile[T]{deck: deck, market: newMarket[T]()}
	p.Refill()
	return p
}

// Refill moves units from the top of the deck into the market until it
// shows MARKET_SIZE distinct tags or the deck runs out.
func (p *Pile[T]) Refill() {
	for p.market.Len() < meta.MARKET_SIZE && len(p.deck) > 0 {
		last := len(p.deck) - 1
		tag := p.deck[last]
		p.deck = p.deck[:last]
		p.market.add(tag)
	}
}

// Take removes one face-up unit of tag and refills the market. It reports
// false when tag is not face up.
func (p *Pile[T]) Take(tag T) bool {
	if !p.market.remove(tag) {
		return false
	}
	p.Refill()
	return true
}

func (p *Pile[T]) Market() *Market[T] {
	return p.market
}

// DeckLen returns the number of units left face down.
func (p *Pile[T]) DeckLen() int {
	return len(p.deck)
}

// Exhausted reports whether nothing is left to buy from this pile.
func (p *Pile[T]) Exhausted() bool {
	return len(p.deck) == 0 && p.market.Len() == 0
}

func (m *Market[T]) clone() *Market[T] {
	counts := make(map[T]int, len(m.counts))
	for tag, n := range m.counts {
		counts[tag] = n
	}
	return &Market[T]{order: slices.Clone(m.order), counts: counts}
}

func (p *Pile[T]) clone() *Pile[T] {
	return &Pile[T]{deck: slices.Clone(p.deck), market: p.market.clone()}
}
