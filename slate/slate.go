// Package slate implements the bounded, ordered collection used for joker
// slots, consumable slots and hands of cards.
//
// A slate has a base capacity fixed at construction. Every negative item it
// holds adds one more slot, so a negative item always fits:
//
//	Cap()     = BaseCap() + NegativeLen()
//	IsFull()  = Len() >= Cap()
//	FreeLen() = Cap() - Len()
//
// Items keep insertion order. Removal is positional and never reorders the
// remaining items.
package slate

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrFull is matched by the error Push returns for a non-negative item on a
// full slate.
var ErrFull = errors.New("slate is full")

// Negatable is implemented by anything that can sit in a slate.
type Negatable interface {
	IsNegative() bool
}

// RejectedError hands a rejected item back to the caller.
type RejectedError[T any] struct {
	Item T
	Cap  int
}

func (e *RejectedError[T]) Error() string {
	return fmt.Sprintf("slate is full (cap %d)", e.Cap)
}

func (e *RejectedError[T]) Unwrap() error { return ErrFull }

// Slate is an ordered collection with a dynamic capacity.
type Slate[T Negatable] struct {
	items   []T
	baseCap int
	negCnt  int
}

// New returns an empty slate. It panics if baseCap is negative.
func New[T Negatable](baseCap int) *Slate[T] {
	if baseCap < 0 {
		panic(fmt.Sprintf("slate: negative base capacity %d", baseCap))
	}
	return &Slate[T]{
		items:   make([]T, 0, baseCap),
		baseCap: baseCap,
	}
}

// Len returns the number of stored items.
func (s *Slate[T]) Len() int { return len(s.items) }

// BaseCap returns the capacity the slate was built with.
func (s *Slate[T]) BaseCap() int { return s.baseCap }

// NegativeLen returns how many stored items are negative.
func (s *Slate[T]) NegativeLen() int { return s.negCnt }

// Cap returns the current capacity: base capacity plus one per negative item.
func (s *Slate[T]) Cap() int { return s.baseCap + s.negCnt }

// FreeLen returns how many non-negative items still fit.
func (s *Slate[T]) FreeLen() int {
	return max(s.Cap()-s.Len(), 0)
}

// IsFull reports whether a non-negative item would be rejected.
func (s *Slate[T]) IsFull() bool { return s.Len() >= s.Cap() }

// IsEmpty reports whether the slate holds no items.
func (s *Slate[T]) IsEmpty() bool { return len(s.items) == 0 }

// Push appends item. A negative item is always accepted. A non-negative item
// on a full slate is rejected with a *RejectedError carrying the item.
func (s *Slate[T]) Push(item T) error {
	switch {
	case item.IsNegative():
		s.items = append(s.items, item)
		s.negCnt++
	case !s.IsFull():
		s.items = append(s.items, item)
	default:
		return &RejectedError[T]{Item: item, Cap: s.Cap()}
	}
	return nil
}

// Remove deletes and returns the item at index i. It panics if i is out of
// range.
func (s *Slate[T]) Remove(i int) T {
	s.checkIndex(i)
	item := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	if item.IsNegative() {
		s.negCnt--
	}
	return item
}

// At returns the item at index i. It panics if i is out of range.
func (s *Slate[T]) At(i int) T {
	s.checkIndex(i)
	return s.items[i]
}

// Edit calls fn with a pointer to the item at index i. Changes to the
// item's negativity are reflected in the capacity once fn returns.
func (s *Slate[T]) Edit(i int, fn func(item *T)) {
	s.checkIndex(i)
	before := s.items[i].IsNegative()
	fn(&s.items[i])
	switch after := s.items[i].IsNegative(); {
	case after && !before:
		s.negCnt++
	case !after && before:
		s.negCnt--
	}
}

// All yields index and item in storage order.
func (s *Slate[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values yields items in storage order.
func (s *Slate[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every slot in storage order so items can be
// edited in place. The negative count is recomputed when the loop ends.
func (s *Slate[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		defer s.recount()
		for i := range s.items {
			if !yield(i, &s.items[i]) {
				return
			}
		}
	}
}

// Drain removes and returns every item, leaving the slate empty with its
// base capacity unchanged.
func (s *Slate[T]) Drain() []T {
	items := s.items
	s.items = make([]T, 0, s.baseCap)
	s.negCnt = 0
	return items
}

// Clone returns an independent copy. Items are copied by value.
func (s *Slate[T]) Clone() *Slate[T] {
	return &Slate[T]{
		items:   slices.Clone(s.items),
		baseCap: s.baseCap,
		negCnt:  s.negCnt,
	}
}

func (s *Slate[T]) recount() {
	n := 0
	for _, item := range s.items {
		if item.IsNegative() {
			n++
		}
	}
	s.negCnt = n
}

func (s *Slate[T]) checkIndex(i int) {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("slate: index %d out of range [0:%d]", i, len(s.items)))
	}
}
