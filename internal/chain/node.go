// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package chain

import (
	"fmt"
	"iter"
	"strings"
)

// Node is one element of a chain.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// New returns a terminal node holding value.
func New[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// FromValues builds a chain rooted at first with rest appended in order.
func FromValues[T any](first T, rest ...T) *Node[T] {
	root := New(first)
	for _, v := range rest {
		root.Push(v)
	}
	return root
}

// Push appends a node holding value at the end of the chain reachable from n.
// The call recurses once per existing successor.
func (n *Node[T]) Push(value T) {
	if n.next != nil {
		n.next.Push(value)
		return
	}
	n.next = New(value)
}

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// Next returns the successor of n, or nil if n is terminal.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Last returns the terminal node of the chain reachable from n.
func (n *Node[T]) Last() *Node[T] {
	cur := n
	for cur.next != nil {
		cur = cur.next
	}
	return cur
}

// Len reports the number of nodes reachable from n, n included.
func (n *Node[T]) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// All returns an iterator over the values of the chain in order.
func (n *Node[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := n; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values returns the values of the chain in order.
func (n *Node[T]) Values() []T {
	values := make([]T, 0, n.Len())
	for v := range n.All() {
		values = append(values, v)
	}
	return values
}

func (n *Node[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for cur := n; cur != nil; cur = cur.next {
		if cur != n {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, cur.value)
	}
	b.WriteByte(']')
	return b.String()
}
