// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package orderedset

import (
	"errors"
	"fmt"
	"strings"
)

// Order selects a depth-first traversal order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// ErrUnknownOrder is returned by ParseOrder for names other than pre, in and post.
var ErrUnknownOrder = errors.New("unknown traversal order")

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "pre", "in" or "post" (case-insensitive, optional "order"
// suffix) to an Order.
func ParseOrder(name string) (Order, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "order") {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Walk calls fn for each value in the given order until fn returns false.
func (s *Set) Walk(order Order, fn func(value int) bool) {
	switch order {
	case PreOrder:
		walkPre(s.root, fn)
	case InOrder:
		walkIn(s.root, fn)
	case PostOrder:
		walkPost(s.root, fn)
	}
}

func walkPre(n *node, fn func(int) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.value) && walkPre(n.left, fn) && walkPre(n.right, fn)
}

func walkIn(n *node, fn func(int) bool) bool {
	if n == nil {
		return true
	}
	return walkIn(n.left, fn) && fn(n.value) && walkIn(n.right, fn)
}

func walkPost(n *node, fn func(int) bool) bool {
	if n == nil {
		return true
	}
	return walkPost(n.left, fn) && walkPost(n.right, fn) && fn(n.value)
}

// Values returns the set's contents in the given order.
func (s *Set) Values(order Order) []int {
	values := make([]int, 0, s.count)
	s.Walk(order, func(v int) bool {
		values = append(values, v)
		return true
	})
	return values
}

// PreOrder returns the values node first, then left subtree, then right subtree.
func (s *Set) PreOrder() []int {
	return s.Values(PreOrder)
}

// InOrder returns the values in ascending order.
func (s *Set) InOrder() []int {
	return s.Values(InOrder)
}

// PostOrder returns the values left subtree first, then right subtree, then node.
func (s *Set) PostOrder() []int {
	return s.Values(PostOrder)
}
