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

import "math"

const (
	// MinSentinel is returned by Minimum on an empty set.
	MinSentinel = math.MinInt
	// MaxSentinel is returned by Maximum on an empty set.
	MaxSentinel = math.MaxInt
)

// Set is an ordered set of unique integers. The zero value is an empty set.
type Set struct {
	root  *node
	count int
}

// New creates an empty set.
func New() *Set {
	return &Set{}
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return s.count
}

// IsEmpty reports whether the set holds no values.
func (s *Set) IsEmpty() bool {
	return s.root == nil
}

// Height returns the height of the tree, 0 for an empty set.
func (s *Set) Height() int {
	return height(s.root)
}

// Clear removes every value.
func (s *Set) Clear() {
	s.root = nil
	s.count = 0
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value int) bool {
	n := s.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Minimum returns the smallest value, or MinSentinel if the set is empty.
func (s *Set) Minimum() int {
	if s.root == nil {
		return MinSentinel
	}
	return s.root.first().value
}

// Maximum returns the largest value, or MaxSentinel if the set is empty.
func (s *Set) Maximum() int {
	if s.root == nil {
		return MaxSentinel
	}
	return s.root.last().value
}

// Min returns the smallest value and true, or 0 and false if the set is empty.
func (s *Set) Min() (int, bool) {
	if s.root == nil {
		return 0, false
	}
	return s.root.first().value, true
}

// Max returns the largest value and true, or 0 and false if the set is empty.
func (s *Set) Max() (int, bool) {
	if s.root == nil {
		return 0, false
	}
	return s.root.last().value, true
}

// Insert adds value to the set. Inserting a value already present does nothing.
func (s *Set) Insert(value int) {
	var added bool
	s.root = insert(s.root, value, &added)
	if added {
		s.count++
	}
}

func insert(n *node, value int, added *bool) *node {
	if n == nil {
		*added = true
		return newNode(value)
	}

	if value < n.value {
		n.left = insert(n.left, value, added)
	} else if value > n.value {
		n.right = insert(n.right, value, added)
	} else {
		return n
	}

	n.updateHeight()

	balance := balanceFactor(n)
	if balance > 1 {
		if value < n.left.value {
			return rotateRight(n)
		}
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}
	if balance < -1 {
		if value > n.right.value {
			return rotateLeft(n)
		}
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Remove deletes value from the set. Removing a missing value does nothing.
func (s *Set) Remove(value int) {
	var removed bool
	s.root = remove(s.root, value, &removed)
	if removed {
		s.count--
	}
}

func remove(n *node, value int, removed *bool) *node {
	if n == nil {
		return nil
	}

	if value < n.value {
		n.left = remove(n.left, value, removed)
	} else if value > n.value {
		n.right = remove(n.right, value, removed)
	} else {
		if n.left == nil {
			*removed = true
			return n.right
		}
		if n.right == nil {
			*removed = true
			return n.left
		}
		// two children: take the successor's value, then delete the successor
		successor := n.right.first()
		n.value = successor.value
		n.right = remove(n.right, successor.value, removed)
	}

	n.updateHeight()
	return rebalance(n)
}

// rebalance restores the AVL property at n after a deletion below it.
func rebalance(n *node) *node {
	balance := balanceFactor(n)

	if balance > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	if balance < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}
