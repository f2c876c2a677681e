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

type node struct {
	value  int // only rewritten when a two-child node takes its successor's value
	height int // leaf = 1
	left   *node
	right  *node
}

func newNode(value int) *node {
	return &node{value: value, height: 1}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight promotes n.left into n's position.
func rotateRight(n *node) *node {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateLeft promotes n.right into n's position.
func rotateLeft(n *node) *node {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

func (n *node) first() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node) last() *node {
	for n.right != nil {
		n = n.right
	}
	return n
}
