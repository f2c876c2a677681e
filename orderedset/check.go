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

import "fmt"

// Check walks the whole tree and returns an error describing the first
// ordering, balance, height or count violation found.
func (s *Set) Check() error {
	count, err := check(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.count {
		return fmt.Errorf("count mismatch: tree holds %d nodes, set reports %d", count, s.count)
	}
	return nil
}

// check validates the subtree at n, whose values must lie strictly between
// low and high when those are set. It returns the subtree's node count.
func check(n *node, low, high *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if low != nil && n.value <= *low {
		return 0, fmt.Errorf("ordering violated at %d: not greater than %d", n.value, *low)
	}
	if high != nil && n.value >= *high {
		return 0, fmt.Errorf("ordering violated at %d: not less than %d", n.value, *high)
	}

	leftCount, err := check(n.left, low, &n.value)
	if err != nil {
		return 0, err
	}
	rightCount, err := check(n.right, &n.value, high)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("height wrong at %d: cached %d, actual %d", n.value, n.height, want)
	}
	if b := balanceFactor(n); b < -1 || b > 1 {
		return 0, fmt.Errorf("balance violated at %d: factor %+d", n.value, b)
	}
	return leftCount + rightCount + 1, nil
}
