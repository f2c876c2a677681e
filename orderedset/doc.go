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

// Package orderedset provides an ordered set of unique integers backed by an
// AVL balanced binary search tree.
//
// Contains, Insert and Remove run in O(log n) whatever the insertion order.
// Duplicate inserts and removals of missing values are silent no-ops.
//
// Note: a Set is not safe for concurrent use. Either access it from a single
// goroutine or guard every call with one sync.Mutex.
//
// Minimum and Maximum return MinSentinel and MaxSentinel on an empty set.
// A set that really stores one of those values cannot be told apart from an
// empty one through these two methods; use Min and Max when that matters.
package orderedset
