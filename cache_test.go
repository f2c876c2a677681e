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

package main

import (
	"testing"
	"time"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache(renderCacheExpiration)
	view := "traversal:in"
	rendered := "[1 2 3]"

	// Initially, GetRender should report a miss.
	if got, ok := GetRender(c, view); ok || got != "" {
		t.Errorf("GetRender(%q) = %q, %v; want miss", view, got, ok)
	}

	CacheRender(c, view, rendered)

	if got, ok := GetRender(c, view); !ok || got != rendered {
		t.Errorf("GetRender(%q) = %q, %v; want %q", view, got, ok, rendered)
	}

	InvalidateRenders(c)
	if _, ok := GetRender(c, view); ok {
		t.Errorf("GetRender(%q) hit after InvalidateRenders", view)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewRenderCache(100 * time.Millisecond)
	view := "tree"

	CacheRender(c, view, "|------+ 1 h=1 +0")

	if _, ok := GetRender(c, view); !ok {
		t.Errorf("GetRender(%q) missed right after caching", view)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRender(c, view); ok {
		t.Errorf("After expiration, GetRender(%q) = %q; want miss", view, got)
	}
}
