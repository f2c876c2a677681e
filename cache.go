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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered views are cheap to rebuild, keep them for 30 minutes at most
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree views and traversals
func NewRenderCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, renderCacheCleanup)
}

func CacheRender(c *cache.Cache, view string, rendered string) {
	c.Set(view, rendered, cache.DefaultExpiration)
}

func GetRender(c *cache.Cache, view string) (string, bool) {
	val, ok := c.Get(view)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// InvalidateRenders drops every cached view; called after each mutation
func InvalidateRenders(c *cache.Cache) {
	c.Flush()
}
