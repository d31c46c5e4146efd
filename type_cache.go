// Copyright 2026 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protorecord

import (
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// builtType is a cached result of a successful build.
type builtType struct {
	messageType *MessageType
	mapping     *FieldNameMapping
}

// TypeCache memoizes builds so that records sharing a schema also share a
// message type. It is safe for concurrent use.
type TypeCache struct {
	builder *Builder
	cache   *lru.LRU[string, builtType]
}

// NewTypeCache returns a cache holding at most size built types. Entries
// expire after ttl; a ttl of zero means entries only leave the cache when
// evicted.
func NewTypeCache(builder *Builder, size int, ttl time.Duration) (*TypeCache, error) {
	if builder == nil {
		return nil, errors.New("builder cannot be nil")
	}
	if size <= 0 {
		return nil, errors.New("size must be positive")
	}
	return &TypeCache{
		builder: builder,
		cache:   lru.NewLRU[string, builtType](size, nil, ttl),
	}, nil
}

// Get returns the message type and mapping for the given schema, building
// them if no equal schema is cached. Failed builds are not cached.
func (c *TypeCache) Get(schema Schema) (*MessageType, *FieldNameMapping, error) {
	key := schema.Fingerprint()
	if entry, ok := c.cache.Get(key); ok {
		c.builder.config.Metrics.observeTypeCache(true)
		return entry.messageType, entry.mapping, nil
	}
	c.builder.config.Metrics.observeTypeCache(false)
	messageType, mapping, err := c.builder.Build(schema)
	if err != nil {
		return nil, nil, err
	}
	// Concurrent misses may both build; the last one added wins and the
	// other remains valid for its caller.
	c.cache.Add(key, builtType{messageType: messageType, mapping: mapping})
	return messageType, mapping, nil
}

// Len returns the number of cached types, including expired entries that
// have not yet been removed.
func (c *TypeCache) Len() int {
	return c.cache.Len()
}

// Purge removes every cached type.
func (c *TypeCache) Purge() {
	c.cache.Purge()
}
