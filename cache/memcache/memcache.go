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

// Package memcache provides an implementation of protorecord.Cache
// that is backed by a memcached instance: https://memcached.org/.
package memcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/bufbuild/protorecord"
)

// memcached rejects keys longer than this.
const maxKeyLength = 250

// Config represents the configuration parameters used to create a new
// memcached-backed cache.
type Config struct {
	// Required: the client used to reach the servers.
	Client *memcache.Client
	// Added to every key.
	KeyPrefix string
	// If non-zero, saved entries expire after this many seconds.
	ExpirationSeconds int32
}

// New creates a new memcached-backed cache with the given configuration.
func New(config Config) (protorecord.Cache, error) {
	if config.Client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if config.ExpirationSeconds < 0 {
		return nil, fmt.Errorf("expiration seconds (%d) cannot be negative", config.ExpirationSeconds)
	}
	return (*cache)(&config), nil
}

type cache Config

func (c *cache) Load(_ context.Context, key string) ([]byte, error) {
	fullKey, err := c.key(key)
	if err != nil {
		return nil, err
	}
	item, err := c.Client.Get(fullKey)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, fmt.Errorf("%w: key %q", protorecord.ErrCacheMiss, fullKey)
	} else if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (c *cache) Save(_ context.Context, key string, data []byte) error {
	fullKey, err := c.key(key)
	if err != nil {
		return err
	}
	return c.Client.Set(&memcache.Item{
		Key:        fullKey,
		Value:      data,
		Expiration: c.ExpirationSeconds,
	})
}

func (c *cache) key(key string) (string, error) {
	fullKey := c.KeyPrefix + key
	if len(fullKey) > maxKeyLength {
		return "", fmt.Errorf("key %q is longer than %d bytes", fullKey, maxKeyLength)
	}
	return fullKey, nil
}
