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

// Package rediscache provides an implementation of protorecord.Cache
// that is backed by a Redis instance: https://redis.io/. Schemas saved
// through it are visible to every process that shares the instance.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bufbuild/protorecord"
	"github.com/gomodule/redigo/redis"
)

const defaultIdleTimeout = 4 * time.Minute

// Config represents the configuration parameters used to create a new
// Redis-backed cache.
type Config struct {
	// Required: the pool from which connections are taken.
	Client *redis.Pool
	// Added to every key.
	KeyPrefix string
	// If non-zero, saved entries expire after this long. Values under
	// a millisecond are treated as zero.
	Expiration time.Duration
}

// New creates a new Redis-backed cache with the given configuration.
func New(config Config) (protorecord.Cache, error) {
	if config.Client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if config.Expiration < 0 {
		return nil, fmt.Errorf("expiration (%v) cannot be negative", config.Expiration)
	}
	return (*cache)(&config), nil
}

// NewPool returns a connection pool that dials the server at the given
// address.
func NewPool(addr string) *redis.Pool {
	return &redis.Pool{
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", addr)
		},
		MaxIdle:     3,
		IdleTimeout: defaultIdleTimeout,
	}
}

type cache Config

func (c *cache) Load(ctx context.Context, key string) ([]byte, error) {
	conn, err := c.Client.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = conn.Close()
	}()
	data, err := redis.Bytes(redis.DoContext(conn, ctx, "get", c.KeyPrefix+key))
	if errors.Is(err, redis.ErrNil) {
		return nil, fmt.Errorf("%w: key %q", protorecord.ErrCacheMiss, c.KeyPrefix+key)
	}
	return data, err
}

func (c *cache) Save(ctx context.Context, key string, data []byte) error {
	conn, err := c.Client.GetContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	args := []any{c.KeyPrefix + key, data}
	if millis := c.Expiration.Milliseconds(); millis > 0 {
		args = append(args, "px", millis)
	}
	_, err = redis.DoContext(conn, ctx, "set", args...)
	return err
}
