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

package memcache

import (
	"context"
	"strings"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/require"
)

func TestMemcache_ConfigValidation(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.ErrorContains(t, err, "client cannot be nil")

	_, err = New(Config{Client: memcache.New("localhost:11211"), ExpirationSeconds: -1})
	require.ErrorContains(t, err, "cannot be negative")
}

func TestMemcache_KeyTooLong(t *testing.T) {
	t.Parallel()

	// no request is sent for an oversized key
	cache, err := New(Config{Client: memcache.New("localhost:0"), KeyPrefix: strings.Repeat("k", 200)})
	require.NoError(t, err)
	err = cache.Save(context.Background(), strings.Repeat("x", 51), []byte("data"))
	require.ErrorContains(t, err, "longer than 250 bytes")
	_, err = cache.Load(context.Background(), strings.Repeat("x", 51))
	require.ErrorContains(t, err, "longer than 250 bytes")
}
