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
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cache := newMapCache()
	store := &SchemaStore{Cache: cache, KeyPrefix: "schemas/"}

	_, err := store.Load(ctx, "users")
	require.ErrorIs(t, err, ErrCacheMiss)

	schema := Schema{
		{Name: "zeta", Definition: FieldDefinition{Type: FieldTypeString}},
		{Name: "user-name", Definition: FieldDefinition{Type: FieldTypeString}},
		{Name: "alpha", Definition: FieldDefinition{Type: FieldTypeDouble}},
	}
	require.NoError(t, store.Save(ctx, "users", schema))
	assert.Equal(t, "zeta: {type: STRING}\nuser-name: {type: STRING}\nalpha: {type: DOUBLE}\n",
		string(cache.data["schemas/users"]))

	loaded, err := store.Load(ctx, "users")
	require.NoError(t, err)
	if diff := cmp.Diff(schema, loaded); diff != "" {
		t.Errorf("round-trip failure (-want +got):\n%s", diff)
	}

	// the loaded schema builds the same field names
	_, wantMapping, err := Build(schema)
	require.NoError(t, err)
	_, gotMapping, err := Build(loaded)
	require.NoError(t, err)
	assert.Equal(t, wantMapping.Map(), gotMapping.Map())
}

func TestSchemaStore_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := (&SchemaStore{}).Load(ctx, "users")
	require.ErrorContains(t, err, "schema store has no cache")

	cache := newMapCache()
	store := &SchemaStore{Cache: cache}
	require.ErrorContains(t, store.Save(ctx, "", userSchema()), "schema name cannot be empty")
	require.ErrorIs(t, store.Save(ctx, "empty", nil), ErrEmptySchema)
	assert.Empty(t, cache.data)

	cache.data["corrupt"] = []byte("[1, 2")
	_, err = store.Load(ctx, "corrupt")
	require.ErrorContains(t, err, `failed to decode schema "corrupt"`)

	cache.data["invalid"] = []byte("a: {type: LIST}")
	_, err = store.Load(ctx, "invalid")
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)

	failing := &SchemaStore{Cache: failingCache{}}
	err = failing.Save(ctx, "users", userSchema())
	require.ErrorContains(t, err, `failed to save schema "users": cache unavailable`)
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) Load(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrCacheMiss, key)
	}
	return data, nil
}

func (c *mapCache) Save(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

type failingCache struct{}

func (failingCache) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("cache unavailable")
}

func (failingCache) Save(context.Context, string, []byte) error {
	return errors.New("cache unavailable")
}
