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

// Package cachetesting holds the checks that every protorecord.Cache
// implementation must pass.
package cachetesting

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/bufbuild/protorecord"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// RunSimpleCacheTests saves and loads random values under a few keys and
// returns what was stored, keyed by cache key, so callers can inspect the
// backing store.
//
//nolint:revive // okay that ctx is second; prefer t to be first
func RunSimpleCacheTests(t *testing.T, ctx context.Context, cache protorecord.Cache) map[string][]byte {
	t.Helper()

	// Values are random so that concurrent tests sharing a backend cannot
	// satisfy each other's expectations.
	const (
		keyFoo   = "foo"
		keyBar   = "bar"
		keyEmpty = ""
	)

	entries := make(map[string][]byte, 3)
	for _, k := range []string{keyFoo, keyBar, keyEmpty} {
		val := make([]byte, 100)
		_, err := rand.Read(val)
		require.NoError(t, err)
		entries[k] = val
	}
	valFoo, valBar, valEmpty := entries[keyFoo], entries[keyBar], entries[keyEmpty]

	// nothing stored yet
	_, err := cache.Load(ctx, keyFoo)
	require.ErrorIs(t, err, protorecord.ErrCacheMiss)
	err = cache.Save(ctx, keyFoo, valFoo)
	require.NoError(t, err)
	loaded, err := cache.Load(ctx, keyFoo)
	require.NoError(t, err)
	require.Equal(t, valFoo, loaded)

	_, err = cache.Load(ctx, keyBar)
	require.ErrorIs(t, err, protorecord.ErrCacheMiss)
	err = cache.Save(ctx, keyBar, valBar)
	require.NoError(t, err)
	loaded, err = cache.Load(ctx, keyBar)
	require.NoError(t, err)
	require.Equal(t, valBar, loaded)

	// first key unchanged
	loaded, err = cache.Load(ctx, keyFoo)
	require.NoError(t, err)
	require.Equal(t, valFoo, loaded)

	err = cache.Save(ctx, keyEmpty, valEmpty)
	require.NoError(t, err)
	loaded, err = cache.Load(ctx, keyEmpty)
	require.NoError(t, err)
	require.Equal(t, valEmpty, loaded)

	return entries
}

// RunSchemaStoreTests stores a schema through a protorecord.SchemaStore
// backed by cache and checks that it loads back with its field order
// intact. It returns the cache key that was used.
//
//nolint:revive // okay that ctx is second; prefer t to be first
func RunSchemaStoreTests(t *testing.T, ctx context.Context, cache protorecord.Cache) string {
	t.Helper()

	suffix := make([]byte, 8)
	_, err := rand.Read(suffix)
	require.NoError(t, err)
	name := "users-" + hex.EncodeToString(suffix)

	store := &protorecord.SchemaStore{Cache: cache, KeyPrefix: "schema:"}
	_, err = store.Load(ctx, name)
	require.ErrorIs(t, err, protorecord.ErrCacheMiss)

	schema := protorecord.Schema{
		{Name: "user-name", Definition: protorecord.FieldDefinition{Type: protorecord.FieldTypeString}},
		{Name: "age", Definition: protorecord.FieldDefinition{Type: protorecord.FieldTypeInt64}},
		{Name: "123field", Definition: protorecord.FieldDefinition{Type: protorecord.FieldTypeDouble}},
		{Name: "active", Definition: protorecord.FieldDefinition{Type: protorecord.FieldTypeBool}},
	}
	require.NoError(t, store.Save(ctx, name, schema))
	loaded, err := store.Load(ctx, name)
	require.NoError(t, err)
	if diff := cmp.Diff(schema, loaded); diff != "" {
		t.Errorf("loaded schema differs from saved (-want +got):\n%s", diff)
	}
	return store.KeyPrefix + name
}
