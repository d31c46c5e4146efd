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
)

// Cache is a key-value store that a [SchemaStore] keeps schemas in, so that
// processes producing and consuming records can agree on a schema without
// passing it around. Implementations for redis, memcached and the local
// file system are in sub-packages of cache. Cache can be used from multiple
// goroutines and thus must be thread-safe.
type Cache interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
