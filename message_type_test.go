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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestMessage_GetSet(t *testing.T) {
	t.Parallel()
	messageType, mapping, err := Build(userSchema())
	require.NoError(t, err)
	name, _ := mapping.Lookup("name")
	age, _ := mapping.Lookup("age")

	msg := messageType.New()
	assert.Same(t, messageType, msg.Type())
	got, err := msg.Get(name)
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.False(t, msg.Has(name))

	require.NoError(t, msg.Set(name, "Jan"))
	require.NoError(t, msg.Set(age, int32(30)))
	got, err = msg.Get(age)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)

	// explicit presence: a zero value is still set
	require.NoError(t, msg.Set(name, ""))
	assert.True(t, msg.Has(name))

	// nil clears
	require.NoError(t, msg.Set(name, nil))
	assert.False(t, msg.Has(name))

	err = msg.Set(age, "thirty")
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, age, mismatch.Field)
	got, err = msg.Get(age)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got, "failed set must leave the message unchanged")

	_, err = msg.Get("name")
	require.ErrorIs(t, err, ErrUnknownField)
	require.ErrorIs(t, msg.Set("name", "Jan"), ErrUnknownField)
	assert.False(t, msg.Has("name"))
	_, ok := messageType.FieldType("name")
	assert.False(t, ok)
}

func TestMessage_Independent(t *testing.T) {
	t.Parallel()
	messageType, mapping, err := Build(userSchema())
	require.NoError(t, err)
	name, _ := mapping.Lookup("name")

	first, second := messageType.New(), messageType.New()
	require.NoError(t, first.Set(name, "first"))
	require.NoError(t, second.Set(name, "second"))
	got, err := first.Get(name)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestMessage_MarshalUnmarshal(t *testing.T) {
	t.Parallel()
	messageType, mapping, err := Build(userSchema())
	require.NoError(t, err)
	msg := messageType.New()
	for original, value := range map[string]any{"name": "Jan", "age": 30, "active": true, "score": 95.5} {
		sanitized, _ := mapping.Lookup(original)
		require.NoError(t, msg.Set(sanitized, value))
	}
	data, err := msg.Marshal()
	require.NoError(t, err)

	clone := messageType.New()
	require.NoError(t, clone.Unmarshal(data))
	if diff := cmp.Diff(msg.Interface(), clone.Interface(), protocmp.Transform()); diff != "" {
		t.Errorf("round-trip failure (-want +got):\n%s", diff)
	}
	assert.Equal(t, messageType.Descriptor(), clone.ProtoReflect().Descriptor())
	assert.Equal(t, messageType.Type(), clone.ProtoReflect().Type())
}
