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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateSchema(userSchema()))

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, ValidateSchema(nil), ErrEmptySchema)
		require.ErrorIs(t, ValidateSchema(Schema{}), ErrEmptySchema)
	})
	t.Run("missing type", func(t *testing.T) {
		t.Parallel()
		err := ValidateSchema(Schema{
			{Name: "name", Definition: FieldDefinition{Type: FieldTypeString}},
			{Name: "age"},
		})
		var missing *MissingTypeError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "age", missing.Field)
		assert.EqualError(t, err, `field "age" is missing required 'type' attribute`)
	})
	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		err := ValidateSchema(Schema{
			{Name: "tags", Definition: FieldDefinition{Type: "LIST"}},
		})
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "tags", unsupported.Field)
		assert.Equal(t, FieldType("LIST"), unsupported.Type)
		assert.Equal(t, SupportedFieldTypes(), unsupported.Supported)
		assert.EqualError(t, err,
			`field "tags" has unsupported type: LIST. Supported types are: BOOL, DOUBLE, INT64, STRING`)
	})
	t.Run("types are case sensitive", func(t *testing.T) {
		t.Parallel()
		err := ValidateSchema(Schema{
			{Name: "name", Definition: FieldDefinition{Type: "string"}},
		})
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
	})
	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()
		err := ValidateSchema(Schema{
			{Name: "name", Definition: FieldDefinition{Type: FieldTypeString}},
			{Name: "name", Definition: FieldDefinition{Type: FieldTypeInt64}},
		})
		var duplicate *DuplicateFieldError
		require.ErrorAs(t, err, &duplicate)
		assert.Equal(t, "name", duplicate.Field)
	})
	t.Run("first problem wins", func(t *testing.T) {
		t.Parallel()
		err := ValidateSchema(Schema{
			{Name: "a", Definition: FieldDefinition{Type: "LIST"}},
			{Name: "b"},
		})
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "a", unsupported.Field)
		var missing *MissingTypeError
		assert.False(t, errors.As(err, &missing))
	})
}

func TestValidateSchema_Handlers(t *testing.T) {
	t.Parallel()
	handlers := map[FieldType]fieldHandler{
		FieldTypeString: fieldHandlers[FieldTypeString],
	}
	err := validateSchema(userSchema(), handlers)
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "age", unsupported.Field)
	assert.Equal(t, []FieldType{FieldTypeString}, unsupported.Supported)
}

func TestSupportedFieldTypes(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]FieldType{FieldTypeBool, FieldTypeDouble, FieldTypeInt64, FieldTypeString},
		SupportedFieldTypes(),
	)
}
