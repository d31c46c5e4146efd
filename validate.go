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

// ValidateSchema checks that schema is non-empty, that field names are
// unique and that every field has a supported type. It returns
// [ErrEmptySchema], a [*DuplicateFieldError], a [*MissingTypeError] or an
// [*UnsupportedTypeError] for the first problem found.
func ValidateSchema(schema Schema) error {
	return validateSchema(schema, fieldHandlers)
}

func validateSchema(schema Schema, handlers map[FieldType]fieldHandler) error {
	if len(schema) == 0 {
		return ErrEmptySchema
	}
	seen := make(map[string]struct{}, len(schema))
	for _, field := range schema {
		if _, ok := seen[field.Name]; ok {
			return &DuplicateFieldError{Field: field.Name}
		}
		seen[field.Name] = struct{}{}
		if field.Definition.Type == "" {
			return &MissingTypeError{Field: field.Name}
		}
		if _, ok := handlers[field.Definition.Type]; !ok {
			return &UnsupportedTypeError{
				Field:     field.Name,
				Type:      field.Definition.Type,
				Supported: sortedFieldTypes(handlers),
			}
		}
	}
	return nil
}
