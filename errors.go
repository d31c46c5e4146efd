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
	"fmt"
	"strings"
)

var (
	// ErrEmptySchema is returned when a schema has no fields.
	ErrEmptySchema = errors.New("schema cannot be empty")
	// ErrUnknownField is returned when a [Message] is asked for a field
	// that its type does not declare.
	ErrUnknownField = errors.New("unknown field")
	// ErrCacheMiss is returned, possibly wrapped, by [Cache] implementations
	// when no data is stored under a key.
	ErrCacheMiss = errors.New("cache miss")
)

// MissingTypeError indicates that a field definition has no type.
type MissingTypeError struct {
	Field string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("field %q is missing required 'type' attribute", e.Field)
}

// UnsupportedTypeError indicates that a field definition names a type
// that has no registered handler.
type UnsupportedTypeError struct {
	Field     string
	Type      FieldType
	Supported []FieldType
}

func (e *UnsupportedTypeError) Error() string {
	supported := make([]string, len(e.Supported))
	for i, typ := range e.Supported {
		supported[i] = string(typ)
	}
	return fmt.Sprintf("field %q has unsupported type: %s. Supported types are: %s",
		e.Field, e.Type, strings.Join(supported, ", "))
}

// DuplicateFieldError indicates that a schema names the same field twice.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field %q is defined more than once", e.Field)
}

// FieldCreationError is returned by [Builder.Build] when a single field
// could not be added to the message descriptor. The build is aborted.
type FieldCreationError struct {
	Field string
	Cause error
}

func (e *FieldCreationError) Error() string {
	return fmt.Sprintf("error creating field %q: %v", e.Field, e.Cause)
}

func (e *FieldCreationError) Unwrap() error {
	return e.Cause
}

// MessageBuildError is returned by [Builder.Build] when the assembled
// descriptor could not be compiled or registered.
type MessageBuildError struct {
	Cause error
}

func (e *MessageBuildError) Error() string {
	return fmt.Sprintf("failed to build protobuf message: %v", e.Cause)
}

func (e *MessageBuildError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError is returned when a record value cannot be stored in
// the field it is mapped to. Actual is the Go type of the offending value.
type TypeMismatchError struct {
	Field    string
	Expected FieldType
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q expects %s but got value of type %s", e.Field, e.Expected, e.Actual)
}
