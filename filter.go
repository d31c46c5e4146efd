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
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Filters is a slice of filters. When there is more than one element, they
// are applied in order. In other words, the first filter is evaluated first.
// The result of that is then provided as input to the second, and so on.
type Filters []Filter

func (f Filters) do(message protoreflect.Message) protoreflect.Message {
	for _, filter := range f {
		message = filter(message)
	}
	return message
}

// Filter provides a way for user-provided logic to alter a populated
// message before it is encoded. It can return a derived message, or it can
// mutate the given message and return it.
type Filter func(protoreflect.Message) protoreflect.Message

// Redact returns a Filter that clears every set field for which the given
// predicate returns true. This can be used to keep sensitive values out of
// encoded records.
func Redact(predicate func(protoreflect.FieldDescriptor) bool) Filter {
	return func(msg protoreflect.Message) protoreflect.Message {
		msg.Range(func(field protoreflect.FieldDescriptor, _ protoreflect.Value) bool {
			if predicate(field) {
				msg.Clear(field)
			}
			return true
		})
		return msg
	}
}

// RedactFields returns a Filter that clears the fields with the given
// original names. Names that are not in the mapping are ignored.
func RedactFields(mapping *FieldNameMapping, originals ...string) Filter {
	names := make(map[protoreflect.Name]struct{}, len(originals))
	for _, original := range originals {
		if sanitized, ok := mapping.Lookup(original); ok {
			names[protoreflect.Name(sanitized)] = struct{}{}
		}
	}
	return Redact(func(field protoreflect.FieldDescriptor) bool {
		_, ok := names[field.Name()]
		return ok
	})
}
