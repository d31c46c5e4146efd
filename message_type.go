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
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// MessageType is a message type produced by [Builder.Build]. It is
// immutable and safe for concurrent use; each call to New returns an
// independent message.
type MessageType struct {
	messageType protoreflect.MessageType
	fileProto   *descriptorpb.FileDescriptorProto
	resolver    *resolver
	fields      map[protoreflect.Name]*messageField
}

// messageField ties a field descriptor to the handler that converts its
// values.
type messageField struct {
	desc    protoreflect.FieldDescriptor
	typ     FieldType
	handler fieldHandler
}

// Descriptor returns the descriptor of the built message.
func (t *MessageType) Descriptor() protoreflect.MessageDescriptor {
	return t.messageType.Descriptor()
}

// FullName returns the fully-qualified name of the built message. It
// includes the unique token of the build that created it.
func (t *MessageType) FullName() protoreflect.FullName {
	return t.messageType.Descriptor().FullName()
}

// Type returns the underlying dynamic message type.
func (t *MessageType) Type() protoreflect.MessageType {
	return t.messageType
}

// Resolver returns a [Resolver] that can resolve this type, and nothing
// else. It is suitable for use with the JSON and text formats.
func (t *MessageType) Resolver() Resolver {
	return t.resolver
}

// FileDescriptorProto returns a copy of the synthesized file that declares
// the message.
func (t *MessageType) FileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return proto.Clone(t.fileProto).(*descriptorpb.FileDescriptorProto) //nolint:forcetypeassert
}

// FieldType returns the schema type of the field with the given sanitized
// name.
func (t *MessageType) FieldType(name string) (FieldType, bool) {
	field, ok := t.fields[protoreflect.Name(name)]
	if !ok {
		return "", false
	}
	return field.typ, true
}

// New returns a new, empty message of this type.
func (t *MessageType) New() *Message {
	return &Message{typ: t, msg: t.messageType.New()}
}

func (t *MessageType) field(name string) (*messageField, error) {
	field, ok := t.fields[protoreflect.Name(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q in %s", ErrUnknownField, name, t.FullName())
	}
	return field, nil
}

// Message is a mutable instance of a [MessageType]. Fields are addressed
// by their sanitized names. A Message is not safe for concurrent use.
type Message struct {
	typ *MessageType
	msg protoreflect.Message
}

// Type returns the type of the message.
func (m *Message) Type() *MessageType {
	return m.typ
}

// Get returns the value of the named field, or its zero value if the field
// is not set. The result is a string, int64, bool or float64.
func (m *Message) Get(name string) (any, error) {
	field, err := m.typ.field(name)
	if err != nil {
		return nil, err
	}
	return field.handler.goValue(m.msg.Get(field.desc)), nil
}

// Has reports whether the named field is set.
func (m *Message) Has(name string) bool {
	field, err := m.typ.field(name)
	if err != nil {
		return false
	}
	return m.msg.Has(field.desc)
}

// Set stores value in the named field. A nil value clears the field. If
// the value's type does not match the field, a [*TypeMismatchError] is
// returned and the message is left unchanged.
func (m *Message) Set(name string, value any) error {
	field, err := m.typ.field(name)
	if err != nil {
		return err
	}
	if !m.set(field, value) {
		return &TypeMismatchError{Field: name, Expected: field.typ, Actual: fmt.Sprintf("%T", value)}
	}
	return nil
}

func (m *Message) set(field *messageField, value any) bool {
	if value == nil {
		m.msg.Clear(field.desc)
		return true
	}
	v, ok := field.handler.valueOf(value)
	if !ok {
		return false
	}
	m.msg.Set(field.desc, v)
	return true
}

// Marshal encodes the message using the protobuf binary format. Output is
// deterministic for a given set of field values.
func (m *Message) Marshal() ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(m.msg.Interface())
}

// Unmarshal replaces the contents of the message with the decoded data.
func (m *Message) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m.msg.Interface())
}

// Interface returns the message as a proto.Message.
func (m *Message) Interface() proto.Message {
	return m.msg.Interface()
}

// ProtoReflect returns the reflective view of the message.
func (m *Message) ProtoReflect() protoreflect.Message {
	return m.msg
}
