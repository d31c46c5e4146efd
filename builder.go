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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Builder turns schemas into message types. A Builder is safe for
// concurrent use.
type Builder struct {
	config   BuilderConfig
	handlers map[FieldType]fieldHandler
	// newToken returns the token that makes each build's package unique.
	newToken func() string
}

// NewBuilder creates a new [Builder] for the given [BuilderConfig]. A nil
// config uses the defaults. A non-nil error is returned if the
// configuration is not valid.
func NewBuilder(config *BuilderConfig) (*Builder, error) {
	if config == nil {
		config = &BuilderConfig{}
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Builder{
		config:   config.withDefaults(),
		handlers: fieldHandlers,
		newToken: buildToken,
	}, nil
}

// Build validates the schema and builds a message type from it, using a
// [Builder] with the default configuration.
func Build(schema Schema) (*MessageType, *FieldNameMapping, error) {
	builder, err := NewBuilder(nil)
	if err != nil {
		return nil, nil, err
	}
	return builder.Build(schema)
}

// Build validates the schema and builds a message type from it.
//
// Fields are numbered from 1 in schema order and named using
// [SanitizeFieldName]. The returned mapping records the name given to each
// field. Validation errors are returned as-is; a failure to add a specific
// field is returned as a [*FieldCreationError], and a failure to compile
// the assembled descriptor as a [*MessageBuildError].
func (b *Builder) Build(schema Schema) (_ *MessageType, _ *FieldNameMapping, err error) {
	start := time.Now()
	defer func() {
		b.config.Metrics.observeBuild(start, len(schema), err)
	}()
	if err := validateSchema(schema, b.handlers); err != nil {
		return nil, nil, err
	}

	msgProto := &descriptorpb.DescriptorProto{
		Name: proto.String(b.config.MessageName),
	}
	mapping := newFieldNameMapping(len(schema))
	fieldTypes := make(map[protoreflect.Name]FieldType, len(schema))
	var fieldNum protoreflect.FieldNumber
	for _, field := range schema {
		fieldNum++
		sanitized := protoreflect.Name(SanitizeFieldName(field.Name))
		if err := b.addField(msgProto, fieldNum, sanitized, field.Definition.Type, fieldTypes); err != nil {
			return nil, nil, &FieldCreationError{Field: field.Name, Cause: err}
		}
		fieldTypes[sanitized] = field.Definition.Type
		mapping.add(field.Name, string(sanitized))
	}

	packageName := b.config.PackageName + "." + b.newToken()
	fileProto := &descriptorpb.FileDescriptorProto{
		Name:        proto.String(b.config.FileName),
		Package:     proto.String(packageName),
		Syntax:      proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{msgProto},
	}
	messageType, err := b.compile(fileProto, fieldTypes)
	if err != nil {
		return nil, nil, &MessageBuildError{Cause: err}
	}
	b.config.Logger.WithFields(logrus.Fields{
		"message": messageType.FullName(),
		"fields":  len(schema),
	}).Debug("built message type")
	return messageType, mapping, nil
}

func (b *Builder) addField(
	msgProto *descriptorpb.DescriptorProto,
	number protoreflect.FieldNumber,
	name protoreflect.Name,
	typ FieldType,
	existing map[protoreflect.Name]FieldType,
) error {
	if _, ok := existing[name]; ok {
		return fmt.Errorf("sanitized name %q is already in use", name)
	}
	handler, ok := b.handlers[typ]
	if !ok {
		return fmt.Errorf("no handler registered for type %q", typ)
	}
	return handler.appendField(msgProto, number, name)
}

func (b *Builder) compile(fileProto *descriptorpb.FileDescriptorProto, fieldTypes map[protoreflect.Name]FieldType) (*MessageType, error) {
	res, err := newResolver(fileProto)
	if err != nil {
		return nil, err
	}
	fullName := protoreflect.FullName(fileProto.GetPackage()).Append(protoreflect.Name(b.config.MessageName))
	mt, err := res.FindMessageByName(fullName)
	if err != nil {
		return nil, fmt.Errorf("message %s not found after registration: %w", fullName, err)
	}
	fieldDescs := mt.Descriptor().Fields()
	fields := make(map[protoreflect.Name]*messageField, fieldDescs.Len())
	for i := 0; i < fieldDescs.Len(); i++ {
		fd := fieldDescs.Get(i)
		typ := fieldTypes[fd.Name()]
		fields[fd.Name()] = &messageField{desc: fd, typ: typ, handler: b.handlers[typ]}
	}
	return &MessageType{
		messageType: mt,
		fileProto:   fileProto,
		resolver:    res,
		fields:      fields,
	}, nil
}

// buildToken returns a package name component that is unique per call.
func buildToken() string {
	return "b" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
