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

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// Format names accepted by [ParseInputFormat] and [ParseOutputFormat].
const (
	FormatBinary = "binary"
	FormatJSON   = "json"
	FormatText   = "text"
)

// InputFormat provides the interface to supply a [Serializer] or
// [Converter] with an input encoding. The format is given the [Resolver]
// of the message type being decoded.
type InputFormat interface {
	WithResolver(Resolver) Unmarshaler
}

// Unmarshaler decodes bytes into a message.
type Unmarshaler interface {
	Unmarshal([]byte, proto.Message) error
}

// OutputFormat provides the interface to supply a [Serializer] or
// [Converter] with an output encoding. The format is given the [Resolver]
// of the message type being encoded.
type OutputFormat interface {
	WithResolver(Resolver) Marshaler
}

// Marshaler encodes a message into bytes.
type Marshaler interface {
	Marshal(proto.Message) ([]byte, error)
}

// ParseInputFormat returns the input format with the given name, using
// default options.
func ParseInputFormat(name string) (InputFormat, error) {
	switch name {
	case FormatBinary:
		return BinaryInputFormat(proto.UnmarshalOptions{}), nil
	case FormatJSON:
		return JSONInputFormat(protojson.UnmarshalOptions{}), nil
	case FormatText:
		return TextInputFormat(prototext.UnmarshalOptions{}), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", name)
	}
}

// ParseOutputFormat returns the output format with the given name. Binary
// output is deterministic and JSON output uses the field names of the
// built message rather than their camel-cased JSON names.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case FormatBinary:
		return BinaryOutputFormat(proto.MarshalOptions{Deterministic: true}), nil
	case FormatJSON:
		return JSONOutputFormat(protojson.MarshalOptions{UseProtoNames: true}), nil
	case FormatText:
		return TextOutputFormat(prototext.MarshalOptions{}), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

type binaryInputFormat struct {
	proto.UnmarshalOptions
}

// BinaryInputFormat returns an input format for the protobuf binary format.
func BinaryInputFormat(in proto.UnmarshalOptions) InputFormat {
	return binaryInputFormat{
		UnmarshalOptions: in,
	}
}

// WithResolver to supply binary input format with the message type's [Resolver].
func (x binaryInputFormat) WithResolver(in Resolver) Unmarshaler {
	x.Resolver = in
	return x
}

// BinaryOutputFormat returns an output format for the protobuf binary format.
func BinaryOutputFormat(in proto.MarshalOptions) OutputFormat {
	return outputFormatWithoutResolver{Marshaler: in}
}

type jsonInputFormat struct {
	protojson.UnmarshalOptions
}

// JSONInputFormat returns an input format for the protobuf JSON format.
func JSONInputFormat(in protojson.UnmarshalOptions) InputFormat {
	return jsonInputFormat{
		UnmarshalOptions: in,
	}
}

// WithResolver to supply JSON input format with the message type's [Resolver].
func (x jsonInputFormat) WithResolver(in Resolver) Unmarshaler {
	x.Resolver = in
	return x
}

type jsonOutputFormat struct {
	protojson.MarshalOptions
}

// JSONOutputFormat returns an output format for the protobuf JSON format.
func JSONOutputFormat(in protojson.MarshalOptions) OutputFormat {
	return jsonOutputFormat{
		MarshalOptions: in,
	}
}

// WithResolver to supply JSON output format with the message type's [Resolver].
func (x jsonOutputFormat) WithResolver(in Resolver) Marshaler {
	x.Resolver = in
	return x
}

type textInputFormat struct {
	prototext.UnmarshalOptions
}

// TextInputFormat returns an input format for the protobuf text format.
func TextInputFormat(in prototext.UnmarshalOptions) InputFormat {
	return textInputFormat{
		UnmarshalOptions: in,
	}
}

// WithResolver to supply text input format with the message type's [Resolver].
func (x textInputFormat) WithResolver(in Resolver) Unmarshaler {
	x.Resolver = in
	return x
}

type textOutputFormat struct {
	prototext.MarshalOptions
}

// TextOutputFormat returns an output format for the protobuf text format.
func TextOutputFormat(in prototext.MarshalOptions) OutputFormat {
	return textOutputFormat{
		MarshalOptions: in,
	}
}

// WithResolver to supply text output format with the message type's [Resolver].
func (x textOutputFormat) WithResolver(in Resolver) Marshaler {
	x.Resolver = in
	return x
}

type inputFormatWithoutResolver struct {
	Unmarshaler
}

// InputFormatWithoutResolver adapts an [Unmarshaler] that needs no resolver.
func InputFormatWithoutResolver(in Unmarshaler) InputFormat {
	return inputFormatWithoutResolver{
		Unmarshaler: in,
	}
}

// WithResolver to supply input format without resolver.
func (x inputFormatWithoutResolver) WithResolver(_ Resolver) Unmarshaler {
	return x
}

type outputFormatWithoutResolver struct {
	Marshaler
}

// OutputFormatWithoutResolver adapts a [Marshaler] that needs no resolver.
func OutputFormatWithoutResolver(in Marshaler) OutputFormat {
	return outputFormatWithoutResolver{
		Marshaler: in,
	}
}

// WithResolver to supply output format without resolver.
func (x outputFormatWithoutResolver) WithResolver(_ Resolver) Marshaler {
	return x
}
