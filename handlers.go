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
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// fieldHandler adds fields of one FieldType to a message descriptor and
// converts record values to and from that field's representation.
type fieldHandler interface {
	appendField(msg *descriptorpb.DescriptorProto, number protoreflect.FieldNumber, name protoreflect.Name) error
	// valueOf converts a record value. It returns false if the value's
	// type cannot be stored in the field.
	valueOf(v any) (protoreflect.Value, bool)
	goValue(v protoreflect.Value) any
}

// To support another type, add a handler and an entry here.
var fieldHandlers = map[FieldType]fieldHandler{ //nolint:gochecknoglobals
	FieldTypeString: stringHandler{scalarHandler{descriptorpb.FieldDescriptorProto_TYPE_STRING}},
	FieldTypeInt64:  int64Handler{scalarHandler{descriptorpb.FieldDescriptorProto_TYPE_INT64}},
	FieldTypeBool:   boolHandler{scalarHandler{descriptorpb.FieldDescriptorProto_TYPE_BOOL}},
	FieldTypeDouble: doubleHandler{scalarHandler{descriptorpb.FieldDescriptorProto_TYPE_DOUBLE}},
}

// SupportedFieldTypes returns the field types that can appear in a schema,
// in sorted order.
func SupportedFieldTypes() []FieldType {
	return sortedFieldTypes(fieldHandlers)
}

func sortedFieldTypes(handlers map[FieldType]fieldHandler) []FieldType {
	types := make([]FieldType, 0, len(handlers))
	for typ := range handlers {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

type scalarHandler struct {
	typ descriptorpb.FieldDescriptorProto_Type
}

func (h scalarHandler) appendField(msg *descriptorpb.DescriptorProto, number protoreflect.FieldNumber, name protoreflect.Name) error {
	if !protowire.Number(number).IsValid() {
		return fmt.Errorf("field number %d is not a valid field number", number)
	}
	if !name.IsValid() {
		return fmt.Errorf("%q is not a valid field name", name)
	}
	msg.Field = append(msg.Field, &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(string(name)),
		Number: proto.Int32(int32(number)),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   h.typ.Enum(),
	})
	return nil
}

func (h scalarHandler) goValue(v protoreflect.Value) any {
	return v.Interface()
}

type stringHandler struct {
	scalarHandler
}

func (stringHandler) valueOf(v any) (protoreflect.Value, bool) {
	if _, ok := v.(json.Number); ok {
		return protoreflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return protoreflect.Value{}, false
	}
	return protoreflect.ValueOfString(rv.String()), true
}

type int64Handler struct {
	scalarHandler
}

func (int64Handler) valueOf(v any) (protoreflect.Value, bool) {
	if num, ok := v.(json.Number); ok {
		i, err := num.Int64()
		if err != nil {
			return protoreflect.Value{}, false
		}
		return protoreflect.ValueOfInt64(i), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return protoreflect.ValueOfInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return protoreflect.Value{}, false
		}
		return protoreflect.ValueOfInt64(int64(u)), true
	default:
		return protoreflect.Value{}, false
	}
}

type boolHandler struct {
	scalarHandler
}

func (boolHandler) valueOf(v any) (protoreflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return protoreflect.Value{}, false
	}
	return protoreflect.ValueOfBool(rv.Bool()), true
}

type doubleHandler struct {
	scalarHandler
}

func (doubleHandler) valueOf(v any) (protoreflect.Value, bool) {
	if num, ok := v.(json.Number); ok {
		f, err := num.Float64()
		if err != nil {
			return protoreflect.Value{}, false
		}
		return protoreflect.ValueOfFloat64(f), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return protoreflect.ValueOfFloat64(rv.Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return protoreflect.ValueOfFloat64(float64(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return protoreflect.ValueOfFloat64(float64(rv.Uint())), true
	default:
		return protoreflect.Value{}, false
	}
}
