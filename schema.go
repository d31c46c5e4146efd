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
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FieldType is the abstract type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "STRING"
	FieldTypeInt64  FieldType = "INT64"
	FieldTypeBool   FieldType = "BOOL"
	FieldTypeDouble FieldType = "DOUBLE"
)

const typeKey = "type"

// FieldDefinition describes a single schema field. An empty Type means the
// definition did not specify one.
type FieldDefinition struct {
	Type FieldType
}

// Field is a named entry in a [Schema].
type Field struct {
	Name       string
	Definition FieldDefinition
}

// Schema is an ordered list of fields. The order determines the field
// numbers assigned by [Builder.Build].
//
// In YAML (and therefore JSON) a schema is written as a mapping from field
// name to definition; the order of the keys is preserved:
//
//	name:   {type: STRING}
//	age:    {type: INT64}
//	active: {type: BOOL}
type Schema []Field

// ParseSchema decodes a schema from YAML or JSON. It does not validate the
// result; see [ValidateSchema].
func ParseSchema(data []byte) (Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys other than "type" in a
// field definition are ignored.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Tag == "!!null" {
		*s = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: schema must be a mapping of field names to definitions", value.Line)
	}
	fields := make(Schema, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, defNode := value.Content[i], value.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: field name must be a scalar", keyNode.Line)
		}
		field := Field{Name: keyNode.Value}
		switch {
		case defNode.Tag == "!!null":
		case defNode.Kind == yaml.MappingNode:
			for j := 0; j+1 < len(defNode.Content); j += 2 {
				if defNode.Content[j].Value != typeKey {
					continue
				}
				typeNode := defNode.Content[j+1]
				if typeNode.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: type of field %q must be a scalar", typeNode.Line, field.Name)
				}
				field.Definition.Type = FieldType(typeNode.Value)
			}
		default:
			return fmt.Errorf("line %d: definition of field %q must be a mapping", defNode.Line, field.Name)
		}
		fields = append(fields, field)
	}
	*s = fields
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting fields in schema order.
func (s Schema) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range s {
		def := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		if field.Definition.Type != "" {
			def.Content = append(def.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: typeKey},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(field.Definition.Type)},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name},
			def,
		)
	}
	return root, nil
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, field := range s {
		names[i] = field.Name
	}
	return names
}

// Fingerprint returns a hex-encoded SHA-256 digest of the ordered field
// names and types. Schemas with the same fingerprint build equivalent
// message types.
func (s Schema) Fingerprint() string {
	sha := sha256.New()
	for _, field := range s {
		sha.Write([]byte(field.Name))
		sha.Write([]byte{0})
		sha.Write([]byte(field.Definition.Type))
		sha.Write([]byte{0})
	}
	return hex.EncodeToString(sha.Sum(nil))
}
