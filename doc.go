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

// Package protorecord builds protobuf message types at runtime from a flat,
// declarative schema and serializes loosely-typed records against them.
//
// A [Schema] is an ordered list of fields, each naming one of the supported
// scalar types: STRING, INT64, BOOL or DOUBLE. [Build] validates the schema,
// maps every field name onto a legal protobuf identifier (see
// [SanitizeFieldName]), assigns field numbers in schema order starting at 1,
// and compiles the result into a [MessageType]. The [FieldNameMapping]
// returned alongside it records which identifier each original name became.
//
// Records are plain Go maps. [Serialize] copies the values for known fields
// into a fresh message and encodes it using the standard protobuf binary
// format. Unknown keys are ignored and missing keys keep their zero value:
//
//	schema := protorecord.Schema{
//		{Name: "name", Definition: protorecord.FieldDefinition{Type: protorecord.FieldTypeString}},
//		{Name: "age", Definition: protorecord.FieldDefinition{Type: protorecord.FieldTypeInt64}},
//	}
//	messageType, mapping, err := protorecord.Build(schema)
//	if err != nil {
//		return err
//	}
//	data, err := protorecord.Serialize(messageType, mapping, protorecord.Record{"name": "Jan", "age": 30})
//
// Every build registers its descriptor into a private registry under a
// package name carrying a unique token, so builds never collide with each
// other or with the global protobuf registry and may run concurrently.
package protorecord
