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
	"encoding/hex"
	"fmt"
	"log"
)

var schemaData = []byte(`
name:   {type: STRING}
age:    {type: INT64}
active: {type: BOOL}
score:  {type: DOUBLE}
`)

func Example() {
	schema, err := ParseSchema(schemaData)
	if err != nil {
		log.Fatalf("failed to parse schema: %v", err)
		return
	}
	messageType, mapping, err := Build(schema)
	if err != nil {
		log.Fatalf("failed to build message type: %v", err)
		return
	}
	mapping.Range(func(original, sanitized string) bool {
		fmt.Printf("%s -> %s\n", original, sanitized)
		return true
	})
	data, err := Serialize(messageType, mapping, Record{
		"name":   "Jan Kowalski",
		"age":    30,
		"active": true,
		"score":  95.5,
	})
	if err != nil {
		log.Fatalf("failed to serialize record: %v", err)
		return
	}
	fmt.Printf("Serialized record: 0x%s\n", hex.EncodeToString(data))
	// Output:
	// name -> name_6ae99955
	// age -> age_5dc56b9a
	// active -> active_2bb6b986
	// score -> score_75ebcb36
	// Serialized record: 0x0a0c4a616e204b6f77616c736b69101e1801210000000000e05740
}
