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

// FieldNameMapping maps original schema field names to the sanitized
// identifiers used in the built message. It is immutable and preserves
// schema order.
type FieldNameMapping struct {
	originals []string
	sanitized map[string]string
}

func newFieldNameMapping(size int) *FieldNameMapping {
	return &FieldNameMapping{
		originals: make([]string, 0, size),
		sanitized: make(map[string]string, size),
	}
}

func (m *FieldNameMapping) add(original, sanitized string) {
	m.originals = append(m.originals, original)
	m.sanitized[original] = sanitized
}

// Lookup returns the sanitized name for the given original field name.
func (m *FieldNameMapping) Lookup(original string) (string, bool) {
	sanitized, ok := m.sanitized[original]
	return sanitized, ok
}

// Len returns the number of mapped fields.
func (m *FieldNameMapping) Len() int {
	return len(m.originals)
}

// Originals returns the original field names in schema order.
func (m *FieldNameMapping) Originals() []string {
	return append([]string(nil), m.originals...)
}

// Range calls f for each field in schema order until f returns false.
func (m *FieldNameMapping) Range(f func(original, sanitized string) bool) {
	for _, original := range m.originals {
		if !f(original, m.sanitized[original]) {
			return
		}
	}
}

// Map returns a copy of the mapping as a Go map.
func (m *FieldNameMapping) Map() map[string]string {
	result := make(map[string]string, len(m.sanitized))
	for k, v := range m.sanitized {
		result[k] = v
	}
	return result
}
