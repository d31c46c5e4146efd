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
	"crypto/sha1" //nolint:gosec // used for naming, not security
	"encoding/hex"
	"strings"
)

const hashSuffixLen = 8

// SanitizeFieldName maps an arbitrary field name onto a valid protobuf
// identifier. Every character other than an ASCII letter or digit becomes an
// underscore, names starting with a digit get an "f_" prefix, and a suffix
// derived from the SHA-1 of the original name is always appended. A name
// with nothing left after masking becomes "field_" followed by that hash.
//
// The result is deterministic. Two distinct names only map to the same
// identifier if the first 8 hex digits of their SHA-1 digests collide.
func SanitizeFieldName(original string) string {
	suffix := shortHash(original)
	var sb strings.Builder
	sb.Grow(len(original) + len(suffix) + 3)
	for _, r := range original {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	masked := sb.String()
	if masked == "" {
		return "field_" + suffix
	}
	if masked[0] >= '0' && masked[0] <= '9' {
		masked = "f_" + masked
	}
	return masked + "_" + suffix
}

func shortHash(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec
	return hex.EncodeToString(sum[:])[:hashSuffixLen]
}
