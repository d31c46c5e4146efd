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

	"github.com/pkg/errors"
)

// Converter re-encodes serialized records of a built message type from one
// format to another.
type Converter struct {
	// MessageType is the type of the records being converted.
	MessageType *MessageType
	// InputFormat handles unmarshaling bytes from the expected input format.
	// You can use [BinaryInputFormat], [JSONInputFormat] or [TextInputFormat],
	// or supply your own format implementing [InputFormat].
	InputFormat InputFormat
	// OutputFormat handles marshaling to bytes in the desired output format.
	// You can use [BinaryOutputFormat], [JSONOutputFormat] or
	// [TextOutputFormat], or supply your own format implementing
	// [OutputFormat].
	OutputFormat OutputFormat
	// Filters are applied to the decoded message before it is re-encoded.
	Filters Filters
}

// ConvertMessage converts a serialized record from the input format to the
// output format.
func (c *Converter) ConvertMessage(inputData []byte) ([]byte, error) {
	if c.MessageType == nil {
		return nil, errors.New("converter has no message type")
	}
	msg := c.MessageType.New()
	resolver := c.MessageType.Resolver()
	if err := c.InputFormat.WithResolver(resolver).Unmarshal(inputData, msg.Interface()); err != nil {
		return nil, fmt.Errorf("input_data cannot be unmarshaled to %s in %s: %w", c.MessageType.FullName(), c.InputFormat, err)
	}

	out := c.Filters.do(msg.ProtoReflect())

	data, err := c.OutputFormat.WithResolver(resolver).Marshal(out.Interface())
	if err != nil {
		return nil, errors.Wrapf(err, "message cannot be marshaled to %s", c.OutputFormat)
	}
	return data, nil
}
