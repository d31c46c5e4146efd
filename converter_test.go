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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestConverter_ConvertMessage(t *testing.T) {
	t.Parallel()
	messageType, mapping, err := Build(userSchema())
	require.NoError(t, err)
	message := messageType.New()
	for original, value := range map[string]any{"name": "abcdef", "age": 12345678, "active": true, "score": -0.25} {
		sanitized, _ := mapping.Lookup(original)
		require.NoError(t, message.Set(sanitized, value))
	}

	formats := []struct {
		name         string
		outputFormat OutputFormat
		inputFormat  InputFormat
	}{
		{
			name:         "binary",
			outputFormat: BinaryOutputFormat(proto.MarshalOptions{}),
			inputFormat:  BinaryInputFormat(proto.UnmarshalOptions{}),
		},
		{
			name:         "json",
			outputFormat: JSONOutputFormat(protojson.MarshalOptions{}),
			inputFormat:  JSONInputFormat(protojson.UnmarshalOptions{}),
		},
		{
			name:         "text",
			outputFormat: TextOutputFormat(prototext.MarshalOptions{}),
			inputFormat:  TextInputFormat(prototext.UnmarshalOptions{}),
		},
		{
			name:         "TextWithoutResolver",
			outputFormat: OutputFormatWithoutResolver(prototext.MarshalOptions{}),
			inputFormat:  InputFormatWithoutResolver(prototext.UnmarshalOptions{}),
		},
		{
			name:         "custom",
			outputFormat: marshalProtoJSONWithResolver{},
			inputFormat:  unmarshalProtoJSONWithResolver{},
		},
	}

	for _, inFormat := range formats {
		inputFormat := inFormat
		for _, outFormat := range formats {
			outputFormat := outFormat
			t.Run(fmt.Sprintf("%v_to_%v", inputFormat.name, outputFormat.name), func(t *testing.T) {
				t.Parallel()
				data, err := inputFormat.outputFormat.WithResolver(nil).Marshal(message.Interface())
				require.NoError(t, err)

				converter := Converter{
					MessageType:  messageType,
					InputFormat:  inputFormat.inputFormat,
					OutputFormat: outputFormat.outputFormat,
				}
				resp, err := converter.ConvertMessage(data)
				require.NoError(t, err)
				clone := messageType.New().Interface()
				err = outputFormat.inputFormat.WithResolver(nil).Unmarshal(resp, clone)
				require.NoError(t, err)
				diff := cmp.Diff(message.Interface(), clone, protocmp.Transform())
				if diff != "" {
					t.Errorf("round-trip failure (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestConverter_Errors(t *testing.T) {
	t.Parallel()
	_, err := (&Converter{}).ConvertMessage(nil)
	require.ErrorContains(t, err, "converter has no message type")

	messageType, _, err := Build(userSchema())
	require.NoError(t, err)
	converter := Converter{
		MessageType:  messageType,
		InputFormat:  JSONInputFormat(protojson.UnmarshalOptions{}),
		OutputFormat: BinaryOutputFormat(proto.MarshalOptions{}),
	}
	_, err = converter.ConvertMessage([]byte(`{"unknown": 1}`))
	require.ErrorContains(t, err, "input_data cannot be unmarshaled to "+string(messageType.FullName()))
}

func TestParseFormats(t *testing.T) {
	t.Parallel()
	for _, name := range []string{FormatBinary, FormatJSON, FormatText} {
		in, err := ParseInputFormat(name)
		require.NoError(t, err)
		assert.NotNil(t, in)
		out, err := ParseOutputFormat(name)
		require.NoError(t, err)
		assert.NotNil(t, out)
	}
	_, err := ParseInputFormat("yaml")
	require.ErrorContains(t, err, `unknown input format "yaml"`)
	_, err = ParseOutputFormat("yaml")
	require.ErrorContains(t, err, `unknown output format "yaml"`)
}

type marshalProtoJSONWithResolver struct {
	protojson.MarshalOptions
}

func (p marshalProtoJSONWithResolver) WithResolver(r Resolver) Marshaler {
	return protojson.MarshalOptions{
		Resolver: r,
	}
}

type unmarshalProtoJSONWithResolver struct {
	protojson.UnmarshalOptions
}

func (p unmarshalProtoJSONWithResolver) WithResolver(r Resolver) Unmarshaler {
	return protojson.UnmarshalOptions{
		Resolver: r,
	}
}
