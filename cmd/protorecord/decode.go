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

package main

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bufbuild/protorecord"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode SCHEMA [INPUT]",
		Short: "Decode binary messages, one per line, into JSON records",
		Long: `Reads one base64 or hex encoded message per line from INPUT, or from stdin if
omitted, and writes each as a JSON object keyed by the original field names. Every
field of the schema is present; unset fields hold their zero value.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			messageType, mapping, err := buildSchema(cmd, args[0], logger)
			if err != nil {
				return err
			}
			input, _ := cmd.Flags().GetString("input")
			var decode func(string) ([]byte, error)
			switch input {
			case encodingBase64:
				decode = base64.StdEncoding.DecodeString
			case encodingHex:
				decode = hex.DecodeString
			default:
				return fmt.Errorf("unknown input %q: must be base64 or hex", input)
			}
			in, closeIn, err := openInput(cmd, args[1:])
			if err != nil {
				return err
			}
			defer closeIn()

			serializer := &protorecord.Serializer{Logger: logger}
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			encoder := json.NewEncoder(out)
			return forEachLine(in, func(lineNum int, line []byte) error {
				data, err := decode(string(line))
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNum, err)
				}
				record, err := serializer.Deserialize(messageType, mapping, data)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNum, err)
				}
				return encoder.Encode(record)
			})
		},
	}
	decodeCmd.Flags().StringP("input", "i", encodingBase64, "Input encoding: base64 or hex")
	return decodeCmd
}
