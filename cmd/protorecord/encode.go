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
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bufbuild/protorecord"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
)

const (
	encodingBase64 = "base64"
	encodingHex    = "hex"
	encodingJSON   = "json"
	encodingText   = "text"

	maxLineSize = 16 << 20
)

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode SCHEMA [RECORDS]",
		Short: "Encode JSON records, one per line, as messages of a schema",
		Long: `Reads one JSON object per line from RECORDS, or from stdin if omitted, and writes
one encoded message per line. Keys that are not in the schema are ignored.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			messageType, mapping, err := buildSchema(cmd, args[0], logger)
			if err != nil {
				return err
			}
			output, _ := cmd.Flags().GetString("output")
			redact, _ := cmd.Flags().GetStringSlice("redact")
			serializer, encode, err := newRecordEncoder(output, logger)
			if err != nil {
				return err
			}
			if len(redact) > 0 {
				serializer.Filters = protorecord.Filters{protorecord.RedactFields(mapping, redact...)}
			}
			in, closeIn, err := openInput(cmd, args[1:])
			if err != nil {
				return err
			}
			defer closeIn()

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			return forEachLine(in, func(lineNum int, line []byte) error {
				record, err := decodeRecord(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNum, err)
				}
				data, err := serializer.Serialize(messageType, mapping, record)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNum, err)
				}
				if _, err := fmt.Fprintln(out, encode(data)); err != nil {
					return err
				}
				return nil
			})
		},
	}
	encodeCmd.Flags().StringP("output", "o", encodingBase64, "Output encoding: base64, hex, json or text")
	encodeCmd.Flags().StringSlice("redact", nil, "Fields to leave out of encoded records")
	return encodeCmd
}

// newRecordEncoder returns a serializer producing the named output and a
// function that renders its output on a single line.
func newRecordEncoder(output string, logger logrus.FieldLogger) (*protorecord.Serializer, func([]byte) string, error) {
	serializer := &protorecord.Serializer{Logger: logger}
	switch output {
	case encodingBase64:
		return serializer, base64.StdEncoding.EncodeToString, nil
	case encodingHex:
		return serializer, hex.EncodeToString, nil
	case encodingJSON:
		serializer.OutputFormat = protorecord.JSONOutputFormat(protojson.MarshalOptions{UseProtoNames: true})
		return serializer, func(data []byte) string { return string(data) }, nil
	case encodingText:
		serializer.OutputFormat = protorecord.TextOutputFormat(prototext.MarshalOptions{})
		return serializer, func(data []byte) string { return string(data) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown output %q: must be base64, hex, json or text", output)
	}
}

// decodeRecord parses a JSON object, keeping numbers as json.Number so that
// integers are not rounded through float64.
func decodeRecord(line []byte) (protorecord.Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.UseNumber()
	var record protorecord.Record
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("record must be a JSON object")
	}
	return record, nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

// forEachLine calls f with every non-blank line of r.
func forEachLine(r io.Reader, f func(lineNum int, line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := f(lineNum, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
