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
	"io"

	"github.com/bufbuild/protorecord"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert SCHEMA [INPUT]",
		Short: "Convert a single message between the binary, JSON and text formats",
		Long: `Reads a whole message from INPUT, or from stdin if omitted, in the --from format
and writes it in the --to format. JSON output uses the field names of the built
message.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageType, mapping, err := buildSchema(cmd, args[0], newLogger(cmd))
			if err != nil {
				return err
			}
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			redact, _ := cmd.Flags().GetStringSlice("redact")
			inputFormat, err := protorecord.ParseInputFormat(from)
			if err != nil {
				return err
			}
			outputFormat, err := protorecord.ParseOutputFormat(to)
			if err != nil {
				return err
			}
			converter := &protorecord.Converter{
				MessageType:  messageType,
				InputFormat:  inputFormat,
				OutputFormat: outputFormat,
			}
			if len(redact) > 0 {
				converter.Filters = protorecord.Filters{protorecord.RedactFields(mapping, redact...)}
			}

			in, closeIn, err := openInput(cmd, args[1:])
			if err != nil {
				return err
			}
			defer closeIn()
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			converted, err := converter.ConvertMessage(data)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(converted)
			return err
		},
	}
	convertCmd.Flags().String("from", protorecord.FormatBinary, "Input format: binary, json or text")
	convertCmd.Flags().String("to", protorecord.FormatJSON, "Output format: binary, json or text")
	convertCmd.Flags().StringSlice("redact", nil, "Fields to leave out of the output")
	return convertCmd
}
