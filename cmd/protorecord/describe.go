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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func newDescribeCmd() *cobra.Command {
	describeCmd := &cobra.Command{
		Use:   "describe SCHEMA",
		Short: "Print the field name mapping and .proto source of a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageType, mapping, err := buildSchema(cmd, args[0], newLogger(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "FIELD\tNAME\tNUMBER\tTYPE")
			fields := messageType.Descriptor().Fields()
			mapping.Range(func(original, sanitized string) bool {
				typ, _ := messageType.FieldType(sanitized)
				number := fields.ByName(protoreflect.Name(sanitized)).Number()
				fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", original, sanitized, number, typ)
				return true
			})
			if err := writer.Flush(); err != nil {
				return err
			}
			if noSource, _ := cmd.Flags().GetBool("no-source"); noSource {
				return nil
			}
			source, err := messageType.ProtoSource()
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, source)
			return nil
		},
	}
	describeCmd.Flags().Bool("no-source", false, "Only print the field name mapping")
	return describeCmd
}
