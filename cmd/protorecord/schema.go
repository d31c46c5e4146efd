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
	"github.com/bufbuild/protorecord"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSchemaCmd() *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Save schemas to and load them from a shared store",
		Long: `Stores schemas in redis (--redis), memcached (--memcache) or a directory
(--cache-dir), so that producers and consumers of records can build the same
message type. Stored schemas can be used as SCHEMA arguments as "store:NAME".`,
	}
	schemaCmd.AddCommand(newSchemaPushCmd(), newSchemaPullCmd())
	return schemaCmd
}

func newSchemaPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push NAME FILE",
		Short: "Validate a schema file and save it under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]
			schema, err := loadSchema(cmd, file)
			if err != nil {
				return err
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.Save(cmd.Context(), name, schema); err != nil {
				return err
			}
			newLogger(cmd).WithField("name", name).WithField("fields", len(schema)).Info("saved schema")
			return nil
		},
	}
}

func newSchemaPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull NAME",
		Short: "Print the schema saved under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(cmd, storePrefix+args[0])
			if err != nil {
				return err
			}
			return printSchema(cmd, schema)
		},
	}
}

func printSchema(cmd *cobra.Command, schema protorecord.Schema) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	if err := encoder.Encode(schema); err != nil {
		return err
	}
	return encoder.Close()
}
