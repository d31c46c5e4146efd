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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/bufbuild/protorecord"
	"github.com/bufbuild/protorecord/cache/filecache"
	memcachecache "github.com/bufbuild/protorecord/cache/memcache"
	"github.com/bufbuild/protorecord/cache/rediscache"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	flagVerbose   = "verbose"
	flagRedis     = "redis"
	flagMemcache  = "memcache"
	flagCacheDir  = "cache-dir"
	flagKeyPrefix = "key-prefix"

	// storePrefix marks a schema argument that names a stored schema
	// rather than a file.
	storePrefix = "store:"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "protorecord",
		Short: "Build protobuf message types from flat schemas and encode records with them",
		Long: `protorecord reads a schema mapping field names to STRING, INT64, BOOL or DOUBLE,
builds a protobuf message type from it and encodes JSON records as that message.

A SCHEMA argument is either a path to a YAML or JSON file, or "store:NAME" to load
a schema previously saved with "protorecord schema push".`,
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.BoolP(flagVerbose, "v", false, "Log debug output to stderr")
	flags.String(flagRedis, "", "Address of a redis server holding stored schemas")
	flags.String(flagMemcache, "", "Comma-separated memcached servers holding stored schemas")
	flags.String(flagCacheDir, "", "Directory holding stored schemas")
	flags.String(flagKeyPrefix, "protorecord:", "Prefix added to the keys of stored schemas")

	rootCmd.AddCommand(
		newDescribeCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newConvertCmd(),
		newSchemaCmd(),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// loadSchema reads the schema named by arg, from a file or from the
// configured store.
func loadSchema(cmd *cobra.Command, arg string) (protorecord.Schema, error) {
	if name, ok := strings.CutPrefix(arg, storePrefix); ok {
		store, err := openStore(cmd)
		if err != nil {
			return nil, err
		}
		return store.Load(cmd.Context(), name)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, err
	}
	schema, err := protorecord.ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return schema, nil
}

// buildSchema loads and builds the schema named by arg.
func buildSchema(cmd *cobra.Command, arg string, logger logrus.FieldLogger) (*protorecord.MessageType, *protorecord.FieldNameMapping, error) {
	schema, err := loadSchema(cmd, arg)
	if err != nil {
		return nil, nil, err
	}
	builder, err := protorecord.NewBuilder(&protorecord.BuilderConfig{Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	return builder.Build(schema)
}

func openStore(cmd *cobra.Command) (*protorecord.SchemaStore, error) {
	cache, err := openCache(cmd)
	if err != nil {
		return nil, err
	}
	prefix, _ := cmd.Flags().GetString(flagKeyPrefix)
	return &protorecord.SchemaStore{Cache: cache, KeyPrefix: prefix}, nil
}

func openCache(cmd *cobra.Command) (protorecord.Cache, error) {
	redisAddr, _ := cmd.Flags().GetString(flagRedis)
	memcacheServers, _ := cmd.Flags().GetString(flagMemcache)
	cacheDir, _ := cmd.Flags().GetString(flagCacheDir)
	var configured int
	for _, value := range []string{redisAddr, memcacheServers, cacheDir} {
		if value != "" {
			configured++
		}
	}
	switch {
	case configured == 0:
		return nil, errors.New("no schema store configured: use --redis, --memcache or --cache-dir")
	case configured > 1:
		return nil, errors.New("only one of --redis, --memcache and --cache-dir may be used")
	case redisAddr != "":
		return rediscache.New(rediscache.Config{Client: rediscache.NewPool(redisAddr)})
	case memcacheServers != "":
		return memcachecache.New(memcachecache.Config{Client: memcache.New(strings.Split(memcacheServers, ",")...)})
	default:
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return nil, err
		}
		return filecache.New(filecache.Config{Path: cacheDir})
	}
}
