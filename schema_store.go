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
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SchemaStore saves and loads named schemas using a [Cache]. Schemas are
// stored as YAML in field order. Built descriptors are never stored; a
// loaded schema is built again to get a message type.
type SchemaStore struct {
	// Cache holds the encoded schemas. It is required.
	Cache Cache
	// KeyPrefix is prepended to every schema name to form the cache key.
	KeyPrefix string
}

// Save validates and stores the schema under the given name.
func (s *SchemaStore) Save(ctx context.Context, name string, schema Schema) error {
	if err := s.validate(name); err != nil {
		return err
	}
	if err := ValidateSchema(schema); err != nil {
		return err
	}
	data, err := yaml.Marshal(schema)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode schema %q", name)
	}
	if err := s.Cache.Save(ctx, s.KeyPrefix+name, data); err != nil {
		return pkgerrors.Wrapf(err, "failed to save schema %q", name)
	}
	return nil
}

// Load returns the schema stored under the given name. The schema is
// validated before it is returned.
func (s *SchemaStore) Load(ctx context.Context, name string) (Schema, error) {
	if err := s.validate(name); err != nil {
		return nil, err
	}
	data, err := s.Cache.Load(ctx, s.KeyPrefix+name)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load schema %q", name)
	}
	schema, err := ParseSchema(data)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to decode schema %q", name)
	}
	if err := ValidateSchema(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func (s *SchemaStore) validate(name string) error {
	if s.Cache == nil {
		return errors.New("schema store has no cache")
	}
	if name == "" {
		return errors.New("schema name cannot be empty")
	}
	return nil
}
