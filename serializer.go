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
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
)

const (
	operationSerialize   = "serialize"
	operationDeserialize = "deserialize"
)

// Record is a loosely-typed set of field values keyed by original schema
// field names.
type Record map[string]any

// Serializer encodes records as messages of a built type. The zero value
// uses the protobuf binary format in both directions.
type Serializer struct {
	// OutputFormat used by Serialize. If nil, deterministic binary output
	// is used.
	OutputFormat OutputFormat
	// InputFormat used by Deserialize. If nil, binary input is used.
	InputFormat InputFormat
	// Filters are applied to the populated message before it is encoded.
	Filters Filters
	// If Metrics is non-nil, records are counted and sized.
	Metrics *Metrics
	// If Logger is non-nil, failures are logged to it at debug level.
	Logger logrus.FieldLogger
}

// Serialize populates a new message of the given type from record and
// encodes it with the protobuf binary format. See [Serializer.Serialize].
func Serialize(messageType *MessageType, mapping *FieldNameMapping, record Record) ([]byte, error) {
	return (&Serializer{}).Serialize(messageType, mapping, record)
}

// Deserialize decodes binary data into a record. See [Serializer.Deserialize].
func Deserialize(messageType *MessageType, mapping *FieldNameMapping, data []byte) (Record, error) {
	return (&Serializer{}).Deserialize(messageType, mapping, data)
}

// Serialize populates a new message of the given type from record and
// encodes it.
//
// Each field in mapping whose original name is a key of record is set to
// that value; fields missing from record, or whose value is nil, are left
// unset and decode to their zero value. Keys that are not in mapping are
// ignored. If a value cannot be stored in its field, a [*TypeMismatchError]
// is returned and nothing is encoded.
func (s *Serializer) Serialize(messageType *MessageType, mapping *FieldNameMapping, record Record) (data []byte, err error) {
	defer func() {
		s.Metrics.observeRecord(operationSerialize, len(data), err)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("message", messageType.FullName()).Debug("failed to serialize record")
		}
	}()
	msg, err := populate(messageType, mapping, record)
	if err != nil {
		return nil, err
	}
	out := s.Filters.do(msg.ProtoReflect())
	data, err = s.outputFormat().WithResolver(messageType.Resolver()).Marshal(out.Interface())
	if err != nil {
		return nil, errors.Wrapf(err, "record cannot be marshaled to %s", messageType.FullName())
	}
	return data, nil
}

// Deserialize decodes data into a message of the given type and returns
// its values keyed by original field name. Every field in mapping is
// present in the result; unset fields hold their zero value.
func (s *Serializer) Deserialize(messageType *MessageType, mapping *FieldNameMapping, data []byte) (record Record, err error) {
	defer func() {
		s.Metrics.observeRecord(operationDeserialize, len(data), err)
	}()
	msg := messageType.New()
	if err := s.inputFormat().WithResolver(messageType.Resolver()).Unmarshal(data, msg.Interface()); err != nil {
		return nil, errors.Wrapf(err, "data cannot be unmarshaled to %s", messageType.FullName())
	}
	record = make(Record, mapping.Len())
	var getErr error
	mapping.Range(func(original, sanitized string) bool {
		value, err := msg.Get(sanitized)
		if err != nil {
			getErr = err
			return false
		}
		record[original] = value
		return true
	})
	if getErr != nil {
		return nil, getErr
	}
	return record, nil
}

func (s *Serializer) outputFormat() OutputFormat {
	if s.OutputFormat == nil {
		return BinaryOutputFormat(proto.MarshalOptions{Deterministic: true})
	}
	return s.OutputFormat
}

func (s *Serializer) inputFormat() InputFormat {
	if s.InputFormat == nil {
		return BinaryInputFormat(proto.UnmarshalOptions{})
	}
	return s.InputFormat
}

// populate returns a message holding the record's values. A message is only
// returned if every value could be set.
func populate(messageType *MessageType, mapping *FieldNameMapping, record Record) (*Message, error) {
	msg := messageType.New()
	var setErr error
	mapping.Range(func(original, sanitized string) bool {
		value, ok := record[original]
		if !ok {
			return true
		}
		field, err := messageType.field(sanitized)
		if err != nil {
			setErr = fmt.Errorf("mapping does not match message type: %w", err)
			return false
		}
		if !msg.set(field, value) {
			setErr = &TypeMismatchError{Field: original, Expected: field.typ, Actual: fmt.Sprintf("%T", value)}
			return false
		}
		return true
	})
	if setErr != nil {
		return nil, setErr
	}
	return msg, nil
}
