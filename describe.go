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
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoprint"
	"github.com/pkg/errors"
)

// ProtoSource renders the file that declares the message as .proto source.
// The output compiles to an equivalent message, so it can be handed to
// consumers that need the type without access to the schema.
func (t *MessageType) ProtoSource() (string, error) {
	fd, err := desc.WrapFile(t.Descriptor().ParentFile())
	if err != nil {
		return "", errors.Wrapf(err, "failed to wrap file for %s", t.FullName())
	}
	var sb strings.Builder
	printer := protoprint.Printer{Indent: "  "}
	if err := printer.PrintProtoFile(fd, &sb); err != nil {
		return "", errors.Wrapf(err, "failed to print file for %s", t.FullName())
	}
	return sb.String(), nil
}
