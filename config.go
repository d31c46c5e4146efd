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
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/reflect/protoreflect"
)

const (
	defaultMessageName = "DynamicMessage"
	defaultPackageName = "dp_package"
	defaultFileName    = "dp_message.proto"
)

// BuilderConfig contains the configurable attributes of a [Builder].
type BuilderConfig struct {
	// The simple name of the built message. If left empty, "DynamicMessage"
	// is used.
	MessageName string
	// The package in which the message is declared. Every build appends a
	// unique token to this package, so the full name of the message differs
	// from one build to the next. If left empty, "dp_package" is used.
	PackageName string
	// The path of the synthesized file that declares the message. If left
	// empty, "dp_message.proto" is used.
	FileName string
	// If Logger is non-nil, builds are logged to it at debug level.
	// Otherwise log output is discarded.
	Logger logrus.FieldLogger
	// If Metrics is non-nil, builds are counted and timed. See [NewMetrics].
	Metrics *Metrics
}

func (c *BuilderConfig) validate() error {
	if c.MessageName != "" && !protoreflect.Name(c.MessageName).IsValid() {
		return fmt.Errorf("%q is not a valid message name", c.MessageName)
	}
	if c.PackageName != "" && !protoreflect.FullName(c.PackageName).IsValid() {
		return fmt.Errorf("%q is not a valid package name", c.PackageName)
	}
	if c.FileName != "" && !strings.HasSuffix(c.FileName, ".proto") {
		return fmt.Errorf("file name %q must end in .proto", c.FileName)
	}
	return nil
}

func (c *BuilderConfig) withDefaults() BuilderConfig {
	result := *c
	if result.MessageName == "" {
		result.MessageName = defaultMessageName
	}
	if result.PackageName == "" {
		result.PackageName = defaultPackageName
	}
	if result.FileName == "" {
		result.FileName = defaultFileName
	}
	if result.Logger == nil {
		result.Logger = discardLogger()
	}
	return result
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
