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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	builder, err := NewBuilder(&BuilderConfig{Metrics: metrics})
	require.NoError(t, err)
	messageType, mapping, err := builder.Build(userSchema())
	require.NoError(t, err)
	_, _, err = builder.Build(nil)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.BuildsTotal.WithLabelValues(resultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.BuildsTotal.WithLabelValues(resultError)))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.FieldsBuiltTotal))

	serializer := &Serializer{Metrics: metrics}
	data, err := serializer.Serialize(messageType, mapping, Record{"name": "Jan"})
	require.NoError(t, err)
	_, err = serializer.Serialize(messageType, mapping, Record{"name": 1})
	require.Error(t, err)
	_, err = serializer.Deserialize(messageType, mapping, data)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsTotal.WithLabelValues(operationSerialize, resultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsTotal.WithLabelValues(operationSerialize, resultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsTotal.WithLabelValues(operationDeserialize, resultSuccess)))

	cache, err := NewTypeCache(builder, 4, 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, _, err := cache.Get(userSchema())
		require.NoError(t, err)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TypeCacheMissesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.TypeCacheHitsTotal))

	count, err := testutil.GatherAndCount(reg, "protorecord_builds_total", "protorecord_records_total")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// registering twice fails
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestMetrics_Nil(t *testing.T) {
	t.Parallel()
	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.observeBuild(time.Now(), 1, nil)
		metrics.observeRecord(operationSerialize, 1, nil)
		metrics.observeTypeCache(true)
	})
	unregistered, err := NewMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, unregistered.BuildsTotal)
}
