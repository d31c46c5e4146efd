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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics holds the prometheus collectors updated by builders,
// serializers and type caches. A nil *Metrics records nothing.
type Metrics struct {
	BuildsTotal          *prometheus.CounterVec
	BuildDuration        prometheus.Histogram
	FieldsBuiltTotal     prometheus.Counter
	RecordsTotal         *prometheus.CounterVec
	SerializedBytes      prometheus.Histogram
	TypeCacheHitsTotal   prometheus.Counter
	TypeCacheMissesTotal prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. If reg is
// nil, the collectors are created but not registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		BuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "protorecord",
			Name:      "builds_total",
			Help:      "Number of message type builds, by result.",
		}, []string{"result"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "protorecord",
			Name:      "build_duration_seconds",
			Help:      "Time spent building message types.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		FieldsBuiltTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "protorecord",
			Name:      "fields_built_total",
			Help:      "Number of fields added to successfully built message types.",
		}),
		RecordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "protorecord",
			Name:      "records_total",
			Help:      "Number of records serialized or deserialized, by operation and result.",
		}, []string{"operation", "result"}),
		SerializedBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "protorecord",
			Name:      "serialized_bytes",
			Help:      "Size of serialized records.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
		TypeCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "protorecord",
			Name:      "type_cache_hits_total",
			Help:      "Number of type cache lookups served from the cache.",
		}),
		TypeCacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "protorecord",
			Name:      "type_cache_misses_total",
			Help:      "Number of type cache lookups that required a build.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, collector := range []prometheus.Collector{
		m.BuildsTotal,
		m.BuildDuration,
		m.FieldsBuiltTotal,
		m.RecordsTotal,
		m.SerializedBytes,
		m.TypeCacheHitsTotal,
		m.TypeCacheMissesTotal,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeBuild(start time.Time, fields int, err error) {
	if m == nil {
		return
	}
	m.BuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.BuildsTotal.WithLabelValues(resultError).Inc()
		return
	}
	m.BuildsTotal.WithLabelValues(resultSuccess).Inc()
	m.FieldsBuiltTotal.Add(float64(fields))
}

func (m *Metrics) observeRecord(operation string, size int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.RecordsTotal.WithLabelValues(operation, resultError).Inc()
		return
	}
	m.RecordsTotal.WithLabelValues(operation, resultSuccess).Inc()
	m.SerializedBytes.Observe(float64(size))
}

func (m *Metrics) observeTypeCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.TypeCacheHitsTotal.Inc()
	} else {
		m.TypeCacheMissesTotal.Inc()
	}
}
