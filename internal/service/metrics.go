// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/instrument"
	"go.opentelemetry.io/otel/metric/instrument/syncfloat64"
	"go.opentelemetry.io/otel/metric/instrument/syncint64"
	"go.opentelemetry.io/otel/metric/unit"
)

// MetricsPrefix is prepended to every instrument name
const MetricsPrefix = "blockdevice_"

// MetricsRecorder supports recording operation and inventory metrics
//
//go:generate mockgen -destination=mocks/metrics_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/internal/service MetricsRecorder
type MetricsRecorder interface {
	RecordOperation(ctx context.Context, operation string, duration time.Duration, err error) error
	RecordVolumes(ctx context.Context, backendType string, owned, attached int64) error
}

// InstrumentCreator creates synchronous instruments, metric.Meter satisfies it
type InstrumentCreator interface {
	SyncInt64() syncint64.InstrumentProvider
	SyncFloat64() syncfloat64.InstrumentProvider
}

// MetricsWrapper contains data used for pushing metrics data
type MetricsWrapper struct {
	Meter         InstrumentCreator
	Metrics       sync.Map
	Labels        sync.Map
	VolumeMetrics sync.Map
}

// OperationMetrics contains the instruments updated on every orchestration call
type OperationMetrics struct {
	Calls    syncint64.Counter
	Failures syncint64.Counter
	Latency  syncfloat64.Histogram
}

// VolumeMetrics reports the current volume inventory of a backend.
// Up-down counters carry deltas, so the last reported values are kept to compute them.
type VolumeMetrics struct {
	Owned    syncint64.UpDownCounter
	Attached syncint64.UpDownCounter

	mu           sync.Mutex
	lastOwned    int64
	lastAttached int64
}

func (mw *MetricsWrapper) initOperationMetrics(prefix string) (*OperationMetrics, error) {
	calls, err := mw.Meter.SyncInt64().Counter(prefix+"operation_calls_total",
		instrument.WithDescription("number of orchestration calls"))
	if err != nil {
		return nil, err
	}

	failures, err := mw.Meter.SyncInt64().Counter(prefix+"operation_failures_total",
		instrument.WithDescription("number of orchestration calls that returned an error"))
	if err != nil {
		return nil, err
	}

	latency, err := mw.Meter.SyncFloat64().Histogram(prefix+"operation_duration_milliseconds",
		instrument.WithDescription("time spent in orchestration calls"),
		instrument.WithUnit(unit.Milliseconds))
	if err != nil {
		return nil, err
	}

	metrics := &OperationMetrics{
		Calls:    calls,
		Failures: failures,
		Latency:  latency,
	}
	mw.Metrics.Store(prefix, metrics)
	return metrics, nil
}

func (mw *MetricsWrapper) initVolumeMetrics(prefix, backendType string) (*VolumeMetrics, error) {
	owned, err := mw.Meter.SyncInt64().UpDownCounter(prefix+"volumes_owned",
		instrument.WithDescription("volumes owned by this cluster"))
	if err != nil {
		return nil, err
	}

	attached, err := mw.Meter.SyncInt64().UpDownCounter(prefix+"volumes_attached",
		instrument.WithDescription("owned volumes mapped to a host"))
	if err != nil {
		return nil, err
	}

	metrics := &VolumeMetrics{
		Owned:    owned,
		Attached: attached,
	}
	mw.VolumeMetrics.Store(backendType, metrics)
	return metrics, nil
}

func (mw *MetricsWrapper) operationMetrics() (*OperationMetrics, error) {
	if mw.Meter == nil {
		return nil, errors.New("no meter configured")
	}
	if m, ok := mw.Metrics.Load(MetricsPrefix); ok {
		return m.(*OperationMetrics), nil
	}
	return mw.initOperationMetrics(MetricsPrefix)
}

// RecordOperation records one call of an orchestration operation
func (mw *MetricsWrapper) RecordOperation(ctx context.Context, operation string, duration time.Duration, opErr error) error {
	metrics, err := mw.operationMetrics()
	if err != nil {
		return err
	}

	var labels []attribute.KeyValue
	if l, ok := mw.Labels.Load(operation); ok {
		labels = l.([]attribute.KeyValue)
	} else {
		labels = []attribute.KeyValue{attribute.String("operation", operation)}
		mw.Labels.Store(operation, labels)
	}

	metrics.Calls.Add(ctx, 1, labels...)
	if opErr != nil {
		metrics.Failures.Add(ctx, 1, labels...)
	}
	metrics.Latency.Record(ctx, float64(duration.Microseconds())/1000, labels...)
	return nil
}

// RecordVolumes reports the owned and attached volume counts seen by the latest listing
func (mw *MetricsWrapper) RecordVolumes(ctx context.Context, backendType string, owned, attached int64) error {
	if mw.Meter == nil {
		return errors.New("no meter configured")
	}

	var metrics *VolumeMetrics
	if m, ok := mw.VolumeMetrics.Load(backendType); ok {
		metrics = m.(*VolumeMetrics)
	} else {
		var err error
		metrics, err = mw.initVolumeMetrics(MetricsPrefix, backendType)
		if err != nil {
			return err
		}
	}

	labels := []attribute.KeyValue{attribute.String("backend", backendType)}

	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	metrics.Owned.Add(ctx, owned-metrics.lastOwned, labels...)
	metrics.Attached.Add(ctx, attached-metrics.lastAttached, labels...)
	metrics.lastOwned = owned
	metrics.lastAttached = attached
	return nil
}
