/*
 Copyright (c) 2025 Dell Inc. or its subsidiaries. All Rights Reserved.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package otlexporters

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric/global"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	"go.opentelemetry.io/otel/sdk/metric/selector/simple"
	"go.opentelemetry.io/otel/sdk/resource"
)

const (
	// DefaultCollectorCertPath is the default location to look for the Collector certificate
	DefaultCollectorCertPath = "/etc/ssl/certs/cert.crt"
	// DefaultCollectPeriod is how often recorded metrics are pushed to the collector
	DefaultCollectPeriod = 5 * time.Second
)

// Otlexporter is an exporter type for OpenTelemetry metrics
//
//go:generate mockgen -destination=mocks/otlexporters_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/opentelemetry/exporters Otlexporter
type Otlexporter interface {
	InitExporter(...otlpmetricgrpc.Option) error
	StopExporter() error
}

// OtlCollectorExporter is the exporter for the OpenTelemetry Collector
type OtlCollectorExporter struct {
	CollectorAddr string
	ServiceName   string
	CollectPeriod time.Duration
	exporter      *otlpmetric.Exporter
	controller    *controller.Controller
}

// InitExporter is the initialization method for the OpenTelemetry Collector exporter.
// The pushing controller becomes the global meter provider.
func (c *OtlCollectorExporter) InitExporter(opts ...otlpmetricgrpc.Option) error {
	exporter, controller, err := c.initOTLPExporter(opts...)
	if err != nil {
		return err
	}
	c.exporter = exporter
	c.controller = controller
	return nil
}

// StopExporter pushes the last collection and stops the exporter
func (c *OtlCollectorExporter) StopExporter() error {
	if c.controller == nil {
		return nil
	}
	// the controller exports its final collection on stop, so it goes first
	err := c.controller.Stop(context.Background())
	if err != nil {
		return err
	}
	return c.exporter.Shutdown(context.Background())
}

func (c *OtlCollectorExporter) initOTLPExporter(opts ...otlpmetricgrpc.Option) (*otlpmetric.Exporter, *controller.Controller, error) {
	if c.CollectorAddr != "" {
		opts = append([]otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(c.CollectorAddr)}, opts...)
	}
	exporter, err := otlpmetricgrpc.New(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	period := c.CollectPeriod
	if period <= 0 {
		period = DefaultCollectPeriod
	}
	pusher := controller.New(
		processor.NewFactory(
			simple.NewWithHistogramDistribution(),
			exporter,
		),
		controller.WithExporter(exporter),
		controller.WithCollectPeriod(period),
		controller.WithResource(resource.NewSchemaless(attribute.String("service.name", c.ServiceName))),
	)

	err = pusher.Start(context.Background())
	if err != nil {
		return nil, nil, err
	}
	global.SetMeterProvider(pusher)

	return exporter, pusher, nil
}
