// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dell/csm-blockdevice-adapter/internal/entrypoint"
	"github.com/dell/csm-blockdevice-adapter/internal/service"
	otlexporters "github.com/dell/csm-blockdevice-adapter/opentelemetry/exporters"
	tracer "github.com/dell/csm-blockdevice-adapter/opentelemetry/tracers"
	csictx "github.com/dell/gocsi/context"
	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric/global"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile    = "/etc/config/csm-blockdevice-adapter.yaml"
	envConfigFile        = "X_CSM_BLOCKDEVICE_CONFIG"
	defaultWatchInterval = 30 * time.Second
	shutdownTimeout      = 10 * time.Second
)

type options struct {
	configFile   string
	clusterID    string
	profile      string
	watch        bool
	listInterval time.Duration

	tracerProvider *sdktrace.TracerProvider
	exporter       otlexporters.Otlexporter
}

var (
	// newServiceFunc is used to override the block device service in testing
	newServiceFunc = newService

	// newExporterFunc is used to override the metrics exporter in testing
	newExporterFunc = func(collectorAddress string) otlexporters.Otlexporter {
		return &otlexporters.OtlCollectorExporter{CollectorAddr: collectorAddress, ServiceName: tracer.ServiceName}
	}
)

func main() {
	logger := logrus.New()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(logger).ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "blockdevice-adapter",
		Short: "block device operations for a dataset orchestrator",
		Long: `Creates, attaches, detaches and lists the array volumes of one orchestrator cluster.
Volumes are provisioned through an IBM Spectrum Control Base Edition server or straight
from a PowerStore array, and exposed on this host as multipath devices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "driver configuration file (default $"+envConfigFile+" or "+defaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&opts.clusterID, "cluster-id", "", "UUID of the orchestrator cluster owning the volumes")

	withService := func(run func(cmd *cobra.Command, svc service.Service, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			svc, err := newServiceFunc(cmd.Context(), opts, logger)
			defer opts.shutdown(logger)
			if err != nil {
				return err
			}
			return run(cmd, svc, args)
		}
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "instance-id",
		Short: "print the identifier of this host",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, svc service.Service, _ []string) error {
			return render(cmd.OutOrStdout(), svc.ComputeInstanceID())
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "allocation-unit",
		Short: "print the volume size granularity in bytes",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, svc service.Service, _ []string) error {
			return render(cmd.OutOrStdout(), svc.AllocationUnit())
		}),
	})

	createCmd := &cobra.Command{
		Use:   "create DATASET_ID SIZE",
		Short: "create a volume for a dataset, SIZE accepts units such as 10GiB",
		Args:  cobra.ExactArgs(2),
		RunE: withService(func(cmd *cobra.Command, svc service.Service, args []string) error {
			datasetID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid dataset id %q: %v", args[0], err)
			}
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}

			var volume service.BlockDeviceVolume
			if opts.profile != "" {
				volume, err = svc.CreateVolumeWithProfile(cmd.Context(), datasetID, size, opts.profile)
			} else {
				volume, err = svc.CreateVolume(cmd.Context(), datasetID, size)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), volume)
		}),
	}
	createCmd.Flags().StringVar(&opts.profile, "profile", "", "storage service to create the volume in instead of the default service")
	rootCmd.AddCommand(createCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "destroy BLOCKDEVICE_ID",
		Short: "delete a volume",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, svc service.Service, args []string) error {
			return svc.DestroyVolume(cmd.Context(), args[0])
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "attach BLOCKDEVICE_ID [HOST]",
		Short: "map a volume to a host, this host by default",
		Args:  cobra.RangeArgs(1, 2),
		RunE: withService(func(cmd *cobra.Command, svc service.Service, args []string) error {
			host := svc.ComputeInstanceID()
			if len(args) == 2 {
				host = args[1]
			}
			volume, err := svc.AttachVolume(cmd.Context(), args[0], host)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), volume)
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "detach BLOCKDEVICE_ID",
		Short: "unmap a volume from its host",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, svc service.Service, args []string) error {
			return svc.DetachVolume(cmd.Context(), args[0])
		}),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "device-path BLOCKDEVICE_ID",
		Short: "print the local device of an attached volume",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, svc service.Service, args []string) error {
			devicePath, err := svc.GetDevicePath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), devicePath)
		}),
	})

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the volumes of the cluster",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, svc service.Service, _ []string) error {
			if !opts.watch {
				volumes, err := svc.ListVolumes(cmd.Context())
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), volumes)
			}

			config := &entrypoint.Config{
				ListTickInterval: opts.listInterval,
				Logger:           logger,
			}
			// an explicit --interval wins over the configuration file
			intervalFromFlag := cmd.Flags().Changed("interval")
			if !intervalFromFlag {
				updateListInterval(config, logger)
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				logger.WithField("file", e.Name).Info("configuration changed")
				updateLoggingSettings(logger)
				if !intervalFromFlag {
					updateListInterval(config, logger)
				}
			})
			return entrypoint.Run(cmd.Context(), config, svc, func(volumes []service.BlockDeviceVolume) error {
				return render(cmd.OutOrStdout(), volumes)
			})
		}),
	}
	listCmd.Flags().BoolVar(&opts.watch, "watch", false, "keep listing on every interval until interrupted")
	listCmd.Flags().DurationVar(&opts.listInterval, "interval", defaultWatchInterval, "time between listings with --watch")
	rootCmd.AddCommand(listCmd)

	return rootCmd
}

// newService reads the driver configuration and builds the block device service
func newService(ctx context.Context, opts *options, logger *logrus.Logger) (service.Service, error) {
	clusterID, err := uuid.Parse(opts.clusterID)
	if err != nil {
		return nil, fmt.Errorf("invalid cluster id %q: %v", opts.clusterID, err)
	}

	viper.SetConfigFile(configPath(ctx, opts.configFile))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config file: %v", err)
	}

	cfg, err := entrypoint.ConfigFromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	updateLoggingSettings(logger)
	initObservability(opts, logger)

	metrics := &service.MetricsWrapper{
		Meter: global.Meter(tracer.ServiceName),
	}
	svc, err := entrypoint.NewBlockDeviceAPI(ctx, clusterID, cfg, metrics, logger)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// initObservability starts the span and metric exporters named in the configuration.
// Exporter failures only disable the exporter.
func initObservability(opts *options, logger *logrus.Logger) {
	viper.SetDefault("ZIPKIN_PROBABILITY", 1.0)
	tp, err := tracer.InitTracing(viper.GetString("ZIPKIN_URI"), viper.GetFloat64("ZIPKIN_PROBABILITY"))
	if err != nil {
		logger.WithError(err).Warn("tracing is disabled")
	}
	opts.tracerProvider = tp

	collectorAddress := viper.GetString("COLLECTOR_ADDR")
	if collectorAddress == "" {
		return
	}
	exporterOptions, err := collectorOptions()
	if err != nil {
		logger.WithError(err).Warn("metrics export is disabled")
		return
	}
	exporter := newExporterFunc(collectorAddress)
	if err := exporter.InitExporter(exporterOptions...); err != nil {
		logger.WithError(err).Warn("metrics export is disabled")
		return
	}
	logger.WithField("collector", collectorAddress).Debug("exporting metrics")
	opts.exporter = exporter
}

func collectorOptions() ([]otlpmetricgrpc.Option, error) {
	if !viper.GetBool("TLS_ENABLED") {
		return []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}, nil
	}
	collectorCertPath := viper.GetString("COLLECTOR_CERT_PATH")
	if len(strings.TrimSpace(collectorCertPath)) < 1 {
		collectorCertPath = otlexporters.DefaultCollectorCertPath
	}
	transportCreds, err := credentials.NewClientTLSFromFile(collectorCertPath, "")
	if err != nil {
		return nil, err
	}
	return []otlpmetricgrpc.Option{otlpmetricgrpc.WithTLSCredentials(transportCreds)}, nil
}

// shutdown flushes the spans and metrics recorded by the command
func (o *options) shutdown(logger *logrus.Logger) {
	if o.exporter != nil {
		if err := o.exporter.StopExporter(); err != nil {
			logger.WithError(err).Warn("stopping metrics exporter")
		}
		o.exporter = nil
	}
	if o.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			logger.WithError(err).Warn("flushing spans")
		}
		o.tracerProvider = nil
	}
}

// configPath picks the flag value, then the environment, then the default location
func configPath(ctx context.Context, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if path, ok := csictx.LookupEnv(ctx, envConfigFile); ok && path != "" {
		return path
	}
	return defaultConfigFile
}

func updateLoggingSettings(logger *logrus.Logger) {
	logFormat := viper.GetString("LOG_FORMAT")
	if strings.EqualFold(logFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		// use text formatter by default
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	level, ok := entrypoint.LogLevels[strings.ToUpper(viper.GetString(entrypoint.KeyLogLevel))]
	if !ok {
		// use INFO level by default
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func updateListInterval(config *entrypoint.Config, logger *logrus.Logger) {
	value := viper.GetString("LIST_POLL_FREQUENCY")
	if value == "" {
		return
	}
	seconds, err := cast.ToIntE(value)
	if err != nil {
		logger.WithError(err).WithField("LIST_POLL_FREQUENCY", value).Warn("list poll frequency was not set to a valid number")
		return
	}
	interval := time.Duration(seconds) * time.Second
	if interval < entrypoint.MinimumListTickInterval || interval > entrypoint.MaximumListTickInterval {
		logger.WithField("LIST_POLL_FREQUENCY", value).Warnf("list poll frequency must be between %v and %v", entrypoint.MinimumListTickInterval, entrypoint.MaximumListTickInterval)
		return
	}
	config.SetListTickInterval(interval)
}

func parseSize(s string) (int64, error) {
	size, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %v", s, err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("invalid size %q: must be positive", s)
	}
	return size, nil
}

func render(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
