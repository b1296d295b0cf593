// Package observability builds the OpenTelemetry providers and the process logger.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// OTLP transport protocols, named as in OTEL_EXPORTER_OTLP_PROTOCOL.
const (
	ProtocolHTTP = "http/protobuf"
	ProtocolGRPC = "grpc"
)

const exportTimeout = 10 * time.Second

// Config selects whether telemetry is exported and how.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Protocol       string     // ProtocolHTTP or ProtocolGRPC; empty means HTTP
	Level          slog.Level // minimum level for the stdout logger

	// Output receives JSON logs when export is disabled. Defaults to os.Stdout.
	Output io.Writer
}

func (c Config) grpc() bool {
	return c.Protocol == ProtocolGRPC
}

// parseOTLPHeaders parses OTEL_EXPORTER_OTLP_HEADERS and URL-decodes values.
// Hosted collectors hand out headers URL-encoded (e.g. Basic%20token) and the
// Go SDK does not always decode them.
func parseOTLPHeaders() map[string]string {
	raw := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if raw == "" {
		return nil
	}

	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			decoded = value
		}
		headers[strings.TrimSpace(key)] = decoded
	}
	return headers
}

// newResource creates a resource with service metadata merged with defaults.
// OTEL_RESOURCE_ATTRIBUTES adds further attributes, e.g.
//
//	export OTEL_RESOURCE_ATTRIBUTES="deployment.environment=production"
func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	serviceResource, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
		resource.WithSchemaURL(semconv.SchemaURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service resource: %w", err)
	}

	res, err := resource.Merge(resource.Default(), serviceResource)
	if err != nil {
		// partial resources and schema conflicts still yield a usable resource
		if errors.Is(err, resource.ErrPartialResource) || errors.Is(err, resource.ErrSchemaURLConflict) {
			return res, nil
		}
		return nil, fmt.Errorf("failed to merge resources: %w", err)
	}

	return res, nil
}

func newTraceExporter(cfg Config) (sdktrace.SpanExporter, error) {
	headers := parseOTLPHeaders()

	// context.Background() so exporter creation cannot hang on a cancelled startup context
	if cfg.grpc() {
		opts := []otlptracegrpc.Option{otlptracegrpc.WithTimeout(exportTimeout)}
		if headers != nil {
			opts = append(opts, otlptracegrpc.WithHeaders(headers))
		}
		return otlptracegrpc.New(context.Background(), opts...)
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithTimeout(exportTimeout)}
	if headers != nil {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}
	return otlptracehttp.New(context.Background(), opts...)
}

func newMetricExporter(cfg Config) (sdkmetric.Exporter, error) {
	headers := parseOTLPHeaders()

	if cfg.grpc() {
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithTimeout(exportTimeout)}
		if headers != nil {
			opts = append(opts, otlpmetricgrpc.WithHeaders(headers))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	}

	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithTimeout(exportTimeout)}
	if headers != nil {
		opts = append(opts, otlpmetrichttp.WithHeaders(headers))
	}
	return otlpmetrichttp.New(context.Background(), opts...)
}

func newLogExporter(cfg Config) (log.Exporter, error) {
	headers := parseOTLPHeaders()

	if cfg.grpc() {
		opts := []otlploggrpc.Option{otlploggrpc.WithTimeout(exportTimeout)}
		if headers != nil {
			opts = append(opts, otlploggrpc.WithHeaders(headers))
		}
		return otlploggrpc.New(context.Background(), opts...)
	}

	opts := []otlploghttp.Option{otlploghttp.WithTimeout(exportTimeout)}
	if headers != nil {
		opts = append(opts, otlploghttp.WithHeaders(headers))
	}
	return otlploghttp.New(context.Background(), opts...)
}

// InitTracerProvider installs the global tracer provider and W3C propagators.
//
// Exporter endpoints and auth come from the standard variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT
//   - OTEL_EXPORTER_OTLP_HEADERS
func InitTracerProvider(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	if !cfg.Enabled {
		// SDK provider without processors: spans are created and dropped
		tp := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	traceExporter, err := newTraceExporter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter,
			sdktrace.WithBatchTimeout(5*time.Second),
		),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider, nil
}

// InitMeterProvider installs the global meter provider.
func InitMeterProvider(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	if !cfg.Enabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		return mp, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	metricExporter, err := newMetricExporter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(15*time.Second),
		)),
	)

	otel.SetMeterProvider(meterProvider)

	return meterProvider, nil
}

// InitLogger returns the process logger at cfg.Level. Disabled export logs JSON
// to cfg.Output; enabled export bridges slog into an OTLP log provider.
func InitLogger(ctx context.Context, cfg Config) (*log.LoggerProvider, *slog.Logger, error) {
	if !cfg.Enabled {
		out := cfg.Output
		if out == nil {
			out = os.Stdout
		}
		handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level})
		return log.NewLoggerProvider(), slog.New(handler), nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	logExporter, err := newLogExporter(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	loggerProvider := log.NewLoggerProvider(
		log.WithProcessor(log.NewBatchProcessor(logExporter,
			log.WithExportTimeout(5*time.Second),
		)),
		log.WithResource(res),
	)

	bridge := otelslog.NewHandler(cfg.ServiceName, otelslog.WithLoggerProvider(loggerProvider))

	return loggerProvider, slog.New(withLevel(cfg.Level, bridge)), nil
}
