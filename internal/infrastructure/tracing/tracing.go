package tracing

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var (
	providerOnce sync.Once
	provider     *sdktrace.TracerProvider
	providerErr  error
)

// Init installs a global tracer provider exporting spans as JSON to w. Only the first call
// has an effect; later calls return the outcome of the first one.
func Init(serviceName, serviceVersion string, w io.Writer) (func(context.Context) error, error) {
	providerOnce.Do(func() {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			providerErr = fmt.Errorf("stdout exporter: %w", err)
			return
		}
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = fmt.Errorf("trace resource: %w", err)
			return
		}
		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(provider)
	})
	if providerErr != nil {
		return nil, providerErr
	}
	return provider.Shutdown, nil
}

// Middleware opens a server span per request and records 5xx responses as errors.
func Middleware(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(serviceName + "/http")
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath(),
			trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.Int("http.status_code", status),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}
	}
}
