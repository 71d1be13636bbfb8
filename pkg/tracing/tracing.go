// Package tracing 封装OpenTelemetry分布式追踪
//
// 未调用InitTracer时全局Provider是noop实现，StartSpan返回的Span不会上报，
// 业务代码无需判断追踪是否开启。
//
// 链路：
//
//	HTTP请求 → middleware.Tracing()（根Span，路由模板命名）
//	         → 应用层用例（子Span，如CreateBook）
//	         → OTLP gRPC Exporter → Collector（Jaeger/Tempo）
//
// 日志关联：
//
//	log.Printf("trace_id=%s ...", tracing.ExtractTraceID(ctx))
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局Tracer Provider
//
// 参数：
//   - serviceName: 服务名称（在Jaeger UI中显示）
//   - endpoint: Collector的OTLP gRPC端点（如localhost:4317，不含协议前缀）
//
// 返回的shutdown必须在程序退出前调用，否则最后一批Span会丢失。
// Exporter不阻塞等待连接，Collector不可用时启动不会失败。
func InitTracer(serviceName, endpoint string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	return install(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res)), nil
}

// install 设置全局Provider与传播器
func install(opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	opts = append([]sdktrace.TracerProviderOption{sdktrace.WithSampler(sdktrace.AlwaysSample())}, opts...)
	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, // W3C traceparent
			propagation.Baggage{},
		),
	)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
}

// StartSpan 创建一个新的Span
// ctx包含父Span时自动成为子Span，必须用返回的ctx调用下游
//
//	ctx, span := tracing.StartSpan(ctx, "bookshelf/application", "CreateBook")
//	defer span.End()
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName)
}

// RecordError 记录错误并把Span标记为失败（err为nil时忽略）
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// ExtractTraceID 从Context提取TraceID（32位十六进制，无Span时返回空串）
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}
