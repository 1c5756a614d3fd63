package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seuros/cypher-dsl/src/cypher"
	"github.com/seuros/cypher-dsl/src/parser"
)

const (
	instrumentationName    = "github.com/seuros/cypher-dsl/src/telemetry"
	instrumentationVersion = "0.1.0"
)

// Config controls telemetry collection for statement rendering and
// parsing.
type Config struct {
	// EnableTracing enables OpenTelemetry distributed tracing
	EnableTracing bool

	// EnableMetrics enables OpenTelemetry metrics collection
	EnableMetrics bool

	// TracingAttributes are additional attributes to add to all spans
	TracingAttributes []attribute.KeyValue

	// MetricAttributes are additional attributes to add to all metrics
	MetricAttributes []attribute.KeyValue
}

// DefaultConfig enables both signals with the library attributes set.
func DefaultConfig() *Config {
	return &Config{
		EnableTracing: true,
		EnableMetrics: true,
		TracingAttributes: []attribute.KeyValue{
			attribute.String("db.system", "neo4j"),
			attribute.String("db.builder", "cypher-dsl"),
			attribute.String("db.builder.version", instrumentationVersion),
		},
		MetricAttributes: []attribute.KeyValue{
			attribute.String("db.system", "neo4j"),
			attribute.String("db.builder", "cypher-dsl"),
		},
	}
}

type instruments struct {
	tracer trace.Tracer
	meter  metric.Meter

	renderDuration metric.Float64Histogram
	renderCount    metric.Int64Counter
	renderErrors   metric.Int64Counter
	clauseCount    metric.Int64Histogram
	parseCount     metric.Int64Counter
	parseErrors    metric.Int64Counter
}

func initInstruments() *instruments {
	tracer := otel.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
	meter := otel.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))

	in := &instruments{tracer: tracer, meter: meter}

	var err error

	in.renderDuration, err = meter.Float64Histogram(
		"db.statement.render.duration",
		metric.WithDescription("Duration of statement rendering"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.renderCount, err = meter.Int64Counter(
		"db.statement.render.count",
		metric.WithDescription("Number of statements rendered"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.renderErrors, err = meter.Int64Counter(
		"db.statement.render.errors",
		metric.WithDescription("Number of failed render attempts"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.clauseCount, err = meter.Int64Histogram(
		"db.statement.clauses",
		metric.WithDescription("Clause count per rendered statement"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.parseCount, err = meter.Int64Counter(
		"db.statement.parse.count",
		metric.WithDescription("Number of statements parsed"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.parseErrors, err = meter.Int64Counter(
		"db.statement.parse.errors",
		metric.WithDescription("Number of failed parse attempts"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return in
}

// Session wraps rendering and parsing with spans and metrics. Sessions are
// safe for concurrent use; each carries a stable id attached to its spans.
type Session struct {
	id     string
	config *Config
	in     *instruments
	parser *parser.Parser
	opts   cypher.RenderOptions
}

// NewSession creates an instrumented session with default render options.
func NewSession(config *Config) (*Session, error) {
	return NewSessionWithOptions(config, cypher.DefaultRenderOptions())
}

// NewSessionWithOptions creates an instrumented session rendering with the
// given options.
func NewSessionWithOptions(config *Config, opts cypher.RenderOptions) (*Session, error) {
	if config == nil {
		config = DefaultConfig()
	}
	p, err := parser.New()
	if err != nil {
		return nil, err
	}
	return &Session{
		id:     uuid.NewString(),
		config: config,
		in:     initInstruments(),
		parser: p,
		opts:   opts,
	}, nil
}

// ID reports the session identifier attached to spans.
func (s *Session) ID() string { return s.id }

// Render serializes a chain, recording a span and duration metrics.
func (s *Session) Render(ctx context.Context, q *cypher.Query) (string, error) {
	var span trace.Span
	if s.config.EnableTracing {
		attrs := make([]attribute.KeyValue, 0, len(s.config.TracingAttributes)+2)
		attrs = append(attrs, s.config.TracingAttributes...)
		attrs = append(attrs,
			attribute.String("db.session.id", s.id),
			attribute.Int("db.statement.clause_count", q.Len()),
		)
		_, span = s.in.tracer.Start(ctx, "cypher.render",
			trace.WithAttributes(attrs...),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
	}

	start := time.Now()
	out, err := cypher.RenderWithOptions(q, s.opts)
	duration := time.Since(start)

	if s.config.EnableMetrics {
		attrs := metric.WithAttributes(s.config.MetricAttributes...)
		s.in.renderDuration.Record(context.Background(), duration.Seconds(), attrs)
		if err != nil {
			s.in.renderErrors.Add(context.Background(), 1, attrs)
		} else {
			s.in.renderCount.Add(context.Background(), 1, attrs)
			s.in.clauseCount.Record(context.Background(), int64(q.Len()), attrs)
		}
	}

	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("db.statement.length", len(out)))
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	return out, err
}

// Parse reads statement text back into a chain, recording a span and
// counters.
func (s *Session) Parse(ctx context.Context, text string) (*cypher.Query, error) {
	var span trace.Span
	if s.config.EnableTracing {
		attrs := make([]attribute.KeyValue, 0, len(s.config.TracingAttributes)+2)
		attrs = append(attrs, s.config.TracingAttributes...)
		attrs = append(attrs,
			attribute.String("db.session.id", s.id),
			attribute.Int("db.statement.length", len(text)),
		)
		_, span = s.in.tracer.Start(ctx, "cypher.parse",
			trace.WithAttributes(attrs...),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
	}

	q, err := s.parser.Parse(text)

	if s.config.EnableMetrics {
		attrs := metric.WithAttributes(s.config.MetricAttributes...)
		if err != nil {
			s.in.parseErrors.Add(context.Background(), 1, attrs)
		} else {
			s.in.parseCount.Add(context.Background(), 1, attrs)
		}
	}

	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	return q, err
}

// Format parses statement text and re-renders it canonically.
func (s *Session) Format(ctx context.Context, text string) (string, error) {
	q, err := s.Parse(ctx, text)
	if err != nil {
		return "", err
	}
	return s.Render(ctx, q)
}
