package mailchannels

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	statusDelivered = "delivered"
	statusRejected  = "rejected"
	statusFailed    = "failed"
)

const instrumentationName = "github.com/pure-golang/mailchannels/mail/mailchannels"

var (
	meter = otel.GetMeterProvider().Meter(instrumentationName)
	// nolint:errcheck // Sync OpenTelemetry instruments never return errors
	sendCount, _    = meter.Int64Counter("mailchannels.send_count")
	sendTimeHist, _ = meter.Int64Histogram("mailchannels.send_time", metric.WithUnit("ms"))
)
