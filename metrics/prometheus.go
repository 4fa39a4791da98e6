package metrics

import (
	"sync"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

var (
	initOnce sync.Once
	initErr  error
)

// InitPrometheus installs a Prometheus backed meter provider as the global one.
// Only the first call does any work.
func InitPrometheus() error {
	initOnce.Do(func() {
		initErr = initPrometheus()
	})
	return initErr
}

func initPrometheus() error {
	exporter, err := prometheus.New()
	if err != nil {
		return errors.Wrap(err, "failed to create prometheus instance")
	}
	provider := metric.NewMeterProvider(metric.WithReader(exporter))

	otel.SetMeterProvider(provider)

	if err := runtime.Start(); err != nil {
		return errors.Wrap(err, "failed to start runtime")
	}

	return nil
}
