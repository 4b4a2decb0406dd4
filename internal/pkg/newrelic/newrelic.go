package newrelic

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/codeforher/backend/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when disabled; callers must tolerate a nil application.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		log.Printf("failed to initialize New Relic, continuing without it: %v", err)
		return nil
	}

	return nrApp
}

// EchoMiddleware starts a New Relic transaction per request and stores it on
// the request context for downstream instrumentation.
func EchoMiddleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if nrApp == nil {
				return next(c)
			}

			txn := nrApp.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			w := txn.SetWebResponse(c.Response().Writer)
			c.Response().Writer = w

			ctx := newrelic.NewContext(c.Request().Context(), txn)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// InstrumentHTTPRequest wraps an outbound HTTP call in an external segment
func InstrumentHTTPRequest(req *http.Request, call func() (*http.Response, error)) (*http.Response, error) {
	txn := newrelic.FromContext(req.Context())
	if txn == nil {
		return call()
	}

	seg := newrelic.StartExternalSegment(txn, req)
	resp, err := call()
	seg.Response = resp
	seg.End()
	return resp, err
}
