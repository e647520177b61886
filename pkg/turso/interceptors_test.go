package turso_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis/turso/pkg/turso"
)

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "debug: "+msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "info: "+msg)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "warn: "+msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "error: "+msg)
}

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	chain := turso.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *turso.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *turso.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &turso.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_RequestErrorStopsChain(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	reached := false

	chain := turso.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *turso.Request) error {
		return errBoom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *turso.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &turso.Request{})
	require.ErrorIs(t, err, errBoom)
	assert.False(t, reached)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &turso.Request{Method: "GET", Path: "/v1/locations"}

	err := turso.LoggingInterceptor(logger)(context.Background(), req)
	require.NoError(t, err)

	err = turso.LoggingResponseInterceptor(logger)(context.Background(), req, &turso.Response{StatusCode: 200})
	require.NoError(t, err)

	err = turso.LoggingResponseInterceptor(logger)(context.Background(), req, &turso.Response{
		StatusCode: 500,
		Error:      errors.New("oops"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"debug: API Request", "debug: API Response", "error: API Response Error"}, logger.entries)
}

func TestAuthenticationInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("sets bearer header", func(t *testing.T) {
		t.Parallel()

		interceptor := turso.AuthenticationInterceptor(func(ctx context.Context) (string, error) {
			return "secret", nil
		})

		req := &turso.Request{}
		require.NoError(t, interceptor(context.Background(), req))
		assert.Equal(t, "Bearer secret", req.Headers.Get("Authorization"))
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		t.Parallel()

		errToken := errors.New("no token")
		interceptor := turso.AuthenticationInterceptor(func(ctx context.Context) (string, error) {
			return "", errToken
		})

		err := interceptor(context.Background(), &turso.Request{})
		require.ErrorIs(t, err, errToken)
	})
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := turso.HeaderInterceptor(map[string]string{"X-Custom": "value"})

	req := &turso.Request{Headers: http.Header{}}
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "value", req.Headers.Get("X-Custom"))
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := turso.NewMetricsCollector()

	var changed string

	collector.SetOnChange(func(endpoint string, metrics *turso.Metrics) {
		changed = endpoint
	})

	req := &turso.Request{Method: "GET", Path: "/v1/locations"}
	ctx := context.Background()

	require.NoError(t, turso.MetricsRequestInterceptor(collector)(ctx, req))
	require.NoError(t, turso.MetricsResponseInterceptor(collector)(ctx, req, &turso.Response{StatusCode: 200}))
	require.NoError(t, turso.MetricsRequestInterceptor(collector)(ctx, req))
	require.NoError(t, turso.MetricsResponseInterceptor(collector)(ctx, req, &turso.Response{StatusCode: 503}))

	metrics := collector.GetMetrics("GET /v1/locations")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Equal(t, "GET /v1/locations", changed)

	assert.Nil(t, collector.GetMetrics("POST /v1/unknown"))
}
