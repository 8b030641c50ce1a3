package utils

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"promptcraft-backend/pkg/logger"

	"go.uber.org/zap"
)

// LoggingTransport implements http.RoundTripper and logs requests and responses
type LoggingTransport struct {
	Transport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and logs the request and response
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBodyLog := "empty"
	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes)) // Restore body
		if len(bodyBytes) > 0 {
			reqBodyLog = string(bodyBytes)
		}
	}
	log().Debug("outbound request",
		zap.String("method", req.Method),
		zap.Stringer("url", req.URL),
		zap.String("body", truncate(reqBodyLog)),
	)

	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log().Error("outbound request failed",
			zap.String("method", req.Method),
			zap.Stringer("url", req.URL),
			zap.Duration("latency", duration),
			zap.Error(err),
		)
		return nil, err
	}

	respBodyLog := "empty"
	if resp.Body != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes)) // Restore body
		if len(bodyBytes) > 0 {
			respBodyLog = string(bodyBytes)
		}
	}

	log().Debug("outbound response",
		zap.String("method", req.Method),
		zap.Stringer("url", req.URL),
		zap.String("status", resp.Status),
		zap.Duration("latency", duration),
		zap.String("body", truncate(respBodyLog)),
	)

	return resp, nil
}

func truncate(s string) string {
	if len(s) > 2000 {
		return s[:2000] + "...(truncated)"
	}
	return s
}

func log() *zap.Logger {
	if logger.Log != nil {
		return logger.Log
	}
	return zap.NewNop()
}

// NewHTTPClient returns a new http.Client with logging enabled
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
