package connector

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/config"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

// ServiceNowConnector talks to a ServiceNow-style table REST API using basic
// authentication.
type ServiceNowConnector struct {
	cfg    config.ServiceNowConfig
	client *http.Client
	logger *zap.Logger
}

// NewServiceNowConnector builds a connector for the configured instance.
func NewServiceNowConnector(cfg config.ServiceNowConfig, logger *zap.Logger) *ServiceNowConnector {
	return &ServiceNowConnector{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
}

// Get fetches the change-request table.
func (c *ServiceNowConnector) Get(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, nil)
}

// Post creates one change-request record.
func (c *ServiceNowConnector) Post(ctx context.Context, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, body)
}

func (c *ServiceNowConnector) do(ctx context.Context, method string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.TableURL(), reader)
	if err != nil {
		return nil, apperrors.NewTransportError("build request", err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("connector call failed", zap.String("method", method), zap.Error(err))
		return nil, apperrors.NewTransportError("remote service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError("read response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("connector call rejected",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewRemoteStatusError(resp.StatusCode)
	}

	return &Response{StatusCode: resp.StatusCode, Body: string(raw)}, nil
}
