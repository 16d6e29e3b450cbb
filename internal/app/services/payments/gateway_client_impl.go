package payments

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type gatewayClient struct {
	BaseUrl    string
	KeyID      string
	KeySecret  string
	HTTPClient *http.Client
}

func NewGatewayClient(internalConfig *config.InternalConfig) contracts.PaymentGatewayClient {
	return &gatewayClient{
		BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
		KeyID:     internalConfig.PaymentGateway.KeyID,
		KeySecret: internalConfig.PaymentGateway.KeySecret,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.PaymentGateway.TimeoutInSeconds) * time.Second,
		},
	}
}

func (c *gatewayClient) CreateOrder(ctx context.Context, request *requests.GatewayOrder) (*responses.GatewayOrder, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/orders", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrGatewayCreateOrder(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrGatewayCreateOrder(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, exceptions.ErrGatewayCreateOrder(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	order := new(responses.GatewayOrder)
	if err := json.NewDecoder(resp.Body).Decode(order); err != nil {
		return nil, exceptions.ErrGatewayCreateOrder(err)
	}
	return order, nil
}
