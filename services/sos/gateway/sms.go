package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/codeforher/backend/internal/pkg/apperr"
	httpclient "github.com/codeforher/backend/internal/pkg/http"
	"github.com/codeforher/backend/internal/pkg/models"
)

// TwilioGateway sends SMS messages through the Twilio REST API
type TwilioGateway struct {
	client *httpclient.Client
	config models.TwilioConfig
}

// NewTwilioGateway creates a new Twilio SMS gateway
func NewTwilioGateway(config models.TwilioConfig) *TwilioGateway {
	return &TwilioGateway{
		client: httpclient.NewClient(config.BaseURL, 15*time.Second,
			httpclient.WithBasicAuth(config.AccountSID, config.AuthToken)),
		config: config,
	}
}

// SendSMS sends one text message from the configured sender number. One call
// is exactly one delivery attempt; callers decide what a failure means.
func (g *TwilioGateway) SendSMS(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("From", g.config.PhoneNumber)
	form.Set("To", to)
	form.Set("Body", body)

	path := fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", g.config.AccountSID)
	if err := g.client.PostForm(ctx, path, form, nil); err != nil {
		return fmt.Errorf("%w: sms gateway: %v", apperr.ErrUpstream, err)
	}
	return nil
}
