package notify

import (
	"context"
	"fmt"

	smsClient "restaurant-pos/httpServices/sms"
	"restaurant-pos/logger"
)

type SMSSender struct {
	client *smsClient.SMSClient
}

func NewSMSSender(baseURL, apiKey string) *SMSSender {
	return &SMSSender{client: smsClient.NewClient(baseURL, apiKey)}
}

func (s *SMSSender) Send(ctx context.Context, recipient, body string) error {
	resp, err := s.client.Send(ctx, smsClient.SendSMSRequest{To: recipient, Message: body})
	if err != nil {
		return fmt.Errorf("send sms to %s: %w", recipient, err)
	}
	logger.Debug(fmt.Sprintf("SMS to %s accepted as %s", recipient, resp.MessageID))
	return nil
}
