// Package notify delivers short text messages to staff over the configured
// channel.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/config"
	"restaurant-pos/logger"
)

// Sender delivers body to recipient. Recipient is a phone number for SMS and
// an email address for email.
type Sender interface {
	Send(ctx context.Context, recipient, body string) error
}

// AttachmentSender can also ship a file with the message.
type AttachmentSender interface {
	SendAttachment(ctx context.Context, recipient, subject, body, path string) error
}

const (
	ChannelSMS   = "sms"
	ChannelKafka = "kafka"
	ChannelEmail = "email"
	ChannelLog   = "log"
)

// New builds the sender for cfg.Channel.
func New(cfg config.NotifyConfig) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Channel)) {
	case ChannelSMS:
		if cfg.SMSGatewayURL == "" {
			return nil, errors.New("SMS_GATEWAY_URL is required for the sms channel")
		}
		return NewSMSSender(cfg.SMSGatewayURL, cfg.SMSAPIKey), nil
	case ChannelKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required for the kafka channel")
		}
		return NewKafkaSender(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case ChannelEmail:
		if cfg.SMTPHost == "" || cfg.FromEmail == "" {
			return nil, errors.New("SMTP_HOST and FROM_EMAIL are required for the email channel")
		}
		return NewEmailSender(cfg), nil
	case ChannelLog, "":
		return LogSender{}, nil
	default:
		return nil, fmt.Errorf("unknown notification channel %q", cfg.Channel)
	}
}

// NewAdminSender returns an email sender when SMTP is configured and the log
// sender otherwise.
func NewAdminSender(cfg config.NotifyConfig) Sender {
	if cfg.SMTPHost != "" && cfg.FromEmail != "" && cfg.SMTPUser != "" {
		return NewEmailSender(cfg)
	}
	return LogSender{}
}

// LogSender writes the message to the application log.
type LogSender struct{}

func (LogSender) Send(_ context.Context, recipient, body string) error {
	logger.Info(fmt.Sprintf("Notification to %s: %s", recipient, body))
	return nil
}

func (LogSender) SendAttachment(_ context.Context, recipient, subject, body, path string) error {
	logger.Info(fmt.Sprintf("Notification to %s: %s (%s) attachment %s", recipient, subject, body, path))
	return nil
}
