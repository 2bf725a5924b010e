// Package push delivers reminder notifications through Firebase Cloud
// Messaging.
package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"chambers/internal/application/reminder/usecases"
	"chambers/internal/shared/config"
	"chambers/internal/shared/logger"
)

// FCMSender implements the reminder pipeline's push port on top of the FCM
// multicast API. One SendEachForMulticast call covers all of a recipient's
// tokens; per-token failures surface in the result, never as an error.
type FCMSender struct {
	client *messaging.Client
	logger logger.Interface
}

// NewFCMSender builds the sender from service account credentials. The
// client is injected into the dispatcher at construction, not looked up
// through a process-wide singleton.
func NewFCMSender(ctx context.Context, cfg *config.PushConfig, logger logger.Interface) (*FCMSender, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	return &FCMSender{
		client: client,
		logger: logger.With("component", "push.fcm"),
	}, nil
}

func (s *FCMSender) SendMulticast(ctx context.Context, tokens []string, msg usecases.PushMessage) (*usecases.MulticastResult, error) {
	if len(tokens) == 0 {
		return &usecases.MulticastResult{}, nil
	}

	batch, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast: %w", err)
	}

	result := &usecases.MulticastResult{
		SuccessCount: batch.SuccessCount,
		FailureCount: batch.FailureCount,
		Results:      make([]usecases.TokenResult, len(batch.Responses)),
	}
	for i, resp := range batch.Responses {
		result.Results[i] = usecases.TokenResult{Token: tokens[i], Err: resp.Error}
		if resp.Error != nil {
			s.logger.Debugw("token delivery failed",
				"token_suffix", tokenSuffix(tokens[i]),
				"error", resp.Error,
			)
		}
	}

	return result, nil
}

// tokenSuffix keeps full device tokens out of the logs.
func tokenSuffix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return "..." + token[len(token)-8:]
}
