// Package push delivers mobile notifications through Firebase Cloud Messaging.
package push

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrTokenInvalid marks a device token the provider will never accept again.
var ErrTokenInvalid = errors.New("push token is no longer valid")

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type FCMSender struct {
	client messagingClient
}

// NewFCMSender builds a sender from a base64 encoded service account JSON.
func NewFCMSender(ctx context.Context, credentialsBase64 string) (*FCMSender, error) {
	credentials, err := base64.StdEncoding.DecodeString(credentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("base64.DecodeString -> %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp -> %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Messaging -> %w", err)
	}

	return &FCMSender{client: client}, nil
}

// Send delivers one notification to one device. Errors that mean the token
// is dead wrap ErrTokenInvalid; anything else is worth trying again later.
func (s *FCMSender) Send(ctx context.Context, token, title, body string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	})
	if err == nil {
		return nil
	}

	if IsTerminal(err) {
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return fmt.Errorf("s.client.Send -> %w", err)
}

// IsTerminal reports whether err from FCM means the token must be discarded.
func IsTerminal(err error) bool {
	return messaging.IsUnregistered(err) || errorutils.IsNotFound(err)
}
