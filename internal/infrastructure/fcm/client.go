package fcm

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging for journal push alerts. Without
// credentials it stays disabled and every send is a no-op error.
type Client struct {
	client *messaging.Client
	log    zerolog.Logger
}

// NewClient initializes FCM from FIREBASE_CREDENTIALS_PATH or
// FIREBASE_CREDENTIALS_JSON. Missing credentials disable push rather than
// fail startup: the journal works fine without notifications.
func NewClient(log zerolog.Logger) (*Client, error) {
	ctx := context.Background()

	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		if credJSON == "" {
			log.Warn().Msg("no firebase credentials, push notifications disabled")
			return &Client{log: log}, nil
		}

		tmpFile, err := os.CreateTemp("", "firebase-credentials-*.json")
		if err != nil {
			return nil, fmt.Errorf("creating credentials temp file: %w", err)
		}
		defer tmpFile.Close()

		if _, err := tmpFile.Write([]byte(credJSON)); err != nil {
			return nil, fmt.Errorf("writing credentials: %w", err)
		}
		credPath = tmpFile.Name()
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting messaging client: %w", err)
	}

	log.Info().Msg("firebase cloud messaging initialized")
	return &Client{client: client, log: log}, nil
}

// IsEnabled reports whether credentials were configured.
func (c *Client) IsEnabled() bool {
	return c.client != nil
}

// SendMulticast pushes a notification to every registered device.
func (c *Client) SendMulticast(tokens []string, title, body string, data map[string]string) error {
	if c.client == nil {
		return fmt.Errorf("fcm client not initialized")
	}
	if len(tokens) == 0 {
		return nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "journal_alerts",
				Priority:  messaging.PriorityHigh,
			},
		},
	}

	resp, err := c.client.SendEachForMulticast(context.Background(), message)
	if err != nil {
		return fmt.Errorf("sending multicast: %w", err)
	}

	c.log.Debug().
		Int("success", resp.SuccessCount).
		Int("failure", resp.FailureCount).
		Msg("push notification sent")
	return nil
}
