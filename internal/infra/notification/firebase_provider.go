// Package notification implements the push provider on Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"time"

	"pushrelay/config"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	defaultWebpushIcon  = "/icon-192x192.png"
	defaultWebpushBadge = "/badge-72x72.png"
	defaultWebpushLink  = "/"
)

// messagingClient is the subset of *messaging.Client the provider uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseProvider struct {
	client messagingClient
	now    func() time.Time
}

// ProviderParams holds dependencies for the PushProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushProvider creates the Firebase provider, or an unavailable provider when
// no credentials are configured so the rest of the API keeps serving.
func NewPushProvider(params ProviderParams) (service.PushProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase not configured, notifications will fail with provider unavailable")

		return unavailableProvider{}, nil
	}

	provider, err := NewFirebaseProvider(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Firebase messaging initialized", slog.String("project_id", cfg.ProjectID))

	return provider, nil
}

// NewFirebaseProvider creates a Firebase Cloud Messaging provider.
// CredentialsPath may be a local file or a file:// or gs:// blob URL.
func NewFirebaseProvider(ctx context.Context, cfg *config.FirebaseConfig) (service.PushProvider, error) {
	var opt option.ClientOption
	if isBlobURL(cfg.CredentialsPath) {
		data, err := readBlobCredentials(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		opt = option.WithCredentialsJSON(data)
	} else {
		opt = option.WithCredentialsFile(cfg.CredentialsPath)
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseProvider(client, time.Now), nil
}

func newFirebaseProvider(client messagingClient, now func() time.Time) *firebaseProvider {
	return &firebaseProvider{client: client, now: now}
}

// SendSingle sends a push notification to a single device token
func (p *firebaseProvider) SendSingle(ctx context.Context, token string, msg *service.PushMessage) (*service.SingleResult, error) {
	message := &messaging.Message{
		Token:        token,
		Notification: p.notification(msg),
		Data:         p.data(msg),
		Webpush:      p.webpush(msg, true),
	}

	messageID, err := p.client.Send(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send notification")
	}

	return &service.SingleResult{MessageID: messageID}, nil
}

// SendBatch sends push notifications to up to 500 device tokens in one multicast call
func (p *firebaseProvider) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return nil, errors.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: p.notification(msg),
		Data:         p.data(msg),
		Webpush:      p.webpush(msg, false),
	}

	response, err := p.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]service.SendResponse, 0, len(response.Responses)),
	}

	for _, sendResponse := range response.Responses {
		resp := service.SendResponse{
			Success:   sendResponse.Success,
			MessageID: sendResponse.MessageID,
		}
		if sendResponse.Error != nil {
			resp.Error = sendResponse.Error.Error()
			// Invalid or unregistered tokens will never succeed again
			resp.Unregistered = messaging.IsUnregistered(sendResponse.Error) ||
				messaging.IsInvalidArgument(sendResponse.Error)
		}
		result.Responses = append(result.Responses, resp)
	}

	return result, nil
}

func (p *firebaseProvider) notification(msg *service.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title:    msg.Title,
		Body:     msg.Body,
		ImageURL: msg.Image,
	}
}

// data copies the caller payload and adds the click target and send time.
func (p *firebaseProvider) data(msg *service.PushMessage) map[string]string {
	data := make(map[string]string, len(msg.Data)+2)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["click_action"] = msg.ClickAction
	data["timestamp"] = p.now().UTC().Format(time.RFC3339)

	return data
}

func (p *firebaseProvider) webpush(msg *service.PushMessage, withActions bool) *messaging.WebpushConfig {
	icon := msg.Icon
	if icon == "" {
		icon = defaultWebpushIcon
	}
	link := msg.ClickAction
	if link == "" {
		link = defaultWebpushLink
	}

	notification := &messaging.WebpushNotification{
		Title:              msg.Title,
		Body:               msg.Body,
		Icon:               icon,
		Badge:              defaultWebpushBadge,
		Image:              msg.Image,
		RequireInteraction: true,
	}
	if withActions {
		notification.Actions = []*messaging.WebpushNotificationAction{
			{Action: "view", Title: "View"},
			{Action: "dismiss", Title: "Dismiss"},
		}
	}

	return &messaging.WebpushConfig{
		Headers:      map[string]string{"Urgency": "high"},
		Notification: notification,
		FCMOptions:   &messaging.WebpushFCMOptions{Link: link},
	}
}

// unavailableProvider fails every send; it stands in when Firebase is not configured.
type unavailableProvider struct{}

func (unavailableProvider) SendSingle(context.Context, string, *service.PushMessage) (*service.SingleResult, error) {
	return nil, errors.WithStack(domainerrors.ErrProviderUnavailable)
}

func (unavailableProvider) SendBatch(context.Context, []string, *service.PushMessage) (*service.BatchResult, error) {
	return nil, errors.WithStack(domainerrors.ErrProviderUnavailable)
}
