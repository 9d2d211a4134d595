package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"organic/config"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/service"
)

// webhookTimestampTolerance bounds how stale or future-dated a delivery may be.
const webhookTimestampTolerance = 5 * time.Minute

// webhookVerifier implements the delivery-signature scheme used by the
// identity provider's webhooks: HMAC-SHA256 over "id.timestamp.body" with a
// base64 secret carried behind a "whsec_" prefix. The signature header lists
// one or more space-separated "v1,<base64 mac>" entries; any single match
// accepts the delivery.
type webhookVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewWebhookVerifier is the constructor for webhookVerifier.
func NewWebhookVerifier(cfg *config.Config) (service.WebhookVerifier, error) {
	return newWebhookVerifier(cfg.Clerk.WebhookSecret, time.Now)
}

func newWebhookVerifier(rawSecret string, now func() time.Time) (service.WebhookVerifier, error) {
	if rawSecret == "" {
		return nil, domainerrors.ErrWebhookNotConfigured
	}

	secret, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(rawSecret, "whsec_"))
	if err != nil {
		return nil, domainerrors.ErrWebhookNotConfigured.WrapMessage("webhook secret is not valid base64")
	}

	return &webhookVerifier{
		secret: secret,
		now:    now,
	}, nil
}

// Verify checks the delivery signature over the raw payload.
func (v *webhookVerifier) Verify(payload []byte, msgID, timestamp, signatures string) error {
	if msgID == "" || timestamp == "" || signatures == "" {
		return domainerrors.ErrWebhookSignature.WrapMessage("missing webhook headers")
	}

	if err := v.checkTimestamp(timestamp); err != nil {
		return err
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, entry := range strings.Fields(signatures) {
		version, sig, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}

		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return domainerrors.ErrWebhookSignature
}

func (v *webhookVerifier) checkTimestamp(timestamp string) error {
	seconds, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return domainerrors.ErrWebhookSignature.WrapMessage("invalid webhook timestamp")
	}

	sent := time.Unix(seconds, 0)
	now := v.now()
	if sent.Before(now.Add(-webhookTimestampTolerance)) || sent.After(now.Add(webhookTimestampTolerance)) {
		return domainerrors.ErrWebhookSignature.WrapMessage("webhook timestamp outside tolerance")
	}

	return nil
}
