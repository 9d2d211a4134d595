package service

// WebhookVerifier defines the interface for verifying signed webhook deliveries
// from the identity provider.
type WebhookVerifier interface {
	// Verify checks the delivery signature over the raw payload. The headers
	// carry the message id, the signing timestamp, and one or more signatures.
	Verify(payload []byte, msgID, timestamp, signatures string) error
}
