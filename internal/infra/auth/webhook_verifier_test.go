package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookKey = "0123456789abcdef0123456789abcdef"

func testSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString([]byte(testWebhookKey))
}

func signPayload(key []byte, msgID, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.%s", msgID, timestamp, payload)

	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestWebhookVerifier_Verify(t *testing.T) {
	now := time.Now()
	verifier, err := newWebhookVerifier(testSecret(), func() time.Time { return now })
	require.NoError(t, err)

	payload := []byte(`{"type":"user.created","data":{"id":"user_123"}}`)
	msgID := "msg_2a7"
	timestamp := strconv.FormatInt(now.Unix(), 10)
	signature := signPayload([]byte(testWebhookKey), msgID, timestamp, payload)

	assert.NoError(t, verifier.Verify(payload, msgID, timestamp, signature))
}

func TestWebhookVerifier_Verify_AcceptsAnyMatchingSignature(t *testing.T) {
	now := time.Now()
	verifier, err := newWebhookVerifier(testSecret(), func() time.Time { return now })
	require.NoError(t, err)

	payload := []byte(`{}`)
	timestamp := strconv.FormatInt(now.Unix(), 10)
	good := signPayload([]byte(testWebhookKey), "msg_1", timestamp, payload)
	bad := "v1," + base64.StdEncoding.EncodeToString([]byte("not-a-real-signature------------"))

	assert.NoError(t, verifier.Verify(payload, "msg_1", timestamp, bad+" "+good))
}

func TestWebhookVerifier_Verify_RejectsTamperedPayload(t *testing.T) {
	now := time.Now()
	verifier, err := newWebhookVerifier(testSecret(), func() time.Time { return now })
	require.NoError(t, err)

	timestamp := strconv.FormatInt(now.Unix(), 10)
	signature := signPayload([]byte(testWebhookKey), "msg_1", timestamp, []byte(`{"a":1}`))

	assert.Error(t, verifier.Verify([]byte(`{"a":2}`), "msg_1", timestamp, signature))
}

func TestWebhookVerifier_Verify_RejectsWrongKey(t *testing.T) {
	now := time.Now()
	verifier, err := newWebhookVerifier(testSecret(), func() time.Time { return now })
	require.NoError(t, err)

	payload := []byte(`{}`)
	timestamp := strconv.FormatInt(now.Unix(), 10)
	signature := signPayload([]byte("ffffffffffffffffffffffffffffffff"), "msg_1", timestamp, payload)

	assert.Error(t, verifier.Verify(payload, "msg_1", timestamp, signature))
}

func TestWebhookVerifier_Verify_RejectsStaleTimestamp(t *testing.T) {
	now := time.Now()
	verifier, err := newWebhookVerifier(testSecret(), func() time.Time { return now })
	require.NoError(t, err)

	payload := []byte(`{}`)
	stale := strconv.FormatInt(now.Add(-10*time.Minute).Unix(), 10)
	signature := signPayload([]byte(testWebhookKey), "msg_1", stale, payload)

	assert.Error(t, verifier.Verify(payload, "msg_1", stale, signature))
}

func TestWebhookVerifier_Verify_RejectsMissingHeaders(t *testing.T) {
	verifier, err := newWebhookVerifier(testSecret(), time.Now)
	require.NoError(t, err)

	assert.Error(t, verifier.Verify([]byte(`{}`), "", "", ""))
}

func TestNewWebhookVerifier_RequiresSecret(t *testing.T) {
	_, err := newWebhookVerifier("", time.Now)
	assert.Error(t, err)
}
