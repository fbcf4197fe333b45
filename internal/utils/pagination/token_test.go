package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	paidAt := time.Date(2024, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(paidAt, "pay-123")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, paidAt, decodedAt, "Timestamp should match after decode")
	assert.Equal(t, "pay-123", decodedID, "ID should match after decode")

	// IDs containing the separator survive because only the first one splits.
	pipeToken := EncodeToken(paidAt, "a|b")
	_, pipeID, err := DecodeToken(pipeToken)
	assert.NoError(t, err)
	assert.Equal(t, "a|b", pipeID)

	now := time.Now().UTC()
	nowAt, _, err := DecodeToken(EncodeToken(now, "x"))
	assert.NoError(t, err)
	assert.True(t, now.Equal(nowAt), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=") // "2023-05-15T00:00:00Z" without separator
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken("bm90YWRhdGV8aWQ=") // "notadate|id"
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 10, NormalizeLimit(10))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}
