package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeEntryCursor(t *testing.T) {
	entryDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeEntryCursor(entryDate, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedSeq, err := DecodeEntryCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, entryDate, decodedDate, "Entry date should match after decode")
	assert.Equal(t, 42, decodedSeq, "Sequence should match after decode")
}

func TestDecodeEntryCursorError(t *testing.T) {
	_, _, err := DecodeEntryCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSep := base64.URLEncoding.EncodeToString([]byte("2024-03-15"))
	_, _, err = DecodeEntryCursor(noSep)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|3"))
	_, _, err = DecodeEntryCursor(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")

	badSeq := base64.URLEncoding.EncodeToString([]byte("2024-03-15|zero"))
	_, _, err = DecodeEntryCursor(badSeq)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sequence parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, MaxLimit, ClampLimit(10_000))
}
