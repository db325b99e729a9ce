package telegramlogin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:ABC-test-token"

func testUser(now time.Time) UserData {
	return UserData{
		ID:        777000,
		FirstName: "Dana",
		LastName:  "Levi",
		Username:  "dana",
		AuthDate:  now.Unix(),
	}
}

func TestVerifyRoundtrip(t *testing.T) {
	now := time.Now()
	d := testUser(now)
	d.Hash = Sign(d, testBotToken)
	require.NoError(t, Verify(d, testBotToken, 24*time.Hour, now))
}

func TestVerifyMinimalFields(t *testing.T) {
	now := time.Now()
	d := UserData{ID: 1, FirstName: "A", AuthDate: now.Unix()}
	d.Hash = Sign(d, testBotToken)
	require.NoError(t, Verify(d, testBotToken, 24*time.Hour, now))
}

func TestVerifyTamperedPayload(t *testing.T) {
	now := time.Now()
	d := testUser(now)
	d.Hash = Sign(d, testBotToken)
	d.FirstName = "Mallory"
	assert.ErrorIs(t, Verify(d, testBotToken, 24*time.Hour, now), ErrInvalidHash)
}

func TestVerifyWrongToken(t *testing.T) {
	now := time.Now()
	d := testUser(now)
	d.Hash = Sign(d, "999999:other-token")
	assert.ErrorIs(t, Verify(d, testBotToken, 24*time.Hour, now), ErrInvalidHash)
}

func TestVerifyMissingHash(t *testing.T) {
	now := time.Now()
	assert.ErrorIs(t, Verify(testUser(now), testBotToken, 24*time.Hour, now), ErrInvalidHash)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Now()
	d := testUser(now.Add(-48 * time.Hour))
	d.Hash = Sign(d, testBotToken)
	assert.ErrorIs(t, Verify(d, testBotToken, 24*time.Hour, now), ErrExpired)
}
