package telegramlogin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

// UserData is the payload the Telegram Login widget posts back to the page.
type UserData struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

var (
	ErrInvalidHash = errors.New("telegram login hash mismatch")
	ErrExpired     = errors.New("telegram login data expired")
)

// Verify checks the widget payload against the bot token per the Telegram
// Login spec: hash = HMAC-SHA256(data-check-string, SHA256(bot_token)).
func Verify(d UserData, botToken string, maxAge time.Duration, now time.Time) error {
	if d.Hash == "" {
		return ErrInvalidHash
	}
	expected := Sign(d, botToken)
	if !hmac.Equal([]byte(expected), []byte(d.Hash)) {
		return ErrInvalidHash
	}
	if maxAge > 0 && now.Sub(time.Unix(d.AuthDate, 0)) > maxAge {
		return ErrExpired
	}
	return nil
}

// Sign computes the widget hash for a payload. The production hash comes
// from Telegram; this exists for tests and local tooling.
func Sign(d UserData, botToken string) string {
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(checkString(d)))
	return hex.EncodeToString(mac.Sum(nil))
}

// checkString builds the data-check-string: sorted "key=value" lines over
// the present fields, excluding hash itself.
func checkString(d UserData) string {
	fields := map[string]string{
		"auth_date":  strconv.FormatInt(d.AuthDate, 10),
		"first_name": d.FirstName,
		"id":         strconv.FormatInt(d.ID, 10),
	}
	if d.LastName != "" {
		fields["last_name"] = d.LastName
	}
	if d.Username != "" {
		fields["username"] = d.Username
	}
	if d.PhotoURL != "" {
		fields["photo_url"] = d.PhotoURL
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}
	return strings.Join(lines, "\n")
}
