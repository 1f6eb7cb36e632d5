package invitation

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// TokenPayload is the signed content of an invitation token. It carries just
// enough to locate the invitation and re-check the addressee on acceptance.
type TokenPayload struct {
	InvitationID uuid.UUID `json:"inv"`
	ResourceID   uuid.UUID `json:"res"`
	Email        string    `json:"email"`
}

// Token produces a compact signed token for the invitation: a base64url JSON
// payload followed by an 8-byte truncated HMAC-SHA256 signature.
func Token(inv *Invitation, secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidToken
	}

	data, err := json.Marshal(TokenPayload{
		InvitationID: inv.ID,
		ResourceID:   inv.ResourceID,
		Email:        inv.Email,
	})
	if err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(data)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil)[:8])

	return payload + "." + sig, nil
}

// ParseToken verifies the token signature and decodes the payload.
func ParseToken(token, secret string) (TokenPayload, error) {
	var payload TokenPayload

	parts := strings.Split(token, ".")
	if len(parts) != 2 || secret == "" {
		return payload, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, errors.Join(ErrInvalidToken, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, errors.Join(ErrInvalidToken, err)
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	expected := h.Sum(nil)[:8]

	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return payload, ErrInvalidToken
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, errors.Join(ErrInvalidToken, err)
	}

	return payload, nil
}
