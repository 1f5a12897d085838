package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrBadSignature = errors.New("bad session cookie signature")

// Codec signs session ids so a forged cookie cannot address another
// session's store entry.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode returns "<id>.<signature>".
func (c *Codec) Encode(id string) string {
	return id + "." + c.sign(id)
}

// Decode verifies the signature and returns the embedded id.
func (c *Codec) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(strings.TrimSpace(value), ".")
	if !ok || id == "" || sig == "" {
		return "", ErrBadSignature
	}
	expected := c.sign(id)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return "", ErrBadSignature
	}
	return id, nil
}

func (c *Codec) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
