package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// SteamAlphabet is the symbol set of Steam Guard codes.
const SteamAlphabet = "23456789BCDFGHJKMNPQRTVWXY"

// SteamCodeLength is the number of symbols in a Steam Guard code.
const SteamCodeLength = 5

const steamPeriod = 30

// GenerateSteamCode returns the Steam Guard code for a standard Base64
// secret at time at. The period is fixed at 30 seconds.
func GenerateSteamCode(secret string, at time.Time, offset int64) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", ErrEmptySecret
	}

	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		// secrets copied without padding
		key, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(secret, "="))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidSecret, err)
		}
	}

	shifted, err := shift(at, offset)
	if err != nil {
		return "", err
	}

	value := truncate(key, uint64(shifted.Unix())/steamPeriod)

	var sb strings.Builder
	sb.Grow(SteamCodeLength)
	for range SteamCodeLength {
		sb.WriteByte(SteamAlphabet[value%uint32(len(SteamAlphabet))])
		value /= uint32(len(SteamAlphabet))
	}

	return sb.String(), nil
}

// truncate computes HMAC-SHA1 over the big-endian counter and applies
// RFC 4226 dynamic truncation, returning the 31-bit result.
func truncate(key []byte, counter uint64) uint32 {
	msg := make([]byte, 8)
	binary.BigEndian.PutUint64(msg, counter)

	h := hmac.New(sha1.New, key)
	h.Write(msg)
	sum := h.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
}
