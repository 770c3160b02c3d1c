package services

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
)

// PayEndpoint is the PhonePe pay API path; it is part of the signed string.
const PayEndpoint = "/pg/v1/pay"

const checksumSeparator = "###"

// CalculateChecksum computes the X-VERIFY value:
// hex(sha256(payload + endpoint + saltKey)) + "###" + saltKeyIndex.
func CalculateChecksum(payload, endpoint, saltKey, saltKeyIndex string) string {
	sum := sha256.Sum256([]byte(payload + endpoint + saltKey))
	return hex.EncodeToString(sum[:]) + checksumSeparator + saltKeyIndex
}

// VerifyChecksum recomputes the checksum and compares it in constant time.
func VerifyChecksum(got, payload, endpoint, saltKey, saltKeyIndex string) bool {
	want := CalculateChecksum(payload, endpoint, saltKey, saltKeyIndex)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// EncodePayload renders v as JSON and base64-encodes it.
func EncodePayload(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
