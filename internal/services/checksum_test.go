package services

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"testing"
)

var checksumFormat = regexp.MustCompile(`^[0-9a-f]{64}###.+$`)

func TestCalculateChecksumMatchesProtocol(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte(`{"merchantId":"M1"}`))
	sum := sha256.Sum256([]byte(payload + "/pg/v1/pay" + "salt"))
	want := hex.EncodeToString(sum[:]) + "###1"

	if got := CalculateChecksum(payload, PayEndpoint, "salt", "1"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestCalculateChecksumDeterministic(t *testing.T) {
	base := CalculateChecksum("cGF5bG9hZA==", "/pg/v1/pay", "salt", "1")
	if again := CalculateChecksum("cGF5bG9hZA==", "/pg/v1/pay", "salt", "1"); again != base {
		t.Fatalf("checksum not deterministic: %s vs %s", base, again)
	}
	if !checksumFormat.MatchString(base) {
		t.Fatalf("checksum %q does not match format", base)
	}

	variants := map[string]string{
		"payload":  CalculateChecksum("b3RoZXI=", "/pg/v1/pay", "salt", "1"),
		"endpoint": CalculateChecksum("cGF5bG9hZA==", "/pg/v1/status", "salt", "1"),
		"salt":     CalculateChecksum("cGF5bG9hZA==", "/pg/v1/pay", "pepper", "1"),
		"index":    CalculateChecksum("cGF5bG9hZA==", "/pg/v1/pay", "salt", "2"),
	}
	for name, got := range variants {
		if got == base {
			t.Errorf("changing %s did not change the checksum", name)
		}
		if !checksumFormat.MatchString(got) {
			t.Errorf("%s variant %q does not match format", name, got)
		}
	}
}

func TestCalculateChecksumAcceptsEmptySalt(t *testing.T) {
	got := CalculateChecksum("cGF5bG9hZA==", PayEndpoint, "", "")
	if len(got) != 64+len("###") {
		t.Fatalf("unexpected checksum %q", got)
	}
}

func TestVerifyChecksum(t *testing.T) {
	sig := CalculateChecksum("cmVzcG9uc2U=", "", "salt", "1")
	if !VerifyChecksum(sig, "cmVzcG9uc2U=", "", "salt", "1") {
		t.Error("expected valid signature")
	}
	if VerifyChecksum(sig, "cmVzcG9uc2U=", "", "other", "1") {
		t.Error("expected invalid signature with other salt")
	}
}

func TestEncodePayloadKeepsURLsReadable(t *testing.T) {
	encoded, err := EncodePayload(map[string]string{"redirectUrl": "https://x.test/a?b=1&c=<2>"})
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw) != `{"redirectUrl":"https://x.test/a?b=1&c=<2>"}` {
		t.Fatalf("unexpected payload %s", raw)
	}

	var back map[string]string
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
}
