package utils

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// ComputeWebhookMAC computes the gateway MAC over a webhook payload: the
// fields (mac itself excluded by the caller) are sorted by key
// case-insensitively, their values joined with "|", and the result is
// HMAC-SHA1'd with the server-held salt.
func ComputeWebhookMAC(fields map[string]string, salt string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, fields[k])
	}

	mac := hmac.New(sha1.New, []byte(salt))
	mac.Write([]byte(strings.Join(values, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookMAC checks a supplied MAC against the computed one in
// constant time. A mismatch means the payload did not come from the gateway
// or was tampered with.
func VerifyWebhookMAC(fields map[string]string, suppliedMac, salt string) bool {
	expected := ComputeWebhookMAC(fields, salt)
	return hmac.Equal([]byte(expected), []byte(suppliedMac))
}
