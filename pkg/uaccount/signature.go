package uaccount

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Sign computes the UAccount request signature: the SHA-1 hex digest of every
// key and value concatenated in key order, followed by the private key.
//
// See https://docs.ucloud.cn/api/summary/signature
func Sign(params Params, privateKey string) string {
	var b strings.Builder
	for _, pair := range params.Sorted() {
		b.WriteString(pair.Key)
		b.WriteString(pair.Value)
	}
	b.WriteString(privateKey)

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
