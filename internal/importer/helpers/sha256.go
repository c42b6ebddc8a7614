package helpers

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Sha256Record calculates the SHA256 hash of a CSV record and returns its string representation.
func Sha256Record(record []string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(record, ","))))
}
