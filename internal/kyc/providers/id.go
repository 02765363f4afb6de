package providers

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// SimID derives a short reference ID from the given instant, matching the
// format the sandbox has always issued: PREFIX_ followed by twelve hex
// characters of a timestamp digest.
func SimID(prefix string, now time.Time) string {
	sum := sha256.Sum256([]byte(now.Format(time.RFC3339Nano)))
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(sum[:])[:12])
}
