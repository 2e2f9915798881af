package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const numberAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// GenerateRideNumber mints a short human-readable ride number: a base36
// millisecond timestamp plus two random characters. Monotonic for practical
// purposes; global uniqueness is enforced by the unique index on
// rides.number.
func GenerateRideNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 2)
	for i := range suffix {
		suffix[i] = numberAlphabet[rand.Intn(len(numberAlphabet))]
	}

	return ts + string(suffix)
}
