package product

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const idRandomChars = 5

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a product identifier of the form
// PRD<base36 millisecond timestamp><5 random base36 chars>, uppercased.
// Collisions are not checked; the timestamp prefix makes them
// probabilistically negligible.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var b strings.Builder
	b.Grow(3 + len(ts) + idRandomChars)
	b.WriteString("PRD")
	b.WriteString(ts)
	for i := 0; i < idRandomChars; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return strings.ToUpper(b.String())
}
