package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// TTL is how long a one-time code stays valid.
const TTL = 10 * time.Minute

// Generator produces 6-digit numeric codes with an expiry timestamp.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

func NewGeneratorAt(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

func (g *Generator) Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", time.Time{}, err
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	return code, g.now().Add(TTL), nil
}

// Valid reports whether the presented code matches the stored one and the
// expiry has not passed. A missing stored pair never validates.
func Valid(stored *string, expiry *time.Time, presented string, now time.Time) bool {
	if stored == nil || expiry == nil {
		return false
	}
	if presented == "" || *stored != presented {
		return false
	}
	return !now.After(*expiry)
}
