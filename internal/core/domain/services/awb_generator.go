package services

import (
	"fmt"
	"math/rand"
	"strings"

	"shipdesk/internal/pkg/errs"
)

// MaxAWBAttempts bounds how many candidate numbers the dispatcher draws
// before giving up on a unique AWB.
const MaxAWBAttempts = 5

// AWBGenerator produces candidate air waybill numbers. A candidate is the
// courier's AWB prefix followed by a random 9-digit serial; uniqueness against
// already-issued numbers is the caller's responsibility.
type AWBGenerator struct {
	rnd *rand.Rand
}

// NewAWBGenerator creates a generator drawing from the given source.
func NewAWBGenerator(rnd *rand.Rand) AWBGenerator {
	return AWBGenerator{rnd: rnd}
}

// Generate returns one candidate AWB for the given courier prefix.
func (g AWBGenerator) Generate(prefix string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", errs.NewValueIsRequiredError("awb prefix")
	}

	serial := 100000000 + g.rnd.Intn(900000000)
	return fmt.Sprintf("%s%d", prefix, serial), nil
}
