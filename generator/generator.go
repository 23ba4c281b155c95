package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenPrefix is prepended to every generated token secret
const TokenPrefix = "token_"

// AccessTokenGenerator produces opaque bearer token strings
type AccessTokenGenerator struct{}

// Generate returns a new token secret of the form token_<uuid>.
// The identifier is a random v4 uuid backed by crypto/rand, no collision
// check happens here, the stores unique constraint is the backstop.
func (*AccessTokenGenerator) Generate() string {
	id, err := uuid.NewRandom()
	if err != nil {
		panic(err.Error()) // rand should never fail
	}
	return fmt.Sprintf("%s%s", TokenPrefix, id.String())
}

func New() *AccessTokenGenerator {
	return &AccessTokenGenerator{}
}
