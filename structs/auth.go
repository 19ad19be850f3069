package structs

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims are the claims of a manager session token. The shop has a
// single manager role; there are no customer accounts.
type AuthClaims struct {
	Role string
	Iat  time.Time
	Exp  time.Time
	Jti  uuid.UUID
}

type LoginRequest struct {
	Password string `json:"password"`
}
