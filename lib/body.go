package lib

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MaxBodyBytes caps request bodies. The router applies the same limit;
// the decoder keeps it for handlers invoked outside the full chain.
const MaxBodyBytes = 1 << 20

// ExtractAndValidateBody decodes a JSON request body into T.
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T
	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return &body, nil
}
