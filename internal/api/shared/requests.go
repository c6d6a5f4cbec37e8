package shared

import (
	"encoding/json"
	"net/http"
)

// MaxRequestBodyBytes bounds the size of a decoded JSON request body.
const MaxRequestBodyBytes = 64 << 10

// DecodeJSON decodes the request body into the given struct.
// Bodies larger than MaxRequestBodyBytes fail to decode.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return err
	}
	return nil
}
