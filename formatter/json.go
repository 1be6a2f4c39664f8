package formatter

import (
	"encoding/json"

	"github.com/imscore/sh-profile/subscriber"
)

// BuildJSON serializes a subscriber profile for the OAM API surface.
func BuildJSON(rec *subscriber.Record) []byte {
	b, _ := json.Marshal(rec)
	return b
}
