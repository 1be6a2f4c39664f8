package server

import (
	"encoding/json"
	"strings"

	"github.com/imscore/sh-profile/store"
)

// QueryError reports an invalid request parameter.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func ensureSubscriberExists(impi string, s *store.Store) error {
	impi = strings.TrimSpace(impi)
	if impi == "" {
		return &QueryError{Msg: "You must provide an impi."}
	}
	if _, ok := s.Lookup(impi); !ok {
		return &QueryError{Msg: "No such subscriber: " + impi + "."}
	}
	return nil
}

func buildErrorPayload(endpoint, format, msg string) []byte {
	b, _ := json.Marshal(map[string]any{
		"endpoint": endpoint,
		"format":   format,
		"error":    msg,
	})
	return b
}
