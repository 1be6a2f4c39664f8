package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/imscore/sh-profile/cache"
	"github.com/imscore/sh-profile/formatter"
)

func (a *API) handleProfileXML(w http.ResponseWriter, r *http.Request) {
	a.serveProfile(w, r, cache.FormatXML, "application/xml")
}

func (a *API) handleProfileJSON(w http.ResponseWriter, r *http.Request) {
	a.serveProfile(w, r, cache.FormatJSON, "application/json")
}

func (a *API) serveProfile(w http.ResponseWriter, r *http.Request, format, contentType string) {
	reqID := uuid.NewString()
	impi := strings.TrimSpace(r.URL.Query().Get("impi"))
	if err := ensureSubscriberExists(impi, a.Store); err != nil {
		w.Header().Set("Content-Type", "application/json")
		status := http.StatusBadRequest
		if impi != "" {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		_, _ = w.Write(buildErrorPayload("shData", format, err.Error()))
		return
	}
	buf, err := a.Cache.GetProfile(impi, format)
	if err != nil {
		var ae *formatter.AssemblyError
		if errors.As(err, &ae) {
			// Contract violation between renderer and assembler: a defect,
			// not a data problem.
			log.Printf("ERROR request=%s impi=%s assembly contract violation: %v", reqID, impi, ae)
		} else {
			log.Printf("request=%s impi=%s render failed: %v", reqID, impi, err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(buildErrorPayload("shData", format, err.Error()))
		return
	}
	log.Printf("request=%s impi=%s format=%s bytes=%d", reqID, impi, format, len(buf))
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf)
}

func (a *API) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.Cache.GetStats())
}

func (a *API) handleCacheInvalidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	impi := r.URL.Query().Get("impi")
	if impi == "" {
		n := a.Cache.InvalidateAll()
		_ = json.NewEncoder(w).Encode(map[string]int{"invalidated": n})
		return
	}
	removed := a.Cache.Invalidate(impi)
	_ = json.NewEncoder(w).Encode(map[string]bool{"invalidated": removed})
}
