package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/imscore/sh-profile/cache"
	"github.com/imscore/sh-profile/render"
	"github.com/imscore/sh-profile/store"
	"github.com/imscore/sh-profile/subscriber"
)

func testAPI(t *testing.T) *API {
	t.Helper()
	s := store.NewStore()
	err := s.Put(subscriber.Record{
		PrivateIdentity:  "123@ims.example.org",
		PublicIdentities: []string{"sip:+1555@ims.example.org"},
		MSISDN:           "+1555",
		ServingNode:      "mme01.example.org",
		SCSCFName:        "cscf1",
		UserState:        subscriber.StateRegistered,
	})
	if err != nil {
		t.Fatalf("fixture subscriber invalid: %v", err)
	}
	c := cache.New(render.NewRenderer(render.Options{}), s)
	return &API{Cache: c, Store: s}
}

func doRequest(t *testing.T, a *API, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	a.Routes().ServeHTTP(rr, req)
	return rr
}

func TestHandleProfileXML(t *testing.T) {
	a := testAPI(t)
	rr := doRequest(t, a, http.MethodGet, "/api/profile/sh-data.xml?impi=123@ims.example.org")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/xml" {
		t.Errorf("Content-Type = %s", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<Sh-Data>") {
		t.Error("body missing Sh-Data root")
	}
	if !strings.Contains(body, "<MMEName>mme01.example.org</MMEName>") {
		t.Error("body missing location block")
	}
}

func TestHandleProfileJSON(t *testing.T) {
	a := testAPI(t)
	rr := doRequest(t, a, http.MethodGet, "/api/profile/sh-data.json?impi=123@ims.example.org")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if payload["privateIdentity"] != "123@ims.example.org" {
		t.Errorf("payload = %v", payload)
	}
}

func TestHandleProfile_MissingIMPI(t *testing.T) {
	a := testAPI(t)
	rr := doRequest(t, a, http.MethodGet, "/api/profile/sh-data.xml")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleProfile_UnknownSubscriber(t *testing.T) {
	a := testAPI(t)
	rr := doRequest(t, a, http.MethodGet, "/api/profile/sh-data.xml?impi=ghost@ims.example.org")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No such subscriber") {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestHandleHealth(t *testing.T) {
	a := testAPI(t)
	rr := doRequest(t, a, http.MethodGet, "/api/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if resp.Status != "ok" || resp.Subscribers != 1 {
		t.Errorf("health = %+v", resp)
	}
}

func TestHandleCacheStatsAndInvalidate(t *testing.T) {
	a := testAPI(t)
	_ = doRequest(t, a, http.MethodGet, "/api/profile/sh-data.xml?impi=123@ims.example.org")

	rr := doRequest(t, a, http.MethodGet, "/api/cache/stats")
	if rr.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rr.Code)
	}
	var stats cache.Stats
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("stats body is not JSON: %v", err)
	}
	if stats.Cached != 1 {
		t.Errorf("stats = %+v", stats)
	}

	rr = doRequest(t, a, http.MethodPost, "/api/cache/invalidate?impi=123@ims.example.org")
	if rr.Code != http.StatusOK {
		t.Fatalf("invalidate status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"invalidated":true`) {
		t.Errorf("invalidate body = %s", rr.Body.String())
	}

	rr = doRequest(t, a, http.MethodGet, "/api/cache/invalidate")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET invalidate status = %d, want 405", rr.Code)
	}
}

func TestHandleCacheInvalidateAll(t *testing.T) {
	a := testAPI(t)
	_ = doRequest(t, a, http.MethodGet, "/api/profile/sh-data.xml?impi=123@ims.example.org")
	_ = doRequest(t, a, http.MethodGet, "/api/profile/sh-data.json?impi=123@ims.example.org")

	rr := doRequest(t, a, http.MethodPost, "/api/cache/invalidate")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"invalidated":2`) {
		t.Errorf("body = %s", rr.Body.String())
	}
}
