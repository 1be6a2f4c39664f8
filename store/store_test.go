package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imscore/sh-profile/subscriber"
)

const provisioningYAML = `
subscribers:
  - privateIdentity: "123@ims.example.org"
    publicIdentities:
      - "sip:+1555@ims.example.org"
    msisdn: "+1555"
    scscfName: "cscf1"
    userState: REGISTERED
    services:
      inboundBarred: false
      callForwarding:
        enabled: true
        noAnswer: true
        noReplyTimer: 20
  - privateIdentity: "124@ims.example.org"
    publicIdentities:
      - "sip:+1556@ims.example.org"
    scscfName: "cscf1"
    userState: NOT_REGISTERED
`

func writeProvisioningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subscribers.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}
	return path
}

func TestNewStoreFromFile(t *testing.T) {
	s, err := NewStoreFromFile(writeProvisioningFile(t, provisioningYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("loaded %d subscribers, want 2", s.Len())
	}
	rec, ok := s.Lookup("123@ims.example.org")
	if !ok {
		t.Fatal("provisioned subscriber not found")
	}
	if rec.UserState != subscriber.StateRegistered {
		t.Errorf("user state = %v", rec.UserState)
	}
	cf := rec.Services.CallForwarding
	if cf == nil || !cf.Enabled || cf.NoAnswer == nil || !*cf.NoAnswer {
		t.Error("call-forwarding settings lost in load")
	}
	if cf.Unconditional != nil {
		t.Error("unset reason flag must load as absent, not false")
	}
}

func TestNewStoreFromReader_InvalidRecordFailsLoad(t *testing.T) {
	bad := strings.Replace(provisioningYAML, `scscfName: "cscf1"`, `scscfName: ""`, 1)
	_, err := NewStoreFromReader(strings.NewReader(bad))
	if err == nil {
		t.Fatal("invalid record must fail the whole load")
	}
	var verr *subscriber.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected wrapped *ValidationError, got %T", err)
	}
}

func TestNewStoreFromReader_PolicyInconsistencyFailsLoad(t *testing.T) {
	bad := strings.Replace(provisioningYAML, "enabled: true", "enabled: false", 1)
	if _, err := NewStoreFromReader(strings.NewReader(bad)); err == nil {
		t.Fatal("reason flag set with forwarding disabled must fail the load")
	}
}

func TestStore_PutAndAllIdentities(t *testing.T) {
	s := NewStore()
	err := s.Put(subscriber.Record{
		PrivateIdentity:  "b@ims.example.org",
		PublicIdentities: []string{"sip:b@ims.example.org"},
		SCSCFName:        "cscf1",
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(subscriber.Record{PrivateIdentity: "a@ims.example.org"}); err == nil {
		t.Fatal("Put must validate records")
	}
	ids := s.AllIdentities()
	if len(ids) != 1 || ids[0] != "b@ims.example.org" {
		t.Errorf("AllIdentities = %v", ids)
	}
}

func TestNewStoreFromFile_MissingFile(t *testing.T) {
	if _, err := NewStoreFromFile(filepath.Join(t.TempDir(), "none.yml")); err == nil {
		t.Fatal("missing provisioning file must fail")
	}
}
