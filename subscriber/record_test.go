package subscriber

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func boolPtr(b bool) *bool { return &b }

func validSpec() Record {
	return Record{
		PrivateIdentity:  "123@ims.mnc001.mcc001.3gppnetwork.org",
		PublicIdentities: []string{"sip:+1555@ims.mnc001.mcc001.3gppnetwork.org"},
		MSISDN:           "+1555",
		SCSCFName:        "sip:scscf1.ims.mnc001.mcc001.3gppnetwork.org",
		UserState:        StateRegistered,
	}
}

func TestNewRecord_Valid(t *testing.T) {
	rec, err := NewRecord(validSpec())
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}
	if rec.PrivateIdentity == "" {
		t.Error("private identity should be preserved")
	}
}

func TestNewRecord_NoPublicIdentities(t *testing.T) {
	spec := validSpec()
	spec.PublicIdentities = nil

	_, err := NewRecord(spec)
	if err == nil {
		t.Fatal("record without public identities must be rejected")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestNewRecord_MissingPrivateIdentity(t *testing.T) {
	spec := validSpec()
	spec.PrivateIdentity = ""

	if _, err := NewRecord(spec); err == nil {
		t.Fatal("record without private identity must be rejected")
	}
}

func TestNewRecord_CallForwardingPolicyInconsistency(t *testing.T) {
	spec := validSpec()
	spec.Services.CallForwarding = &CallForwarding{
		Enabled:       false,
		Unconditional: boolPtr(true),
	}

	_, err := NewRecord(spec)
	if err == nil {
		t.Fatal("reason flag set while call forwarding disabled must be rejected")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestNewRecord_DisabledForwardingWithExplicitFalseReasons(t *testing.T) {
	spec := validSpec()
	spec.Services.CallForwarding = &CallForwarding{
		Enabled: false,
		Busy:    boolPtr(false),
	}

	if _, err := NewRecord(spec); err != nil {
		t.Fatalf("explicit false reasons are consistent with disabled forwarding: %v", err)
	}
}

func TestParseUserState(t *testing.T) {
	cases := []struct {
		in   string
		want UserState
	}{
		{"REGISTERED", StateRegistered},
		{"not_registered", StateNotRegistered},
		{" registered_unreg_services ", StateRegisteredUnregServices},
		{"AUTHENTICATION_PENDING", StateAuthenticationPending},
	}
	for _, c := range cases {
		got, err := ParseUserState(c.in)
		if err != nil {
			t.Errorf("ParseUserState(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseUserState(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseUserState("ROAMING"); err == nil {
		t.Error("unknown state name must be rejected")
	}
}

func TestUserState_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(StateRegistered)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var s UserState
	if err := yaml.Unmarshal(out, &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s != StateRegistered {
		t.Errorf("round trip produced %v, want %v", s, StateRegistered)
	}
}
