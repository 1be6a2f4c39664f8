package subscriber

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserState is the subscriber's IMS registration state. The numeric values
// are the tIMSUserState codes used on the wire (3GPP TS 29.328).
type UserState int

const (
	StateNotRegistered UserState = iota
	StateRegistered
	StateRegisteredUnregServices
	StateAuthenticationPending
)

var userStateNames = map[UserState]string{
	StateNotRegistered:           "NOT_REGISTERED",
	StateRegistered:              "REGISTERED",
	StateRegisteredUnregServices: "REGISTERED_UNREG_SERVICES",
	StateAuthenticationPending:   "AUTHENTICATION_PENDING",
}

func (s UserState) String() string {
	if name, ok := userStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UserState(%d)", int(s))
}

// ParseUserState maps a provisioning-side state name to its UserState value.
func ParseUserState(s string) (UserState, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for state, n := range userStateNames {
		if n == name {
			return state, nil
		}
	}
	return StateNotRegistered, &ValidationError{Reason: "unknown user state: " + s}
}

// MarshalYAML / UnmarshalYAML keep provisioning files readable (state names
// instead of wire integers).
func (s UserState) MarshalYAML() (any, error) { return s.String(), nil }

func (s *UserState) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	state, err := ParseUserState(name)
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// CallForwarding holds the per-reason call-forwarding flags. A nil reason
// flag means the underlying datum is absent, which is materially different
// from an explicit false: absent reasons are omitted from the rendered
// document entirely.
type CallForwarding struct {
	Enabled       bool  `yaml:"enabled" json:"enabled"`
	Unconditional *bool `yaml:"unconditional" json:"unconditional,omitempty"`
	NotRegistered *bool `yaml:"notRegistered" json:"notRegistered,omitempty"`
	NoAnswer      *bool `yaml:"noAnswer" json:"noAnswer,omitempty"`
	Busy          *bool `yaml:"busy" json:"busy,omitempty"`
	NotReachable  *bool `yaml:"notReachable" json:"notReachable,omitempty"`
	NoReplyTimer  *int  `yaml:"noReplyTimer" json:"noReplyTimer,omitempty" validate:"omitempty,gte=0,lte=180"`
}

// reasons returns the per-reason flags in schema order.
func (cf *CallForwarding) reasons() []*bool {
	return []*bool{cf.Unconditional, cf.NotRegistered, cf.NoAnswer, cf.Busy, cf.NotReachable}
}

// ServiceSettings carries the supplementary-service state of a subscriber.
// Each flag is independently present-or-absent.
type ServiceSettings struct {
	InboundBarred  *bool           `yaml:"inboundBarred" json:"inboundBarred,omitempty"`
	OutboundBarred *bool           `yaml:"outboundBarred" json:"outboundBarred,omitempty"`
	CallForwarding *CallForwarding `yaml:"callForwarding" json:"callForwarding,omitempty"`
}

// Record is a validated subscriber profile. Construct it through NewRecord;
// no component may mutate it afterwards.
type Record struct {
	PrivateIdentity  string   `yaml:"privateIdentity" json:"privateIdentity" validate:"required"`
	PublicIdentities []string `yaml:"publicIdentities" json:"publicIdentities" validate:"required,min=1,dive,required"`
	MSISDN           string   `yaml:"msisdn" json:"msisdn,omitempty"`

	// ServingNode is the MME currently tracking the subscriber. Empty when
	// the subscriber is not located; its absence suppresses the whole
	// EPSLocationInformation block.
	ServingNode   string `yaml:"servingNode" json:"servingNode,omitempty"`
	AgeOfLocation *int   `yaml:"ageOfLocation" json:"ageOfLocation,omitempty" validate:"omitempty,gte=0"`
	VisitedPLMN   string `yaml:"visitedPLMN" json:"visitedPLMN,omitempty"`

	SCSCFName string    `yaml:"scscfName" json:"scscfName" validate:"required"`
	UserState UserState `yaml:"userState" json:"userState"`

	Services ServiceSettings `yaml:"services" json:"services"`

	// Non-standard provisioning fields. Rendered only when the renderer's
	// vendor-extension option is on.
	ChargingProfile string `yaml:"chargingProfile" json:"chargingProfile,omitempty"`
	IFCTemplateID   *int   `yaml:"ifcTemplateId" json:"ifcTemplateId,omitempty" validate:"omitempty,gt=0"`
}

var validate = validator.New()

// NewRecord validates spec and returns an immutable profile record.
// It fails with *ValidationError when required identity fields are missing or
// when the call-forwarding flags are policy-inconsistent.
func NewRecord(spec Record) (*Record, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, &ValidationError{Reason: "invalid subscriber record", Err: err}
	}
	if cf := spec.Services.CallForwarding; cf != nil && !cf.Enabled {
		for _, reason := range cf.reasons() {
			if reason != nil && *reason {
				return nil, &ValidationError{
					Reason: "call-forwarding reason flag set while call forwarding is disabled for " + spec.PrivateIdentity,
				}
			}
		}
	}
	rec := spec
	return &rec, nil
}
