package shdoc

import "strings"

// Presence classifies how a leaf element behaves when its underlying datum
// is absent, provided its parent block is rendered at all.
type Presence int

const (
	// Required elements must have a value; rendering fails without one.
	Required Presence = iota
	// OptionalEmitEmpty elements are mandatory-but-nullable in the target
	// schema: absent data renders an empty element.
	OptionalEmitEmpty
	// OptionalOmit elements disappear entirely when their datum is absent.
	OptionalOmit
)

func (p Presence) String() string {
	switch p {
	case Required:
		return "required"
	case OptionalEmitEmpty:
		return "optional-emit-empty"
	case OptionalOmit:
		return "optional-omit"
	}
	return "unknown"
}

// Element paths within the Sh-Data schema, slash-joined from the root.
// Block presence (Extension/EPSLocationInformation, CallForwarding, the
// vendor Extension) is decided by the renderer from the input record; the
// policies below only govern leaves inside rendered blocks.
const (
	PathRoot = "Sh-Data"

	PathPrivateIdentity = "Sh-Data/IMSPrivateUserIdentity"
	PathPublicIDs       = "Sh-Data/PublicIdentifiers"
	PathPublicIdentity  = "Sh-Data/PublicIdentifiers/IMSPublicIdentity"
	PathMSISDN          = "Sh-Data/PublicIdentifiers/MSISDN"

	PathLocation    = "Sh-Data/Extension/EPSLocationInformation"
	PathMMEName     = "Sh-Data/Extension/EPSLocationInformation/MMEName"
	PathAgeOfLoc    = "Sh-Data/Extension/EPSLocationInformation/AgeOfLocationInformation"
	PathVisitedPLMN = "Sh-Data/Extension/EPSLocationInformation/Extension/VisitedPLMNID"

	PathIMSData   = "Sh-Data/Sh-IMS-Data"
	PathSCSCFName = "Sh-Data/Sh-IMS-Data/S-CSCFName"
	PathUserState = "Sh-Data/Sh-IMS-Data/IMSUserState"

	PathInboundBarred  = "Sh-Data/Sh-IMS-Data/InboundCommunicationBarred"
	PathOutboundBarred = "Sh-Data/Sh-IMS-Data/OutboundCommunicationBarred"

	PathCallForwarding  = "Sh-Data/Sh-IMS-Data/CallForwarding"
	PathCFEnabled       = "Sh-Data/Sh-IMS-Data/CallForwarding/Enabled"
	PathCFUnconditional = "Sh-Data/Sh-IMS-Data/CallForwarding/Unconditional"
	PathCFNotRegistered = "Sh-Data/Sh-IMS-Data/CallForwarding/NotRegistered"
	PathCFNoAnswer      = "Sh-Data/Sh-IMS-Data/CallForwarding/NoAnswer"
	PathCFBusy          = "Sh-Data/Sh-IMS-Data/CallForwarding/Busy"
	PathCFNotReachable  = "Sh-Data/Sh-IMS-Data/CallForwarding/NotReachable"
	PathCFNoReplyTimer  = "Sh-Data/Sh-IMS-Data/CallForwarding/NoReplyTimer"

	PathVendorCharging = "Sh-Data/Sh-IMS-Data/Extension/ChargingProfile"
	PathVendorIFC      = "Sh-Data/Sh-IMS-Data/Extension/IFCTemplateID"
)

// fieldPolicies is the single source of truth for per-leaf presence
// behavior. One entry per substitutable field; auditable independent of the
// XML mechanics.
var fieldPolicies = map[string]Presence{
	PathPrivateIdentity: Required,
	PathPublicIdentity:  Required,
	PathMSISDN:          OptionalOmit,

	PathMMEName:     Required,
	PathAgeOfLoc:    Required,
	PathVisitedPLMN: OptionalOmit,

	PathSCSCFName: Required,
	PathUserState: Required,

	PathInboundBarred:  OptionalEmitEmpty,
	PathOutboundBarred: OptionalEmitEmpty,

	PathCFEnabled:       Required,
	PathCFUnconditional: OptionalOmit,
	PathCFNotRegistered: OptionalOmit,
	PathCFNoAnswer:      OptionalOmit,
	PathCFBusy:          OptionalOmit,
	PathCFNotReachable:  OptionalOmit,
	PathCFNoReplyTimer:  OptionalOmit,

	PathVendorCharging: OptionalOmit,
	PathVendorIFC:      OptionalOmit,
}

// PolicyFor returns the presence class for a leaf path. The second result is
// false for paths outside the schema table.
func PolicyFor(path string) (Presence, bool) {
	p, ok := fieldPolicies[path]
	return p, ok
}

// requiredChildren maps a block path to the leaf names that must be present
// whenever the block itself is rendered. Derived from fieldPolicies at init
// so the audit can never drift from the table.
var requiredChildren = map[string][]string{}

func init() {
	for path, p := range fieldPolicies {
		if p != Required {
			continue
		}
		i := strings.LastIndexByte(path, '/')
		parent, name := path[:i], path[i+1:]
		requiredChildren[parent] = append(requiredChildren[parent], name)
	}
	// Mandatory blocks are not leaves and carry no policy entry of their own.
	requiredChildren[PathRoot] = append(requiredChildren[PathRoot], "PublicIdentifiers", "Sh-IMS-Data")
}

// RequiredChildren returns the leaf names mandatory under a rendered block.
func RequiredChildren(parentPath string) []string {
	return requiredChildren[parentPath]
}
