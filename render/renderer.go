package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imscore/sh-profile/shdoc"
	"github.com/imscore/sh-profile/subscriber"
)

// Options controls renderer behavior that is deployment policy rather than
// 3GPP schema.
type Options struct {
	// VendorExtensions includes the non-standard Sh-IMS-Data extension block
	// (charging profile, IFC template id) when the record carries data for it.
	VendorExtensions bool

	// DefaultAgeOfLocation is substituted for AgeOfLocationInformation when a
	// serving node is known but the record carries no age. Minutes.
	DefaultAgeOfLocation int
}

// Renderer deterministically maps subscriber records onto Sh-Data trees.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render builds the Sh-Data document tree for rec. It fails with
// *subscriber.ValidationError when a required value is absent and with
// *shdoc.EncodingError when a value cannot be represented in XML.
func (r *Renderer) Render(rec *subscriber.Record) (*shdoc.Document, error) {
	root := &shdoc.Node{Name: "Sh-Data"}

	if err := leaf(root, shdoc.PathPrivateIdentity, rec.PrivateIdentity, rec.PrivateIdentity != ""); err != nil {
		return nil, err
	}

	pub := &shdoc.Node{Name: "PublicIdentifiers"}
	if len(rec.PublicIdentities) == 0 {
		return nil, &subscriber.ValidationError{Reason: "record has no public identities"}
	}
	for _, id := range rec.PublicIdentities {
		if err := leaf(pub, shdoc.PathPublicIdentity, id, id != ""); err != nil {
			return nil, err
		}
	}
	if err := leaf(pub, shdoc.PathMSISDN, rec.MSISDN, rec.MSISDN != ""); err != nil {
		return nil, err
	}
	root.Append(pub)

	// Location extension block: present iff a serving node is known.
	if rec.ServingNode != "" {
		loc, err := r.buildLocation(rec)
		if err != nil {
			return nil, err
		}
		ext := &shdoc.Node{Name: "Extension"}
		ext.Append(loc)
		root.Append(ext)
	}

	ims, err := r.buildIMSData(rec)
	if err != nil {
		return nil, err
	}
	root.Append(ims)

	return &shdoc.Document{Root: root}, nil
}

func (r *Renderer) buildLocation(rec *subscriber.Record) (*shdoc.Node, error) {
	loc := &shdoc.Node{Name: "EPSLocationInformation"}
	if err := leaf(loc, shdoc.PathMMEName, rec.ServingNode, true); err != nil {
		return nil, err
	}
	age := r.opts.DefaultAgeOfLocation
	if rec.AgeOfLocation != nil {
		age = *rec.AgeOfLocation
	}
	if err := leaf(loc, shdoc.PathAgeOfLoc, strconv.Itoa(age), true); err != nil {
		return nil, err
	}
	// Inner extension, only reachable when the location block itself renders.
	if rec.VisitedPLMN != "" {
		inner := &shdoc.Node{Name: "Extension"}
		if err := leaf(inner, shdoc.PathVisitedPLMN, rec.VisitedPLMN, true); err != nil {
			return nil, err
		}
		loc.Append(inner)
	}
	return loc, nil
}

func (r *Renderer) buildIMSData(rec *subscriber.Record) (*shdoc.Node, error) {
	ims := &shdoc.Node{Name: "Sh-IMS-Data"}
	if err := leaf(ims, shdoc.PathSCSCFName, rec.SCSCFName, rec.SCSCFName != ""); err != nil {
		return nil, err
	}
	if err := leaf(ims, shdoc.PathUserState, strconv.Itoa(int(rec.UserState)), true); err != nil {
		return nil, err
	}

	svc := rec.Services
	if err := boolLeaf(ims, shdoc.PathInboundBarred, svc.InboundBarred); err != nil {
		return nil, err
	}
	if err := boolLeaf(ims, shdoc.PathOutboundBarred, svc.OutboundBarred); err != nil {
		return nil, err
	}

	if cf := svc.CallForwarding; cf != nil {
		cfNode, err := buildCallForwarding(cf)
		if err != nil {
			return nil, err
		}
		ims.Append(cfNode)
	}

	if r.opts.VendorExtensions {
		ext, err := buildVendorExtension(rec)
		if err != nil {
			return nil, err
		}
		if ext != nil {
			ims.Append(ext)
		}
	}
	return ims, nil
}

func buildCallForwarding(cf *subscriber.CallForwarding) (*shdoc.Node, error) {
	n := &shdoc.Node{Name: "CallForwarding"}
	if err := leaf(n, shdoc.PathCFEnabled, formatBool(cf.Enabled), true); err != nil {
		return nil, err
	}
	reasons := []struct {
		path string
		flag *bool
	}{
		{shdoc.PathCFUnconditional, cf.Unconditional},
		{shdoc.PathCFNotRegistered, cf.NotRegistered},
		{shdoc.PathCFNoAnswer, cf.NoAnswer},
		{shdoc.PathCFBusy, cf.Busy},
		{shdoc.PathCFNotReachable, cf.NotReachable},
	}
	for _, reason := range reasons {
		if err := boolLeaf(n, reason.path, reason.flag); err != nil {
			return nil, err
		}
	}
	timer, present := "", false
	if cf.NoReplyTimer != nil {
		timer, present = strconv.Itoa(*cf.NoReplyTimer), true
	}
	if err := leaf(n, shdoc.PathCFNoReplyTimer, timer, present); err != nil {
		return nil, err
	}
	return n, nil
}

// buildVendorExtension returns nil when the record carries no vendor data,
// so an empty shell never reaches the document.
func buildVendorExtension(rec *subscriber.Record) (*shdoc.Node, error) {
	if rec.ChargingProfile == "" && rec.IFCTemplateID == nil {
		return nil, nil
	}
	ext := &shdoc.Node{Name: "Extension"}
	if err := leaf(ext, shdoc.PathVendorCharging, rec.ChargingProfile, rec.ChargingProfile != ""); err != nil {
		return nil, err
	}
	id, present := "", false
	if rec.IFCTemplateID != nil {
		id, present = strconv.Itoa(*rec.IFCTemplateID), true
	}
	if err := leaf(ext, shdoc.PathVendorIFC, id, present); err != nil {
		return nil, err
	}
	return ext, nil
}

// leaf appends one leaf element under parent according to the presence
// policy for its schema path. Every value passes through the escaper; there
// is no other substitution path.
func leaf(parent *shdoc.Node, path, value string, present bool) error {
	policy, ok := shdoc.PolicyFor(path)
	if !ok {
		return fmt.Errorf("no presence policy for schema path %s", path)
	}
	name := path[strings.LastIndexByte(path, '/')+1:]
	if !present {
		switch policy {
		case shdoc.Required:
			return &subscriber.ValidationError{Reason: "missing required value for " + path}
		case shdoc.OptionalEmitEmpty:
			parent.Append(&shdoc.Node{Name: name})
			return nil
		default:
			return nil
		}
	}
	escaped, err := shdoc.EscapeValue(value)
	if err != nil {
		return err
	}
	parent.Append(&shdoc.Node{Name: name, Text: escaped})
	return nil
}

func boolLeaf(parent *shdoc.Node, path string, flag *bool) error {
	value, present := "", false
	if flag != nil {
		value, present = formatBool(*flag), true
	}
	return leaf(parent, path, value, present)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
