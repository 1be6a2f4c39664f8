// Package subscriber defines the subscriber profile data model handed to the
// Sh-Data renderer.
//
// A Record is built once per rendering request from provisioning data, is
// validated at construction time, and is treated as immutable afterwards.
// Validation covers both structural requirements (private identity, at least
// one public identity, S-CSCF name) and policy consistency (no call-forwarding
// reason flag may be set while call forwarding as a whole is disabled).
package subscriber
