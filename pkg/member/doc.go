// Package member implements the member-facing portal functions.
//
// LookupEmail resolves a member identifier to the email on the member's
// profile, so a login form can authenticate by member identifier against an
// email-based identity service. It is a narrow read and performs no
// authentication itself.
//
// CreateMember provisions a new identity and its profile. Only callers whose
// bearer token resolves to an identity holding the admin role may use it;
// the role is checked on every call.
package member
