// Package bootstrap establishes and repairs the administrator account.
//
// SetupAdmin guarantees that the profile carrying the configured admin member
// identifier has a working identity, is linked to it, and that the identity
// holds the admin role. It runs as a sequence of steps that each check the
// current state before writing, so a run interrupted half-way is completed by
// the next one:
//
//  1. load the admin profile (must exist and carry an email)
//  2. resolve the identity by email, resetting its password, or create it
//  3. relink the profile if it points elsewhere, moving the old identity's
//     role assignment (best effort)
//  4. ensure the identity holds the admin role
//
// The setup key, member identifier and password come from configuration.
package bootstrap
