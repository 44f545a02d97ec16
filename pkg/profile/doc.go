// Package profile stores member profiles.
//
// A Profile is the application-level record of a member. It is keyed by an
// internal ID and carries the human-facing member identifier (for example an
// admission number) used for login, plus a nullable link to the identity that
// authenticates the member in the external identity service.
//
// Two ProfileRepository implementations are provided:
//
//	repo := profile.NewPostgresProfileRepository(pool) // profiles table
//	repo := profile.NewInMemoryProfileRepository()     // tests and local runs
//
// The identity link may go stale when an identity is recreated out-of-band.
// LinkIdentity repairs it; nothing in this package deletes profiles.
package profile
