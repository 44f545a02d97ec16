// Package directory talks to the external identity service that owns
// authenticated identities.
//
// The Directory interface covers the four operations the portal functions
// need: create a user, set a user's password, resolve a bearer token to its
// user, and list users page by page. Client implements it against a
// GoTrue-compatible admin API using the service credential:
//
//	dir := directory.NewClient(cfg.Directory.URL, cfg.Directory.ServiceKey,
//		directory.WithTimeout(cfg.Directory.Timeout))
//
// InMemoryDirectory implements it for tests and local runs. Its create hooks
// stand in for the identity service's trigger that provisions a companion
// profile row for every new identity.
//
// FindUserByEmail scans the user list for a case-insensitive email match,
// one page at a time, stopping at the first match, a short page or the page
// limit.
package directory
