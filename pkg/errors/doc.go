// Package errors provides structured, coded errors for the member portal functions.
//
// Every service in this module returns *Error values for the failures a caller
// is expected to handle. Handlers translate them into a JSON body of the form
// {"error": "<message>"} with the status returned by HTTPStatusCode.
//
// # Basic Usage
//
//	import "github.com/tendant/member-portal/pkg/errors"
//
//	// Caller supplied a bad request body
//	err := errors.InvalidInput("member_id is required")
//
//	// Wrap a store failure, keeping the cause for logging
//	err := errors.Wrap(dbErr, errors.ErrCodeLookupFailed, "failed to look up profile")
//
//	// Inspect
//	if errors.IsCode(err, errors.ErrCodeForbidden) { ... }
//	status := errors.HTTPStatus(err)
//
// # Error Codes
//
//   - ErrCodeInvalidInput    400 malformed or missing request fields
//   - ErrCodeUnauthorized    401 missing or unresolvable bearer token
//   - ErrCodeForbidden       403 caller is not an admin, or the setup key does not match
//   - ErrCodeNotFound        404 no matching profile
//   - ErrCodeLookupFailed    500 store read failed
//   - ErrCodeCreateFailed    400 identity creation rejected by the identity service
//   - ErrCodeUpdateFailed    500 identity or store update failed
//   - ErrCodeInternal        500 anything else
package errors
