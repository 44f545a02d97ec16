// Package utils holds small helpers shared by the stores and services.
//
//	utils.ToNullString("")                  // NULL
//	utils.MaskEmail("john@example.com")     // "j***n@example.com"
//
// Use MaskEmail whenever an address goes to the log.
package utils
