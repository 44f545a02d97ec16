package utils

import (
	"database/sql"
	"strings"
)

// ToNullString converts "" to NULL
func ToNullString(str string) sql.NullString {
	if str == "" {
		return sql.NullString{
			String: str,
			Valid:  false,
		}
	}
	return sql.NullString{
		String: str,
		Valid:  true,
	}
}

// MaskEmail keeps the first and last character of the local part, e.g.
// "john@example.com" becomes "j***n@example.com". Single-character local
// parts and strings without '@' are returned unchanged.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 1 {
		return email
	}
	local, domain := email[:at], email[at:]
	if len(local) == 2 {
		return local[:1] + "*" + local[1:] + domain
	}
	return local[:1] + "***" + local[len(local)-1:] + domain
}
