package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tendant/member-portal/pkg/utils"
)

// PrintBootstrapResult displays the bootstrap results for an operator
func PrintBootstrapResult(w io.Writer, result *AdminBootstrapResult) {
	if result == nil {
		return
	}

	border := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", border)
	fmt.Fprintln(w, "ADMIN SETUP COMPLETED")
	fmt.Fprintf(w, "%s\n", border)

	fmt.Fprintln(w, "\nAdmin account:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "  Member ID: %s\n", result.MemberID)
	fmt.Fprintf(w, "  Email:     %s\n", result.Email)
	fmt.Fprintf(w, "  User ID:   %s\n", result.UserID)
	fmt.Fprintf(w, "  Password:  %s\n", result.Password)

	fmt.Fprintln(w, "\nChanges:")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "  Identity:  %s\n", identityStatus(result))
	fmt.Fprintf(w, "  Link:      %s\n", linkStatus(result))
	fmt.Fprintf(w, "  Role:      %s\n", result.RoleOutcome)

	fmt.Fprintln(w, "\nReminder: the admin password is also stored in the profile's password_plain column.")
	fmt.Fprintf(w, "%s\n\n", border)
}

func identityStatus(result *AdminBootstrapResult) string {
	if result.IdentityCreated {
		return "created"
	}
	return "found, password reset"
}

func linkStatus(result *AdminBootstrapResult) string {
	switch {
	case !result.LinkRepaired:
		return "already linked"
	case result.PreviousUserID.Valid && result.RoleMoved:
		return fmt.Sprintf("repaired (was %s, role moved)", result.PreviousUserID.UUID)
	case result.PreviousUserID.Valid:
		return fmt.Sprintf("repaired (was %s)", result.PreviousUserID.UUID)
	default:
		return "linked"
	}
}

// LogBootstrapSummary logs a concise summary without the password
func LogBootstrapSummary(result *AdminBootstrapResult) {
	if result == nil {
		return
	}

	slog.Info("Admin setup summary",
		"member_id", result.MemberID,
		"email", utils.MaskEmail(result.Email),
		"user_id", result.UserID,
		"identity_created", result.IdentityCreated,
		"password_reset", result.PasswordReset,
		"link_repaired", result.LinkRepaired,
		"role_moved", result.RoleMoved,
		"role", result.RoleOutcome,
	)
}
