package bootstrap

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	perrors "github.com/tendant/member-portal/pkg/errors"
)

type Handle struct {
	bootstrapService *AdminBootstrapService
}

func NewHandle(bootstrapService *AdminBootstrapService) Handle {
	return Handle{
		bootstrapService: bootstrapService,
	}
}

type SetupAdminRequest struct {
	SetupKey string `json:"setup_key"`
}

type Credentials struct {
	AdmissionNumber string `json:"admission_number"`
	Password        string `json:"password"`
	Email           string `json:"email"`
}

type SetupAdminResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Credentials Credentials `json:"credentials"`
}

// SetupAdmin handles POST /setup-admin. An unreadable body is treated as an
// empty setup key, which never matches.
func (h Handle) SetupAdmin(w http.ResponseWriter, r *http.Request) {
	var req SetupAdminRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	result, err := h.bootstrapService.SetupAdmin(r.Context(), req.SetupKey)
	if err != nil {
		perrors.Render(w, r, err)
		return
	}

	render.JSON(w, r, SetupAdminResponse{
		Success: true,
		Message: "Admin account is ready",
		Credentials: Credentials{
			AdmissionNumber: result.MemberID,
			Password:        result.Password,
			Email:           result.Email,
		},
	})
}
