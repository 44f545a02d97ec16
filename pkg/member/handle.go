package member

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/jinzhu/copier"
	perrors "github.com/tendant/member-portal/pkg/errors"
)

type Handle struct {
	memberService *MemberService
}

func NewHandle(memberService *MemberService) Handle {
	return Handle{
		memberService: memberService,
	}
}

type LookupEmailRequest struct {
	MemberID *string `json:"member_id"`
}

type LookupEmailResponse struct {
	Email *string `json:"email"`
}

type CreateMemberRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	MemberID   string `json:"member_id"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

type MemberUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type CreateMemberResponse struct {
	Success bool       `json:"success"`
	User    MemberUser `json:"user"`
}

// LookupEmail handles POST /lookup-email
func (h Handle) LookupEmail(w http.ResponseWriter, r *http.Request) {
	var req LookupEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode request body", "err", err)
		perrors.Render(w, r, perrors.InvalidInput("Member ID is required"))
		return
	}
	if req.MemberID == nil || *req.MemberID == "" {
		perrors.Render(w, r, perrors.InvalidInput("Member ID is required"))
		return
	}

	email, err := h.memberService.LookupEmail(r.Context(), *req.MemberID)
	if err != nil {
		perrors.Render(w, r, err)
		return
	}

	render.JSON(w, r, LookupEmailResponse{Email: email})
}

// CreateMember handles POST /create-member
func (h Handle) CreateMember(w http.ResponseWriter, r *http.Request) {
	admin, err := h.memberService.AuthorizeAdmin(r.Context(), bearerToken(r))
	if err != nil {
		perrors.Render(w, r, err)
		return
	}

	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode request body", "err", err)
		perrors.Render(w, r, perrors.InvalidInput("Invalid request body"))
		return
	}

	params := CreateMemberParams{}
	copier.Copy(&params, &req)

	user, err := h.memberService.CreateMember(r.Context(), admin, params)
	if err != nil {
		perrors.Render(w, r, err)
		return
	}

	render.JSON(w, r, CreateMemberResponse{
		Success: true,
		User: MemberUser{
			ID:    user.ID.String(),
			Email: user.Email,
		},
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
