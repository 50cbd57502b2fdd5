package response

import (
	"dealstream/internal/usecase/commands"
	"dealstream/internal/usecase/queries"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Message:     "Login successful",
		AccessToken: r.AccessToken,
		User: AuthUser{
			ID:       r.UserID.String(),
			Username: r.Username,
			Role:     r.Role.String(),
		},
	}
}

type MeResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

func FromUserView(v *queries.UserView, role string) *MeResponse {
	return &MeResponse{
		ID:        v.ID.String(),
		Username:  v.Username,
		Role:      role,
		CreatedAt: v.CreatedAt.Unix(),
	}
}
