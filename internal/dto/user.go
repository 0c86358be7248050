package dto

import "github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"

// RegisterUserRequest is the self-service signup payload. Accounts created
// this way start pending approval with every screen flag off.
type RegisterUserRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=3"`
}

// CreateUserRequest is the admin-side user creation payload. Accounts
// created this way are active immediately.
type CreateUserRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=3"`
}

// SetPermissionRequest toggles a single screen flag on a user.
type SetPermissionRequest struct {
	Permission string `json:"permission" binding:"required"`
	Value      bool   `json:"value"`
}

// UserResponse is the API shape of a user account. The password never
// leaves the service layer.
type UserResponse struct {
	Login         string          `json:"login"`
	Email         string          `json:"email"`
	ApprovalState string          `json:"approvalState"`
	IsMaster      bool            `json:"isMaster"`
	Permissions   map[string]bool `json:"permissions"`
}

// ListUsersResponse wraps the listed user accounts.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain user account to its API shape.
func ToUserResponse(u *domain.UserAccount) UserResponse {
	state := u.ApprovalState
	if u.IsActive() {
		state = domain.ApprovalActive
	}
	perms := make(map[string]bool, len(domain.PermissionKeys))
	for _, key := range domain.PermissionKeys {
		perms[string(key)] = u.Permissions.Flag(key)
	}
	return UserResponse{
		Login:         u.Login,
		Email:         u.Email,
		ApprovalState: string(state),
		IsMaster:      u.IsMaster(),
		Permissions:   perms,
	}
}

// ToListUsersResponse converts a domain slice to the list response.
func ToListUsersResponse(users []domain.UserAccount) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
