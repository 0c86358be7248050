package dto

// LoginRequest is the credential payload for token issuance.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token plus the authenticated account so
// the client can gate its navigation without a second round trip.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
