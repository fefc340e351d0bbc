package entities

// Actor is the caller as reported by the identity provider. It is trusted as given.
type Actor struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     Role   `json:"role"`
}
