package domain

type User struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	// Token is present when the user object is stored wrapped in session
	// storage; it mirrors the standalone session token.
	Token string `json:"token,omitempty"`
}
