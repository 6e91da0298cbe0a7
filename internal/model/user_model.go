package model

// User is the profile the auth endpoints return. Token rides along on
// login/register responses and is lifted into the auth session.
type User struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Avatar       string   `json:"avatar,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	HeightCm     *float64 `json:"heightCm,omitempty"`
	Role         string   `json:"role,omitempty"`
	Status       string   `json:"status,omitempty"`
	Token        string   `json:"token,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
}

// UpdateProfileRequest carries the editable profile fields for
// PUT /users/profile. HeightCm is omitted when unset so the backend
// keeps the current value.
type UpdateProfileRequest struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
	HeightCm *float64 `json:"heightCm,omitempty"`
	Goal     string   `json:"goal,omitempty"`
}

// AuthSession is the persisted auth-store document.
type AuthSession struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
