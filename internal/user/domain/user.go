package domain

type User struct {
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
}

// Profile mirrors the user_personal_info row. Description lives in the legacy
// "secret" column.
type Profile struct {
	Login       string  `json:"username"`
	Name        string  `json:"name"`
	BirthDate   *string `json:"birthDate,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Login   string `json:"login"`
	Token   string `json:"token"`
}

type UpdateProfileRequest struct {
	Description *string `json:"description"`
}
