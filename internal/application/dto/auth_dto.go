package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceName string `json:"device_name"`
}

// LoginResponse salida del login: token Bearer de 7 días más rol y nombre
// para que el frontal pinte el menú sin otra llamada.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "Bearer"
	Role        string `json:"role"`
	Username    string `json:"username"`
}
