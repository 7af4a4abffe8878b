package api

// CredentialsRequest - тело запросов login и register
type CredentialsRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде, хешируется сервером
}

// AuthResponse представляет ответ на успешный вход или регистрацию
type AuthResponse struct {
	Username    string `json:"username"`     // имя вошедшего пользователя
	AccessToken string `json:"access_token"` // JWT access token
	UserID      int64  `json:"user_id"`      // id пользователя
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // HTTP статус текстом
	Message string `json:"message,omitempty"` // сообщение для пользователя
	Kind    string `json:"kind,omitempty"`    // вид ошибки авторизации: validation, conflict, invalid_credentials
}
