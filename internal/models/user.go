package models

import "time"

// User представляет локальную учетную запись
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"password_hash"` // SHA256 хеш пароля (hex)
	ID           int64     `json:"id"`            // идентификатор, назначается хранилищем
}

// Session is the currently logged-in identity. It is stored and cleared as a
// single record.
type Session struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}
