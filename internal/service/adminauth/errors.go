package adminauth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается при недействительном токене сессии
	ErrInvalidToken = errors.New("invalid session token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
