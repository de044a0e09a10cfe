package admin_login

import (
	"context"
	"time"
)

type AuthService interface {
	Login(ctx context.Context, password string) (string, time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
