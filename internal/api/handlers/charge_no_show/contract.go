package charge_no_show

import (
	"context"

	"github.com/quesarica/QR-BookingService/internal/usecase/charge_no_show"
)

type ChargeNoShowUseCase interface {
	Execute(ctx context.Context, req *charge_no_show.Request) (*charge_no_show.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
