package payments

import "errors"

var (
	// ErrCardDeclined возвращается, когда провайдер отклонил списание
	ErrCardDeclined = errors.New("payments client: card declined")

	// ErrNotFound возвращается, когда объект не найден у провайдера
	ErrNotFound = errors.New("payments client: object not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrInvalidSignature возвращается при неверной подписи вебхука
	ErrInvalidSignature = errors.New("payments client: invalid webhook signature")
)
