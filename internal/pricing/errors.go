package pricing

import "errors"

var (
	// ErrInvalidTier возвращается, когда количество гостей не входит
	// в тарифную сетку выбранной длительности
	ErrInvalidTier = errors.New("pricing: guest count is not a valid tier for this duration")

	// ErrInvalidDuration возвращается при неизвестной длительности обслуживания
	ErrInvalidDuration = errors.New("pricing: unknown service duration")
)
