package pricing

import (
	"sort"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

// Тарифная сетка: длительность -> количество гостей -> базовая цена в центах.
// Все расчеты ведутся в целых центах, чтобы исключить дрейф плавающей точки.
var basePrices = map[domain.ServiceDuration]map[int]int64{
	domain.DurationShort: {
		25: 39500,
		50: 49500,
		75: 59500,
	},
	domain.DurationLong: {
		100: 69500,
		125: 79500,
		150: 89500,
		175: 99500,
		200: 109500,
	},
}

// ExtraItem позиция каталога дополнений
type ExtraItem struct {
	ID             string
	UnitPriceCents int64
	PerUnit        bool // true: цена за штуку; false: цена за партию
}

// ExtrasCatalog каталог дополнений к пакету
var ExtrasCatalog = map[string]ExtraItem{
	"rice":          {ID: "rice", UnitPriceCents: 4000, PerUnit: false},
	"beans":         {ID: "beans", UnitPriceCents: 4000, PerUnit: false},
	"quesadillas":   {ID: "quesadillas", UnitPriceCents: 3000, PerUnit: false},
	"jalapenos":     {ID: "jalapenos", UnitPriceCents: 2000, PerUnit: false},
	"guacamole":     {ID: "guacamole", UnitPriceCents: 4000, PerUnit: false},
	"salsa":         {ID: "salsa", UnitPriceCents: 4000, PerUnit: false},
	"agua-fresca":   {ID: "agua-fresca", UnitPriceCents: 2500, PerUnit: false},
	"salad":         {ID: "salad", UnitPriceCents: 3000, PerUnit: false},
	"cheeseburgers": {ID: "cheeseburgers", UnitPriceCents: 400, PerUnit: true},
	"hot-dogs":      {ID: "hot-dogs", UnitPriceCents: 200, PerUnit: true},
}

// BasePrice возвращает базовую цену пакета в центах.
// Количество гостей должно точно совпадать с одним из тарифов.
func BasePrice(duration domain.ServiceDuration, guestCount int) (int64, error) {
	tiers, ok := basePrices[duration]
	if !ok {
		return 0, ErrInvalidDuration
	}

	price, ok := tiers[guestCount]
	if !ok {
		return 0, ErrInvalidTier
	}

	return price, nil
}

// ExtrasTotal суммирует стоимость дополнений в центах.
// Неизвестные идентификаторы игнорируются, нулевые и отрицательные
// количества дают 0.
func ExtrasTotal(extras map[string]int) int64 {
	var total int64
	for id, qty := range extras {
		if qty <= 0 {
			continue
		}
		item, ok := ExtrasCatalog[id]
		if !ok {
			continue
		}
		total += int64(qty) * item.UnitPriceCents
	}
	return total
}

// Total возвращает полную цену заказа: базовый пакет плюс дополнения
func Total(duration domain.ServiceDuration, guestCount int, extras map[string]int) (int64, error) {
	base, err := BasePrice(duration, guestCount)
	if err != nil {
		return 0, err
	}
	return base + ExtrasTotal(extras), nil
}

// GuestTiers возвращает отсортированный список тарифов по количеству
// гостей для указанной длительности
func GuestTiers(duration domain.ServiceDuration) []int {
	tiers, ok := basePrices[duration]
	if !ok {
		return nil
	}

	counts := make([]int, 0, len(tiers))
	for guests := range tiers {
		counts = append(counts, guests)
	}
	sort.Ints(counts)
	return counts
}

// IsValidTier возвращает true, если количество гостей входит в тарифную
// сетку указанной длительности
func IsValidTier(duration domain.ServiceDuration, guestCount int) bool {
	_, err := BasePrice(duration, guestCount)
	return err == nil
}
