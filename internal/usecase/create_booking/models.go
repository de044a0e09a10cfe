package create_booking

import (
	"time"

	"github.com/quesarica/QR-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	EventDate    time.Time           // Дата мероприятия (без времени)
	EventTime    types.TimeString    // Время подачи (опционально, например "17:30")
	EventAddress string              // Адрес проведения
	CustomerName string              // Имя клиента
	CustomerEmail string             // Email клиента
	CustomerPhone string             // Телефон клиента
	GuestCount   int                 // Количество гостей, должно совпадать с ценовой сеткой
	Duration     string              // Длительность обслуживания: short или long
	Meats        []string            // Выбор мяса, ровно четыре различных позиции
	Extras       map[string]int      // Дополнения: id каталога -> количество
	ExtraFlavors map[string][]string // Вкусы agua fresca
	PaymentMethod string             // card или cash
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64  // ID созданного бронирования
	Reference string // Человекочитаемый номер брони

	TotalPriceCents int64 // Итоговая цена в центах
	Status          string

	// Сумма к списанию картой (с наценкой и комиссией), только для card
	CardChargeCents *int64
	// Депозит и остаток для наличной оплаты, только для cash
	DepositCents    *int64
	BalanceDueCents *int64

	// Ссылка на платежную сессию провайдера
	CheckoutURL string
}
