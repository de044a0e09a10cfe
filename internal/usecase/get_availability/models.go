package get_availability

// Request модель запроса доступности на месяц
type Request struct {
	Year  int
	Month int // 1..12
}

// DayAvailability доступность одного календарного дня
type DayAvailability struct {
	Date     string // "2026-09-15"
	Booked   int    // количество активных бронирований
	Bookable bool   // можно ли создать бронирование на этот день
}

// Response модель ответа с доступностью по дням месяца
type Response struct {
	Month         string // "2026-09"
	MaxPerDay     int
	MinNoticeDays int
	Days          []DayAvailability
}
