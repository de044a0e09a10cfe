package send_reminders

import "time"

// Response модель ответа прогона напоминаний
type Response struct {
	TargetDate time.Time // дата мероприятий, для которых шлем напоминания
	Sent       int       // сколько напоминаний отправлено за прогон
}
