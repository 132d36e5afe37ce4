package clock

import "time"

// System - источник текущего времени для сервисов. Отдельный тип
// нужен, чтобы в тестах подменять время через интерфейс.
type System struct{}

func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}
