package ops

import "time"

// Greeting returns a time-of-day greeting for the given moment.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return "Доброе утро!"
	case hour >= 12 && hour < 18:
		return "Добрый день!"
	case hour >= 18 && hour < 23:
		return "Добрый вечер!"
	default:
		return "Спокойной ночи!"
	}
}
