package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrNegativeMinutes возвращается при попытке сдвинуть время на отрицательное значение за пределы суток
	ErrNegativeMinutes = errors.New("resulting time is negative")
)

// TimeString время в формате "HH:MM" (например, "09:30")
// Строковое представление выбрано так, чтобы лексикографическое сравнение
// совпадало с хронологическим
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
// Значение не приводится по модулю суток: 1500 минут дадут "25:00".
// Вызывающая сторона сама отвечает за приведение значения к отображаемому диапазону
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что время имеет корректный формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
// Возвращает ошибку при некорректном формате - никогда не возвращает мусорное значение
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// При переходе через полночь время заворачивается по модулю суток:
// "23:30" + 60 минут = "00:30"
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total < 0 {
		return "", fmt.Errorf("%w: %s - %d minutes", ErrNegativeMinutes, string(t), -minutes)
	}

	return NewTimeStringFromMinutes(total % MinutesPerDay), nil
}

// RoundToGrid округляет минуты до ближайшего кратного slotSize (round-half-up)
// Используется при переводе позиции клика на таймлайне в начало слота
func RoundToGrid(minutes, slotSize int) int {
	if slotSize <= 0 {
		return minutes
	}
	return (minutes + slotSize/2) / slotSize * slotSize
}
