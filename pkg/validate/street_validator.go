package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// Проверка, что StreetValidator удовлетворяет интерфейсу StreetValidator.
var _ ports.StreetValidator = (*StreetValidator)(nil)

// ErrInvalidStreet - базовая (sentinel) ошибка валидации сообщения улицы.
var ErrInvalidStreet = errors.New("street validation failed")

// StreetValidator - проверка обязательных полей сообщения.
type StreetValidator struct{}

// NewStreetValidator - конструктор StreetValidator.
// Возвращает ErrInvalidStreet (с обёрнутой причиной) при любой проблеме.
func NewStreetValidator() *StreetValidator { return &StreetValidator{} }

// Validate - cityCode, streetCode и streetName обязательны и не пусты.
func (v *StreetValidator) Validate(_ context.Context, msg *domain.StreetMessage) error {
	if msg == nil {
		return fmt.Errorf("%w: сообщение не может быть nil", ErrInvalidStreet)
	}
	if msg.CityCode == 0 {
		return fmt.Errorf("%w: cityCode обязателен", ErrInvalidStreet)
	}
	if msg.StreetCode == 0 {
		return fmt.Errorf("%w: streetCode обязателен", ErrInvalidStreet)
	}
	if strings.TrimSpace(msg.StreetName) == "" {
		return fmt.Errorf("%w: streetName обязателен", ErrInvalidStreet)
	}
	if msg.CityCode < 0 || msg.StreetCode < 0 {
		return fmt.Errorf("%w: коды должны быть положительными (cityCode=%d streetCode=%d)",
			ErrInvalidStreet, msg.CityCode, msg.StreetCode)
	}
	return nil
}
