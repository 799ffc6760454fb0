package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// DecodeStreetMessage - разбор JSON-тела сообщения.
// Неизвестные поля допускаются (продюсер добавляет служебные), хвост после объекта - нет.
// Любая ошибка оборачивается в ErrInvalidStreet.
func DecodeStreetMessage(raw []byte) (*domain.StreetMessage, error) {
	var msg domain.StreetMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidStreet, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidStreet)
	}
	return &msg, nil
}

// ValidateStreetFromJSON - разбор и валидация сообщения из JSON.
func ValidateStreetFromJSON(ctx context.Context, validator ports.StreetValidator, raw []byte) (*domain.StreetMessage, error) {
	msg, err := DecodeStreetMessage(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
