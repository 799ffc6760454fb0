package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// Summary - итог проверки файла.
type Summary struct {
	Valid   int
	Invalid int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// ResolveFormat - для auto выбирает формат по расширению (по умолчанию json).
func ResolveFormat(format InputFormat, filePath string) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile - проверяет файл с сообщениями улиц и пишет валидные записи (компактный JSON, по строке) в ow.
// JSON-файл может содержать один объект или массив объектов.
func ValidateFile(ctx context.Context, validator ports.StreetValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch ResolveFormat(format, filePath) {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return Summary{}, fmt.Errorf("read file: %w", err)
		}
		return validateJSONDocument(ctx, validator, raw, ow)
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, file, ow)
	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

func validateJSONDocument(ctx context.Context, validator ports.StreetValidator, raw []byte, ow io.Writer) (Summary, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		msg, err := ValidateStreetFromJSON(ctx, validator, trimmed)
		if err != nil {
			return Summary{Invalid: 1}, err
		}
		if err := writeLine(ow, msg); err != nil {
			return Summary{}, err
		}
		return Summary{Valid: 1}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return Summary{}, fmt.Errorf("%w: invalid json array: %w", ErrInvalidStreet, err)
	}
	var sum Summary
	for _, item := range items {
		msg, err := ValidateStreetFromJSON(ctx, validator, item)
		if err != nil {
			sum.Invalid++
			continue
		}
		if err := writeLine(ow, msg); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	return sum, nil
}

func writeLine(ow io.Writer, v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
