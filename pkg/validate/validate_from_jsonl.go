package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// ValidateJSONLStream - построчная проверка JSONL.
// Пустые строки пропускаются, невалидные считаются и не прерывают чтение.
func ValidateJSONLStream(ctx context.Context, validator ports.StreetValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(ir)
	// запас на большие строки (additionalMeta бывает объёмной)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		msg, err := ValidateStreetFromJSON(ctx, validator, line)
		if err != nil {
			sum.Invalid++
			continue
		}
		if err := writeLine(ow, msg); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}
