package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/streets_etl/pkg/validate"
)

// CLI-приложение для проверки сообщений улиц до публикации.
// Валидные записи пишутся в stdout (по одной на строку), итог - в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	streetValidator := validate.NewStreetValidator()

	path := *inputPath
	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, streetValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	if summary.Invalid > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
