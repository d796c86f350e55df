// Command resumeparse decodes a resume file and prints the extracted
// profile as JSON without touching the database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/artem13815/jobseeker/pkg/extract"
	"github.com/artem13815/jobseeker/pkg/logger"
	"github.com/artem13815/jobseeker/pkg/resume"
)

func main() {
	var (
		file     string
		mimeType string
		pretty   bool
		maxBytes int64
		level    string
	)
	pflag.StringVarP(&file, "file", "f", "", "Path to resume (pdf, docx, txt); \"-\" reads stdin")
	pflag.StringVar(&mimeType, "mime", "", "Content type hint, sniffed when empty")
	pflag.BoolVar(&pretty, "pretty", false, "Indent JSON output")
	pflag.Int64Var(&maxBytes, "max-bytes", resume.DefaultMaxBytes, "Reject files larger than this")
	pflag.StringVar(&level, "log-level", "warn", "Log level")
	pflag.Parse()

	logger.Init(logger.Config{Level: level})
	if file == "" && pflag.NArg() > 0 {
		file = pflag.Arg(0)
	}
	if file == "" {
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, file, mimeType, pretty, maxBytes); err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("resumeparse")
	}
}

func run(w io.Writer, file, mimeType string, pretty bool, maxBytes int64) error {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(io.LimitReader(os.Stdin, maxBytes+1))
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	text, err := resume.NewDecoder(maxBytes).Decode(filepath.Base(file), mimeType, data)
	if err != nil {
		return err
	}
	log.Debug().Int("chars", len(text)).Msg("decoded")

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(extract.Parse(text))
}
