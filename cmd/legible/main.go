package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/legible"
	"github.com/tsawler/legible/format"
	"github.com/tsawler/legible/htmltext"
	"github.com/tsawler/legible/mdtext"
	"github.com/tsawler/legible/ocrtext"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		filePath   string
		language   string
		formatName string
		metricName string
		configPath string
		verbose    bool
	)

	flag.StringVar(&filePath, "file", "", "Path to the document to score (reads stdin when empty)")
	flag.StringVar(&language, "lang", "", "BCP-47 language tag, e.g. 'en' or 'es-MX'")
	flag.StringVar(&formatName, "format", "", "Input format: text, md, html or image (default: detected)")
	flag.StringVar(&metricName, "metric", "all", "Metric to print, or 'all' for the full table")
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(filePath, language, formatName, metricName, configPath); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(filePath, language, formatName, metricName, configPath string) error {
	var cfg legible.Config
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if language != "" {
		cfg.Language = language
	}
	cfg.Logger = &log.Logger

	scorer, err := legible.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	data, err := readInput(filePath)
	if err != nil {
		return err
	}

	f, err := resolveFormat(formatName, filePath, data)
	if err != nil {
		return err
	}
	log.Debug().Stringer("format", f).Str("lang", scorer.Lang()).Int("bytes", len(data)).Msg("scoring input")

	text, err := extractText(data, f, scorer.Lang())
	if err != nil {
		return err
	}

	return printMetrics(os.Stdout, scorer, text, metricName)
}

// loadConfig reads a YAML file into a Config.
func loadConfig(path string) (legible.Config, error) {
	var cfg legible.Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// readInput returns the named file's contents, or stdin when no file was
// given.
func readInput(filePath string) ([]byte, error) {
	if filePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// resolveFormat picks the input format: an explicit flag value wins, then
// the filename extension, then magic bytes for stdin input.
func resolveFormat(explicit, filePath string, data []byte) (format.Format, error) {
	if explicit != "" {
		return format.Parse(explicit)
	}
	if filePath != "" {
		return format.Detect(filePath), nil
	}
	return format.DetectFromMagic(data), nil
}

// extractText converts the raw input into scoreable plain text.
func extractText(data []byte, f format.Format, lang string) (string, error) {
	switch f {
	case format.Markdown:
		return mdtext.ExtractPlainText(data), nil
	case format.HTML:
		return htmltext.ExtractPlainTextString(string(data))
	case format.Image:
		return recognizeImage(data, lang)
	default:
		return string(data), nil
	}
}

// recognizeImage runs OCR over image data. Without the ocr build tag this
// reports ErrOCRNotEnabled.
func recognizeImage(data []byte, lang string) (string, error) {
	normalized, err := ocrtext.NormalizeImage(data)
	if err != nil {
		return "", err
	}

	r, err := ocrtext.New()
	if err != nil {
		return "", err
	}
	defer r.Close()

	if lang != "" {
		if err := r.SetLanguage(lang); err != nil {
			return "", err
		}
	}

	return r.RecognizeImage(normalized)
}

// metricEntry names one printable metric. Core entries appear in the
// "all" table; the rest are reachable by name only, mostly metrics that
// presume a particular language.
type metricEntry struct {
	name string
	core bool
	eval func(s *legible.Scorer, text string) string
}

var metrics = []metricEntry{
	{"words", true, func(s *legible.Scorer, text string) string { return strconv.Itoa(s.LexiconCount(text, true)) }},
	{"sentences", true, intMetric((*legible.Scorer).SentenceCount)},
	{"syllables", true, intMetric((*legible.Scorer).SyllableCount)},
	{"difficult-words", true, intMetric((*legible.Scorer).DifficultWords)},
	{"flesch-reading-ease", true, floatMetric((*legible.Scorer).FleschReadingEase)},
	{"flesch-kincaid-grade", true, floatMetric((*legible.Scorer).FleschKincaidGrade)},
	{"smog-index", true, floatMetric((*legible.Scorer).SMOGIndex)},
	{"coleman-liau-index", true, floatMetric((*legible.Scorer).ColemanLiauIndex)},
	{"automated-readability-index", true, floatMetric((*legible.Scorer).AutomatedReadabilityIndex)},
	{"dale-chall", true, floatMetric((*legible.Scorer).DaleChallReadabilityScore)},
	{"dale-chall-v2", true, floatMetric((*legible.Scorer).DaleChallReadabilityScoreV2)},
	{"linsear-write", true, floatMetric((*legible.Scorer).LinsearWriteFormula)},
	{"gunning-fog", true, floatMetric((*legible.Scorer).GunningFog)},
	{"lix", true, floatMetric((*legible.Scorer).LIX)},
	{"rix", true, floatMetric((*legible.Scorer).RIX)},
	{"spache", true, floatMetric((*legible.Scorer).SpacheReadability)},
	{"mcalpine-eflaw", true, floatMetric((*legible.Scorer).McAlpineEFLAW)},
	{"reading-time", true, floatMetric((*legible.Scorer).ReadingTime)},
	{"text-standard", true, func(s *legible.Scorer, text string) string { return s.TextStandardString(text) }},

	{"fernandez-huerta", false, floatMetric((*legible.Scorer).FernandezHuerta)},
	{"szigriszt-pazos", false, floatMetric((*legible.Scorer).SzigrisztPazos)},
	{"gutierrez-polini", false, floatMetric((*legible.Scorer).GutierrezPolini)},
	{"crawford", false, floatMetric((*legible.Scorer).Crawford)},
	{"gulpease", false, floatMetric((*legible.Scorer).GulpeaseIndex)},
	{"osman", false, floatMetric((*legible.Scorer).Osman)},
	{"wiener-sachtextformel", false, func(s *legible.Scorer, text string) string {
		v, _ := s.WienerSachtextformel(text, 1)
		return formatFloat(v)
	}},
}

func floatMetric(fn func(*legible.Scorer, string) float64) func(*legible.Scorer, string) string {
	return func(s *legible.Scorer, text string) string {
		return formatFloat(fn(s, text))
	}
}

func intMetric(fn func(*legible.Scorer, string) int) func(*legible.Scorer, string) string {
	return func(s *legible.Scorer, text string) string {
		return strconv.Itoa(fn(s, text))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// printMetrics writes either the full core table or a single named value.
func printMetrics(w io.Writer, s *legible.Scorer, text, name string) error {
	if name == "" || name == "all" {
		for _, m := range metrics {
			if !m.core {
				continue
			}
			fmt.Fprintf(w, "%-28s %s\n", m.name, m.eval(s, text))
		}
		return nil
	}

	for _, m := range metrics {
		if m.name == name {
			fmt.Fprintln(w, m.eval(s, text))
			return nil
		}
	}

	return fmt.Errorf("unknown metric %q", name)
}
