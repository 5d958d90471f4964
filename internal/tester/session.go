// Package tester implements the interactive bounded-string tester: a
// read-evaluate-print loop that parses JSON or space-separated input,
// constructs a value per configured profile, and reports results with
// per-iteration timing.
package tester

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/isseis/go-bounded-str/boundedstr"
	"github.com/isseis/go-bounded-str/internal/color"
	"github.com/isseis/go-bounded-str/internal/profile"
	"github.com/isseis/go-bounded-str/internal/redact"
)

// Error definitions for session construction
var (
	ErrProfilesRequired = errors.New("tester: profiles are required")
	ErrInputRequired    = errors.New("tester: input reader is required")
	ErrOutputRequired   = errors.New("tester: output writer is required")
)

// exitWord ends the session, compared case-insensitively.
const exitWord = "exit"

// Options configures a Session.
type Options struct {
	// Profiles is the loaded profile set driving validation.
	Profiles *profile.Set

	// Input is the line source, typically os.Stdin.
	Input io.Reader

	// Output receives prompts and results, typically os.Stdout.
	Output io.Writer

	// Palette colors output; nil means plain text.
	Palette *color.Palette

	// Redactor hides secret values; nil means the default placeholder.
	Redactor *redact.Config

	// Logger records session events. nil means slog.Default().
	Logger *slog.Logger

	// Quiet suppresses the banner and usage text.
	Quiet bool
}

// Session is one interactive tester run over a line-based input stream.
type Session struct {
	profiles *profile.Set
	in       io.Reader
	out      io.Writer
	palette  *color.Palette
	redactor *redact.Config
	logger   *slog.Logger
	quiet    bool
}

// New validates opts and builds a Session.
func New(opts Options) (*Session, error) {
	if opts.Profiles == nil {
		return nil, ErrProfilesRequired
	}
	if opts.Input == nil {
		return nil, ErrInputRequired
	}
	if opts.Output == nil {
		return nil, ErrOutputRequired
	}
	palette := opts.Palette
	if palette == nil {
		palette = color.NewPalette(false)
	}
	redactor := opts.Redactor
	if redactor == nil {
		redactor = redact.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		profiles: opts.Profiles,
		in:       opts.Input,
		out:      opts.Output,
		palette:  palette,
		redactor: redactor,
		logger:   logger,
		quiet:    opts.Quiet,
	}, nil
}

// Run drives the prompt loop until the input ends, the exit word is read, or
// ctx is canceled between lines.
func (s *Session) Run(ctx context.Context) error {
	if !s.quiet {
		s.printBanner()
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitWord) {
			break
		}
		s.processLine(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(s.out, "Exiting interactive tester.")
	return nil
}

func (s *Session) printBanner() {
	fmt.Fprintln(s.out, s.palette.Banner("bounded-str interactive tester"))
	names := make([]string, 0, len(s.profiles.Profiles))
	fieldsExample := make([]string, 0, len(s.profiles.Profiles))
	for i := range s.profiles.Profiles {
		p := &s.profiles.Profiles[i]
		names = append(names, p.Name)
		fieldsExample = append(fieldsExample, fmt.Sprintf("%q:\"...\"", p.Name))
	}
	fmt.Fprintf(s.out, "Enter JSON like {%s}\n", strings.Join(fieldsExample, ","))
	fmt.Fprintf(s.out, "Or enter space-separated: %s\n", strings.Join(names, " "))
	fmt.Fprintf(s.out, "Type '%s' to quit.\n\n", exitWord)
	for i := range s.profiles.Profiles {
		p := &s.profiles.Profiles[i]
		fmt.Fprintf(s.out, "  %s: %s\n", p.Name, s.palette.Detail(s.profiles.Kind(p.Name).String()))
	}
	fmt.Fprintln(s.out)
}

// processLine parses, validates, and reports a single input line.
func (s *Session) processLine(line string) {
	start := time.Now()

	values, err := s.parseLine(line)
	if err != nil {
		fmt.Fprintln(s.out, s.palette.Failure(err.Error()))
		return
	}

	results := make([]*boundedstr.Str, 0, len(s.profiles.Profiles))
	for i := range s.profiles.Profiles {
		p := &s.profiles.Profiles[i]
		value, err := s.profiles.Kind(p.Name).New(values[p.Name])
		if err != nil {
			fmt.Fprintln(s.out, s.palette.Failure(fmt.Sprintf("%s error: %v", p.Name, err)))
			s.logger.Warn("validation failed", "field", p.Name, "error", err)
			return
		}
		results = append(results, value)
	}
	validated := time.Since(start)

	for i, value := range results {
		p := &s.profiles.Profiles[i]
		fmt.Fprintf(s.out, "%s: %s, bytes: %d, logical: %d (%s)\n",
			p.Name,
			s.palette.Success(s.redactor.Value(value.String(), p.Secret)),
			value.Len(),
			value.LogicalLen(),
			value.Representation(),
		)
	}

	total := time.Since(start)
	fmt.Fprintln(s.out, s.palette.Detail(fmt.Sprintf("Parse + validation time: %.6f seconds", validated.Seconds())))
	fmt.Fprintln(s.out, s.palette.Detail(fmt.Sprintf("Total cycle time (including render): %.6f seconds", total.Seconds())))
	fmt.Fprintln(s.out)
	s.logger.Debug("line processed", "fields", len(results), "validate_seconds", validated.Seconds())
}

// parseLine splits one input line into per-profile values. A line starting
// with '{' is decoded as a JSON object; a malformed document is reported as a
// parse error before any field reaches validation. Anything else is split on
// whitespace, one positional value per profile.
func (s *Session) parseLine(line string) (map[string]string, error) {
	if strings.HasPrefix(line, "{") {
		return s.parseJSON(line)
	}
	parts := strings.Fields(line)
	if len(parts) != len(s.profiles.Profiles) {
		names := make([]string, 0, len(s.profiles.Profiles))
		for i := range s.profiles.Profiles {
			names = append(names, s.profiles.Profiles[i].Name)
		}
		return nil, fmt.Errorf("expected %d values: %s", len(s.profiles.Profiles), strings.Join(names, " "))
	}
	values := make(map[string]string, len(parts))
	for i := range s.profiles.Profiles {
		values[s.profiles.Profiles[i].Name] = parts[i]
	}
	return values, nil
}

func (s *Session) parseJSON(line string) (map[string]string, error) {
	var fields map[string]string
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	for i := range s.profiles.Profiles {
		name := s.profiles.Profiles[i].Name
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("missing field %q", name)
		}
	}
	for name := range fields {
		if s.profiles.Kind(name) == nil {
			return nil, fmt.Errorf("unknown field %q", name)
		}
	}
	return fields, nil
}
