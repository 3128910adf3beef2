package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"marsdome/internal/domain"
	"marsdome/internal/materials"
	"marsdome/internal/render"
)

const rule = "-------------------------------------------"

// DefaultExitWord ends the shell when typed at any prompt.
const DefaultExitWord = "exit"

// errExit signals that the user typed the exit word or input ended.
var errExit = errors.New("exit")

// Shell reads dome parameters from in and writes results to out.
type Shell struct {
	svc      domain.DomeService
	in       *bufio.Scanner
	out      io.Writer
	exitWord string
	log      *slog.Logger

	last    domain.DomeResult
	hasLast bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithExitWord replaces DefaultExitWord.
func WithExitWord(w string) Option {
	return func(s *Shell) {
		if w != "" {
			s.exitWord = w
		}
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a shell backed by svc.
func New(svc domain.DomeService, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		exitWord: DefaultExitWord,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Last returns the most recent successful result. Failed rounds leave it
// unchanged.
func (s *Shell) Last() (domain.DomeResult, bool) { return s.last, s.hasLast }

// Run loops until the exit word, end of input or ctx cancellation.
// It returns only input read failures and ctx errors.
func (s *Shell) Run(ctx context.Context) error {
	id := domain.SessionID(uuid.NewString())
	ctx = domain.WithSessionID(ctx, id)
	s.log.DebugContext(ctx, "shell started", "session_id", id.String())

	s.printf("### Mars base dome area and weight calculator ###\n")
	s.printf("Type %q at any prompt to quit.\n", s.exitWord)
	s.printf("%s\n", rule)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.round(ctx)
		if errors.Is(err, errExit) {
			break
		}
		if err != nil {
			return err
		}
	}

	s.printf("\nExiting calculator.\n")
	s.log.DebugContext(ctx, "shell finished", "session_id", id.String())
	return s.in.Err()
}

// round runs one prompt cycle. Input and calculation errors are reported
// to the user and swallowed.
func (s *Shell) round(ctx context.Context) error {
	diameter, err := s.ask("Dome diameter (m): ")
	if err != nil {
		return err
	}
	material, err := s.ask(fmt.Sprintf("Material (%s) [default: %s]: ", materialChoices(), materials.Default))
	if err != nil {
		return err
	}
	thickness, err := s.ask("Thickness (cm) [default: 1]: ")
	if err != nil {
		return err
	}

	spec, err := ParseSpec(diameter, material, thickness)
	if err != nil {
		s.printf("error: %v\n", err)
		return nil
	}

	res, err := s.svc.Calculate(ctx, spec)
	if err != nil {
		s.printf("error: %v\n", err)
		return nil
	}
	s.last, s.hasLast = res, true

	s.printf("%s\n%s\n%s\n", rule, render.Line(res), rule)
	return nil
}

// ask prompts and returns the trimmed answer, or errExit.
func (s *Shell) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", errExit
	}
	answer := strings.TrimSpace(s.in.Text())
	if answer == s.exitWord {
		return "", errExit
	}
	return answer, nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func materialChoices() string {
	names := materials.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
