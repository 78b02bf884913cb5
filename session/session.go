package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/AirHelp/statcalc/config"
	"github.com/AirHelp/statcalc/format"
	"github.com/AirHelp/statcalc/parser"
)

const (
	banner = "This program calculates the mean, median, and mode of a dataset."
	prompt = "Enter a dataset (comma separated, e.g. 1,2,3,4,5) or 'q' to quit: "
)

// ErrNoIntegers is reported when a line holds nothing that parses as an integer.
var ErrNoIntegers = errors.New("no valid integers found in input")

// Session is a single interactive prompt loop over In and Out.
type Session struct {
	reader  *bufio.Reader
	out     io.Writer

	options format.Options
	logger  *zap.Logger
}

// NewSessionInput groups dependencies of New. Nil Logger disables logging.
type NewSessionInput struct {
	In  io.Reader
	Out io.Writer

	GlobalConfig config.Config
	Logger       *zap.Logger
}

// New creates session, options are taken from GlobalConfig.
func New(i NewSessionInput) *Session {
	logger := i.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		reader:  bufio.NewReader(i.In),
		out:     i.Out,
		options: format.Options{
			Extended: i.GlobalConfig.Extended,
			Summary:  i.GlobalConfig.Summary,
		},
		logger: logger.With(zap.String("component", "session")),
	}
}

// Start runs the prompt loop until quit sentinel, end of input or ctx cancellation.
func (s *Session) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if _, err := fmt.Fprintln(s.out, banner); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)

	go s.readLines(ctx, lines, readErr)

	for {
		if ctx.Err() != nil {
			s.logger.Debug("Context cancelled, shutting down session")
			return nil
		}

		if _, err := fmt.Fprint(s.out, prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			s.logger.Debug("Context cancelled, shutting down session")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					s.logger.Warn("Failed to read input", zap.Error(err))
					return err
				}

				s.logger.Debug("End of input, shutting down session")
				return nil
			}

			if isQuit(line) {
				s.logger.Debug("Quit requested")
				return nil
			}

			if err := s.perform(line); err != nil {
				if !errors.Is(err, ErrNoIntegers) {
					return err
				}

				s.logger.Debug("Rejected input line", zap.String("line", line))

				if _, err := fmt.Fprintf(s.out, "Error: %v\n", err); err != nil {
					return err
				}
			}
		}
	}
}

// readLines feeds lines until input ends or ctx is done. Exactly one value is sent on errc.
// Lines are not length limited.
func (s *Session) readLines(ctx context.Context, lines chan<- string, errc chan<- error) {
	defer close(lines)

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			errc <- err
			return
		}

		if line == "" && err != nil {
			errc <- nil
			return
		}

		select {
		case lines <- strings.TrimRight(line, "\r\n"):
		case <-ctx.Done():
			errc <- nil
			return
		}

		if err != nil {
			errc <- nil
			return
		}
	}
}

func (s *Session) perform(line string) error {
	numbers, rejected := parser.ParseWithRejects(line)

	if len(rejected) > 0 {
		s.logger.Debug("Dropped tokens", zap.Strings("tokens", rejected))
	}

	if len(numbers) == 0 {
		return ErrNoIntegers
	}

	s.logger.Debug("Parsed dataset", zap.Ints("numbers", numbers))

	if err := format.Report(s.out, numbers, s.options); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	_, err := fmt.Fprintln(s.out)

	return err
}

func isQuit(line string) bool {
	l := strings.TrimSpace(line)

	return l == "q" || l == "Q"
}
