// Package gtp is a Go Text Protocol front end for the rules engine.
//
// The engine keeps score of nothing and generates no moves: it referees the position, which is
// what a GTP controller needs when pairing two programs or replaying a record.
package gtp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	wq "github.com/gorgonia/godash/game/wq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultBoardSize = 19
	DefaultKomi      = 6.5
	MaxBoardSize     = 25 // the largest board chess-like vertices can address in GTP
)

// Engine holds the game being refereed. Commands are run one at a time by the goroutine started in Start.
type Engine struct {
	g    *wq.Game
	komi float64

	known map[string]Command

	ch   chan string
	ret  chan string
	quit bool

	logger        *zap.Logger
	name, version string
}

// Option configures an Engine.
type Option func(e *Engine)

// WithLogger logs every command and its outcome to l.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithKomi sets the komi of new games.
func WithKomi(komi float64) Option {
	return func(e *Engine) { e.komi = komi }
}

// New creates an engine refereeing g. A nil g starts an empty 19x19 game. A nil known uses StandardLib.
func New(g *wq.Game, name, version string, known map[string]Command, opts ...Option) *Engine {
	if known == nil {
		known = StandardLib()
	}
	e := &Engine{
		g:       g,
		komi:    DefaultKomi,
		known:   known,
		logger:  zap.NewNop(),
		name:    name,
		version: version,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.g == nil {
		var err error
		if e.g, err = e.newGame(DefaultBoardSize, 0); err != nil {
			panic(err)
		}
	}
	return e
}

func (e *Engine) newGame(size, handicap int) (*wq.Game, error) {
	return wq.New(size, handicap, e.komi)
}

// Start runs the engine in a goroutine. Commands are sent on input and each response is received on output.
// Output is closed after "quit", or after input is closed.
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// State returns the game being refereed.
func (e *Engine) State() *wq.Game { return e.g }

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			continue
		}
		if err != nil {
			e.logger.Warn("bad command", zap.String("cmd", cmd), zap.Error(err))
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		if err != nil {
			e.logger.Info("command failed", zap.String("cmd", cmd), zap.Error(err))
		} else {
			e.logger.Debug("command", zap.String("cmd", cmd), zap.String("result", result))
		}
		e.ret <- handleResult(id, result, err)
		if e.quit {
			return
		}
	}
}

// Run feeds lines from r to the engine and writes the responses to w until quit, EOF or ctx is done.
func (e *Engine) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	input, output := e.Start()
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(r)
		for s.Scan() {
			select {
			case lines <- s.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
		scanErr <- s.Err()
	}()

	defer close(input)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.WithStack(err)
				default:
					return nil
				}
			}
			if isBlank(line) {
				continue
			}
			input <- line
			resp, ok := <-output
			if !ok {
				return nil
			}
			if _, err := io.WriteString(w, resp); err != nil {
				return errors.WithStack(err)
			}
			if e.quit {
				return nil
			}
		}
	}
}

func isBlank(line string) bool {
	_, tokens := split(line)
	return len(tokens) == 0
}

// split removes comments and control characters, and breaks a line into an optional id and its words.
func split(cmd string) (id int, tokens []string) {
	if i := strings.IndexByte(cmd, '#'); i >= 0 {
		cmd = cmd[:i]
	}
	cmd = strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 32 || r == 127:
			return -1
		}
		return r
	}, cmd)
	tokens = strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil
	}
	if id, err := strconv.Atoi(tokens[0]); err == nil {
		return id, tokens[1:]
	}
	return -1, tokens
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	var tokens []string
	id, tokens = split(cmd)
	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo some how does nothing when there are no tokens left. An ID may be passed in but it'll be ignored
	}

	cmdName := strings.ToLower(tokens[0])
	var ok bool
	if x, ok = e.known[cmdName]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", cmdName)
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
