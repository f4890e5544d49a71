package gtp

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gorgonia/godash/game"
	wq "github.com/gorgonia/godash/game/wq"
	"github.com/gorgonia/godash/sgf"
	"github.com/pkg/errors"
)

// Command is a GTP command. Do returns the id to reply with, the response and any failure.
type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string      { e.quit = true; return "" }
func showboard(e *Engine) string { return "\n" + strings.TrimRight(fmt.Sprintf("%v", e.g), "\n") }

func clearBoard(e *Engine, args []string) (string, error) {
	g, err := e.newGame(e.g.BoardSize(), 0)
	if err != nil {
		return "", err
	}
	e.g = g
	return "", nil
}

func undo(e *Engine, args []string) (string, error) {
	if !e.g.UndoLastMove() {
		return "", errors.New("cannot undo")
	}
	return "", nil
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	newsize, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "syntax error")
	}
	if newsize < 1 || newsize > MaxBoardSize {
		return "", errors.New("unacceptable size")
	}
	g, err := e.newGame(newsize, 0)
	if err != nil {
		return "", errors.WithMessage(err, "unacceptable size")
	}
	e.g = g
	return "", nil
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"komi\"")
	}

	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "syntax error")
	}

	// accept komi even if ridiculous
	e.komi = komi
	e.g.SetKomi(komi)
	return "", nil
}

func parseColour(s string) (game.Colour, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.None, errors.Errorf("syntax error: invalid colour %q", s)
}

func parseVertex(s string, size int) (game.Coord, error) {
	if strings.EqualFold(s, "pass") {
		return wq.Pass, nil
	}
	c, err := sgf.ChessLikeToCoord(s)
	if err != nil {
		return c, errors.WithMessage(err, "syntax error")
	}
	if !c.In(size) {
		return c, errors.Errorf("invalid vertex %q", s)
	}
	return c, nil
}

func vertex(c game.Coord) string {
	if wq.IsPass(c) {
		return "pass"
	}
	s, err := sgf.CoordToChessLike(c)
	if err != nil {
		return c.String()
	}
	return s
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	colour, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	c, err := parseVertex(args[1], e.g.BoardSize())
	if err != nil {
		return "", err
	}
	if err := e.g.Apply(game.Move{Coord: c, Colour: colour}); err != nil {
		return "", errors.WithMessage(err, "illegal move")
	}
	return "", nil
}

func fixedHandicap(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"fixed_handicap\"")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "syntax error")
	}
	if n < 2 || n > wq.MaxHandicap {
		return "", errors.New("invalid number of stones")
	}
	if e.g.Board().Len() > 0 || e.g.MoveNumber() > 0 {
		return "", errors.New("board not empty")
	}

	size := e.g.BoardSize()
	pts, err := wq.StandardHandicaps.Points(size, n)
	if err != nil {
		return "", errors.WithMessage(err, "invalid number of stones")
	}
	g, err := e.newGame(size, n)
	if err != nil {
		return "", err
	}
	e.g = g

	vertices := make([]string, 0, len(pts))
	for _, p := range pts {
		vertices = append(vertices, vertex(p))
	}
	return strings.Join(vertices, " "), nil
}

func loadSGF(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"loadsgf\"")
	}
	moves := -1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", errors.WithMessage(err, "syntax error")
		}
		moves = n - 1 // the position before move n
	}

	f, err := os.Open(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "cannot load file")
	}
	defer f.Close()

	v, err := sgf.ParseReader(f)
	if err != nil {
		return "", errors.WithMessage(err, "cannot load file")
	}
	g, err := sgf.ToGame(v, moves)
	if err != nil {
		return "", errors.WithMessage(err, "cannot load file")
	}
	e.g = g
	return fmt.Sprintf("%v", g.ToMove()), nil
}

// StandardLib returns the commands the engine understands by default.
func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"showboard":        stdlib(showboard),

		"known_command":  stdlib2(knownCommand),
		"boardsize":      stdlib2(boardSize),
		"clear_board":    stdlib2(clearBoard),
		"komi":           stdlib2(komi),
		"play":           stdlib2(play),
		"undo":           stdlib2(undo),
		"fixed_handicap": stdlib2(fixedHandicap),
		"loadsgf":        stdlib2(loadSGF),
	}
}
