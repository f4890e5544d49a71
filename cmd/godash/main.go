// Command godash referees Go games: it speaks GTP, replays SGF records and looks for kos.
//
// Usage:
//	godash gtp [flags]
//	godash replay FILE [--gif OUT] [--dot OUT] [--planes OUT] [flags]
//	godash ko FILE [flags]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorgonia/godash/encoding/dot"
	"github.com/gorgonia/godash/encoding/gif"
	"github.com/gorgonia/godash/features"
	"github.com/gorgonia/godash/game"
	wq "github.com/gorgonia/godash/game/wq"
	"github.com/gorgonia/godash/gtp"
	"github.com/gorgonia/godash/sgf"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	name    = "godash"
	version = "0.1.0"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel)

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

func handleShutdown(cancel context.CancelFunc) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
}

// NewLogger builds a production logger writing to stderr at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "Invalid log level %q", level)
	}
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(lvl)
	conf.Sampling = nil
	logger, err := conf.Build()
	return logger, errors.WithStack(err)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s gtp|replay|ko [args]\n", name)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return errors.New("no subcommand")
	}
	cmd, args := args[0], args[1:]

	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	commonFlags(fs)
	var gifOut, dotOut, planesOut *string
	var dotBoards *bool
	var lookback *int
	switch cmd {
	case "gtp":
	case "replay":
		gifOut = fs.String("gif", "", "write an animated GIF of the main line to this file")
		dotOut = fs.String("dot", "", "write the variation tree as Graphviz DOT to this file")
		dotBoards = fs.Bool("dot-boards", false, "draw the position in every DOT node")
		planesOut = fs.String("planes", "", "write the feature planes of the final position as a .npy file")
		lookback = fs.Int("lookback", features.DefaultLookback, "positions of history in --planes")
	case "ko":
	default:
		usage(os.Stderr)
		return errors.Errorf("unknown subcommand %q", cmd)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := Setup(fs)
	if err != nil {
		return err
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	switch cmd {
	case "gtp":
		return runGTP(ctx, cfg, logger, stdin, stdout)
	case "replay":
		if fs.NArg() != 1 {
			return errors.New("replay takes exactly one SGF file")
		}
		out := replayOutputs{gif: *gifOut, dot: *dotOut, dotBoards: *dotBoards, planes: *planesOut, lookback: *lookback}
		return runReplay(cfg, logger, fs.Arg(0), out, stdout)
	default: // ko
		if fs.NArg() != 1 {
			return errors.New("ko takes exactly one SGF file")
		}
		return runKo(logger, fs.Arg(0), stdout)
	}
}

func runGTP(ctx context.Context, cfg *Config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	g, err := wq.New(cfg.BoardSize, 0, cfg.Komi)
	if err != nil {
		return err
	}
	e := gtp.New(g, name, version, nil, gtp.WithLogger(logger), gtp.WithKomi(cfg.Komi))
	logger.Info("GTP engine started", zap.Int("board_size", cfg.BoardSize), zap.Float64("komi", cfg.Komi))
	return e.Run(ctx, stdin, stdout)
}

func load(file string) (*sgf.Variation, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	v, err := sgf.ParseReader(f)
	return v, errors.WithMessagef(err, "Unable to parse %v", file)
}

// replayOutputs are the optional files written by the replay subcommand.
type replayOutputs struct {
	gif, dot, planes string
	dotBoards        bool
	lookback         int
}

func runReplay(cfg *Config, logger *zap.Logger, file string, out replayOutputs, stdout io.Writer) error {
	v, err := load(file)
	if err != nil {
		return err
	}
	boards, err := sgf.Replay(v)
	if err != nil {
		return errors.WithMessagef(err, "Unable to replay %v", file)
	}
	last := boards[len(boards)-1]
	logger.Info("replayed", zap.String("file", file), zap.Int("nodes", len(boards)), zap.Int("stones", last.Len()))
	fmt.Fprintf(stdout, "%s", last)

	if out.gif != "" {
		conf := gif.DefaultConfig()
		conf.Width, conf.Height, conf.Delay = cfg.GIF.Width, cfg.GIF.Height, cfg.GIF.Delay
		if err := writeFile(out.gif, func(w io.Writer) error { return gif.EncodeAll(w, boards, conf) }); err != nil {
			return err
		}
		logger.Info("wrote gif", zap.String("file", out.gif), zap.Int("frames", len(boards)))
	}

	if out.dot != "" {
		src, err := dot.ToDot(v, dot.Options{Boards: out.dotBoards})
		if err != nil {
			return err
		}
		if err := writeFile(out.dot, func(w io.Writer) error {
			_, err := io.WriteString(w, src)
			return err
		}); err != nil {
			return err
		}
		logger.Info("wrote dot", zap.String("file", out.dot))
	}

	if out.planes != "" {
		g, err := sgf.ToGame(v, -1)
		if err != nil {
			return errors.WithMessagef(err, "Unable to replay %v as a game", file)
		}
		T, err := features.Planes(g, out.lookback)
		if err != nil {
			return err
		}
		if err := writeFile(out.planes, T.WriteNpy); err != nil {
			return err
		}
		logger.Info("wrote planes", zap.String("file", out.planes), zap.Ints("shape", T.Shape()))
	}
	return nil
}

func writeFile(file string, write func(w io.Writer) error) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.WithMessagef(err, "Unable to write %v", file)
	}
	return errors.WithStack(f.Close())
}

// koMove is a move that leaves a ko behind.
type koMove struct {
	Move game.Move
	Ko   game.Coord
}

// koMoves finds every legal move by the player to move after which the opponent may not immediately recapture.
func koMoves(g *wq.Game) []koMove {
	b := g.Board()
	colour := g.ToMove()
	var retVal []koMove
	for x := 0; x < b.Size(); x++ {
		for y := 0; y < b.Size(); y++ {
			m := game.Move{Coord: game.Coord{X: x, Y: y}, Colour: colour}
			if !g.Check(m) {
				continue
			}
			if ko, ok := b.FollowupKo(m.Coord, colour); ok {
				retVal = append(retVal, koMove{Move: m, Ko: ko})
			}
		}
	}
	return retVal
}

func runKo(logger *zap.Logger, file string, stdout io.Writer) error {
	v, err := load(file)
	if err != nil {
		return err
	}
	g, err := sgf.ToGame(v, -1)
	if err != nil {
		return errors.WithMessagef(err, "Unable to replay %v", file)
	}
	kos := koMoves(g)
	logger.Debug("searched for kos", zap.String("file", file), zap.Int("found", len(kos)))
	if len(kos) == 0 {
		fmt.Fprintf(stdout, "%v has no move that takes a ko\n", g.ToMove())
		return nil
	}
	for _, k := range kos {
		fmt.Fprintf(stdout, "%v: takes at %v, ko at %v\n", k.Move.Colour, vertex(k.Move.Coord), vertex(k.Ko))
	}
	return nil
}

func vertex(c game.Coord) string {
	if s, err := sgf.CoordToChessLike(c); err == nil {
		return s
	}
	return c.String()
}
