package gtp

import (
	"context"
	"io"
	"io/ioutil"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorgonia/godash/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func Test_General(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)

	ch <- "7 protocol_version"
	x = <-ret
	assert.Equal("= 7 2\n\n", x)

	ch <- "8 name # with a comment"
	x = <-ret
	assert.Equal("= 8 xx\n\n", x)

	ch <- "quit"
	x = <-ret
	assert.Equal("= \n\n", x)
	_, ok := <-ret
	assert.False(ok, "output should be closed after quit")
}

// session sends each command and collects the responses.
func session(t *testing.T, e *Engine, cmds ...string) []string {
	t.Helper()
	ch, ret := e.Start()
	defer close(ch)
	var retVal []string
	for _, c := range cmds {
		ch <- c
		retVal = append(retVal, <-ret)
	}
	return retVal
}

func TestPlayAndKo(t *testing.T) {
	e := New(nil, "godash", "test", nil)
	resps := session(t, e,
		"boardsize 4",
		"play b B1", "play w B2",
		"play b A2", "play w C1",
		"play b B3", "play w C3",
		"play b A4", "play w D2",
		"play b C2", // takes B2
		"play w B2", // ko
		"play w D4",
		"play w A1", // suicide
	)
	for i, r := range resps[:10] {
		assert.Equal(t, "= \n\n", r, "response %d", i)
	}
	assert.True(t, strings.HasPrefix(resps[10], "? illegal move"), "retaking the ko: %q", resps[10])
	assert.Equal(t, "= \n\n", resps[11])
	assert.True(t, strings.HasPrefix(resps[12], "? illegal move"), "suicide: %q", resps[12])

	g := e.State()
	assert.Equal(t, 1, g.Captures(game.Black))
	assert.Equal(t, game.None, g.Board().At(game.Coord{X: 1, Y: 1}))
	assert.Equal(t, game.Black, g.ToMove())
}

func TestSetup(t *testing.T) {
	e := New(nil, "godash", "test", nil, WithKomi(0.5))
	resps := session(t, e,
		"boardsize 9",
		"fixed_handicap 4",
		"fixed_handicap 2",
		"boardsize 99",
		"boardsize nine",
		"komi 7.5",
		"clear_board",
		"fixed_handicap 10",
		"play x A1",
		"play b Z9",
		"play b",
		"undo",
		"play b pass",
		"undo",
	)
	want := []string{
		"= \n\n",
		"= C3 G7 C7 G3\n\n",
		"? board not empty\n\n",
		"? unacceptable size\n\n",
	}
	assert.Equal(t, want, resps[:4])
	assert.True(t, strings.HasPrefix(resps[4], "? syntax error"), resps[4])
	assert.Equal(t, "= \n\n", resps[5])
	assert.Equal(t, "= \n\n", resps[6])
	assert.Equal(t, "? invalid number of stones\n\n", resps[7])
	assert.True(t, strings.HasPrefix(resps[8], "? syntax error"), resps[8])
	assert.True(t, strings.HasPrefix(resps[9], "? invalid vertex"), resps[9])
	assert.True(t, strings.HasPrefix(resps[10], "? Not enough arguments"), resps[10])
	assert.Equal(t, "? cannot undo\n\n", resps[11])
	assert.Equal(t, "= \n\n", resps[12])
	assert.Equal(t, "= \n\n", resps[13])

	g := e.State()
	assert.Equal(t, 9, g.BoardSize())
	assert.Equal(t, float32(7.5), g.Komi())
	assert.Equal(t, 0, g.Board().Len(), "clear_board removes the handicap")
}

func TestShowboard(t *testing.T) {
	e := New(nil, "godash", "test", nil)
	resps := session(t, e, "boardsize 3", "play b A1", "showboard")
	want := "= \n⎢ X · · ⎥\n⎢ · · · ⎥\n⎢ · · · ⎥\nTo move: White. Captures: Black 0, White 0\n\n"
	assert.Equal(t, want, resps[2])
}

func TestListCommands(t *testing.T) {
	e := New(nil, "godash", "test", nil)
	resps := session(t, e, "list_commands")
	cmds := strings.Split(strings.TrimSuffix(strings.TrimPrefix(resps[0], "= "), "\n\n"), "\n")
	assert.Len(t, cmds, len(StandardLib()))
	assert.Contains(t, cmds, "loadsgf")
	assert.Equal(t, "boardsize", cmds[0], "commands are sorted")
}

func TestLoadSGF(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "game.sgf")
	require.NoError(t, ioutil.WriteFile(file, []byte("(;GM[1]SZ[5]KM[0.5];B[aa];W[bb];B[cc])"), 0644))

	e := New(nil, "godash", "test", nil)
	resps := session(t, e, "loadsgf "+file)
	assert.Equal(t, "= White\n\n", resps[0])
	assert.Equal(t, 3, e.State().MoveNumber())
	assert.Equal(t, float32(0.5), e.State().Komi())

	resps = session(t, e, "loadsgf "+file+" 3")
	assert.Equal(t, "= Black\n\n", resps[0])
	assert.Equal(t, 2, e.State().MoveNumber())

	resps = session(t, e, "loadsgf "+filepath.Join(dir, "missing.sgf"))
	assert.True(t, strings.HasPrefix(resps[0], "? cannot load file"), resps[0])
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := New(nil, "godash", "test", nil, WithLogger(zap.New(core)))

	in := strings.NewReader("1 boardsize 5\n\n# comment only\n2 play b C3\nbogus\n3 quit\n4 name\n")
	var out strings.Builder
	require.NoError(t, e.Run(context.Background(), in, &out))

	want := "= 1 \n\n= 2 \n\n? Unknown command \"bogus\"\n\n= 3 \n\n"
	assert.Equal(t, want, out.String(), "nothing is read after quit")
	assert.Equal(t, game.Black, e.State().Board().At(game.Coord{X: 2, Y: 2}))

	assert.Equal(t, 1, logs.FilterMessage("bad command").Len())
	assert.Equal(t, 3, logs.FilterMessage("command").Len())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := New(nil, "godash", "test", nil)
	r, w := io.Pipe()
	defer w.Close()
	err := e.Run(ctx, r, ioutil.Discard)
	assert.Equal(t, context.Canceled, err)
}

// endless yields "quit" and then keeps a client talking forever.
type endless struct{ started bool }

func (r *endless) Read(p []byte) (int, error) {
	if !r.started {
		r.started = true
		return copy(p, "quit\n"), nil
	}
	return copy(p, "name\n"), nil
}

func TestRunStopsReading(t *testing.T) {
	before := runtime.NumGoroutine()
	e := New(nil, "godash", "test", nil)
	var out strings.Builder
	require.NoError(t, e.Run(context.Background(), &endless{}, &out))
	assert.Equal(t, "= \n\n", out.String())

	assert.Eventually(t, func() bool { return runtime.NumGoroutine() <= before },
		time.Second, 10*time.Millisecond, "the reader goroutine outlived Run")
}
