// Package gif renders a sequence of board positions as an animated GIF.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	wq "github.com/gorgonia/godash/game/wq"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi        = 144.0
	fontsize   = 12.0
	lineheight = 1.2
	captionLen = `Move 999: White (19, 19)` // longest caption we expect
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Config is the configuration of an Encoder.
type Config struct {
	Width, Height int // maximum dimensions of a frame in pixels
	Delay         int // delay between frames in 100ths of a second
	FinalDelay    int // delay on the last frame
}

// DefaultConfig is a reasonable configuration for a 19x19 board.
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     1024,
		Delay:      50,
		FinalDelay: 300,
	}
}

// Encoder collects boards as frames. Call Flush to write the GIF.
type Encoder struct {
	H, W int
	font.Drawer

	out  *gif.GIF
	w    io.Writer
	face font.Face
	conf Config

	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewEncoder creates an Encoder that writes to w when flushed.
func NewEncoder(w io.Writer, conf Config) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		padH: 10,
		padW: 10,
		conf: conf,
		w:    w,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

func (enc *Encoder) lineHeight() int { return int(math.Ceil(fontsize * lineheight * dpi / 72)) }

// init sizes every frame after the first board.
func (enc *Encoder) init(lines []string) {
	enc.face = truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	enc.Drawer.Face = enc.face

	maxW := font.MeasureString(enc.Face, captionLen).Ceil()
	for _, l := range lines {
		maxW = maxInt(maxW, font.MeasureString(enc.Face, l).Ceil())
	}
	dy := enc.lineHeight()
	w := maxW + 2*enc.padW
	h := (len(lines)+2)*dy + 2*enc.padH // +2 for the caption

	if enc.conf.Width > 0 {
		w = minInt(w, enc.conf.Width)
		if w == enc.conf.Width {
			enc.padW = 0
		}
	}
	if enc.conf.Height > 0 {
		h = minInt(h, enc.conf.Height)
		if h == enc.conf.Height {
			enc.padH = 0
		}
	}

	enc.H = h
	enc.W = w
	enc.initialized = true
}

// Encode adds a frame showing the board, with the caption written underneath.
func (enc *Encoder) Encode(b *wq.Board, caption string) error {
	if b == nil {
		return errors.New("Cannot encode a nil board")
	}
	repr := strings.TrimRight(fmt.Sprintf("%s", b), "\n")
	lines := strings.Split(repr, "\n")
	if !enc.initialized {
		enc.init(lines)
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	dy := enc.lineHeight()
	y := dy
	enc.Dst = im
	for _, s := range lines {
		enc.Dot = fixed.P(enc.padW, y+enc.padH)
		enc.DrawString(s)
		y += dy
	}
	if caption != "" {
		enc.Dot = fixed.P(enc.padW, y+enc.padH)
		enc.DrawString(caption)
	}

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, enc.conf.Delay)
	return nil
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("No frames to write")
	}
	if enc.conf.FinalDelay > 0 {
		enc.out.Delay[len(enc.out.Delay)-1] = enc.conf.FinalDelay
	}
	return errors.WithStack(gif.EncodeAll(enc.w, enc.out))
}

// EncodeAll writes the boards as one GIF, each captioned by its index.
func EncodeAll(w io.Writer, boards []*wq.Board, conf Config) error {
	enc := NewEncoder(w, conf)
	for i, b := range boards {
		if err := enc.Encode(b, fmt.Sprintf("Move %d", i)); err != nil {
			return errors.WithMessagef(err, "frame %d", i)
		}
	}
	return enc.Flush()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
