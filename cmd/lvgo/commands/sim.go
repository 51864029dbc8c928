package commands

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"iter"
	"os"

	"github.com/agiangrant/lvgo"
)

// framebuffer is an in-memory DrawTarget.
type framebuffer struct {
	img *image.RGBA
}

func (f *framebuffer) Bounds() image.Rectangle { return f.img.Bounds() }

func (f *framebuffer) FillContiguous(area image.Rectangle, colors iter.Seq[lvgo.Color]) error {
	x, y := area.Min.X, area.Min.Y
	for c := range colors {
		f.img.Set(x, y, c)
		if x++; x == area.Max.X {
			x, y = area.Min.X, y+1
		}
	}
	return nil
}

type demo struct {
	clicks int
	label  *lvgo.Label[demo]
}

// Sim implements the 'lvgo sim' command: it builds a one-button screen on the
// simulated engine and taps the button.
func Sim(args []string) error {
	flags := flag.NewFlagSet("sim", flag.ExitOnError)
	file := flags.String("file", defaultConfigFile, "Path to the configuration file")
	clicks := flags.Int("clicks", 1, "Number of taps on the button")
	width := flags.Int("width", 320, "Display width")
	height := flags.Int("height", 240, "Display height")
	out := flags.String("png", "", "Write the final frame to this PNG file")
	flags.Parse(args)

	cfg, err := loadConfig(*file)
	if err != nil {
		return err
	}
	cfg.Backend = lvgo.BackendSim

	e, err := lvgo.Open(cfg)
	if err != nil {
		return err
	}

	target := &framebuffer{img: image.NewRGBA(image.Rect(0, 0, *width, *height))}
	d := lvgo.NewDisplay(e, e.NewDrawBufferFor(target), target)

	scr := lvgo.ActiveScreen(d, func(s *lvgo.Screen[demo]) demo {
		btn := lvgo.NewBtn(s.Obj)
		btn.SetSize(120, 50).Align(lvgo.AlignCenter, 0, 0)
		label := lvgo.NewLabel(btn.Obj).SetText("Clicks: 0")
		btn.OnEvent(lvgo.EventClicked, func(ctx *demo, _ *lvgo.Obj[demo]) {
			ctx.clicks++
			ctx.label.SetText(fmt.Sprintf("Clicks: %d", ctx.clicks))
		})
		return demo{label: label}
	})

	touch := lvgo.NewInputDevice(d, lvgo.Untouched)
	cx, cy := lvgo.Coord(*width/2), lvgo.Coord(*height/2)
	for range *clicks {
		*touch.State() = lvgo.Touch(cx, cy)
		e.Tick(10)
		e.RunOnce(nil)
		*touch.State() = lvgo.Untouched
		e.Tick(10)
		e.RunOnce(nil)
	}
	fmt.Printf("clicks: %d\n", scr.Context().clicks)

	if *out == "" {
		return nil
	}
	fh, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	defer fh.Close()
	if err := png.Encode(fh, target.img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	fmt.Printf("✓ Wrote %s\n", *out)
	return nil
}
