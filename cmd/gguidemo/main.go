// Command gguidemo runs a scripted ggui session on a headless host and
// saves the last frame: a plot whose data is computed in the background
// next to a generated image with an overlay.
package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/frame"
	"github.com/gogpu/ggui/headless"
	"github.com/gogpu/ggui/imageview"
	"github.com/gogpu/ggui/panzoom"
	"github.com/gogpu/ggui/shape"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 400, "window height")
		frames  = flag.Uint64("frames", 60, "number of frames to run")
		output  = flag.String("output", "gguidemo.png", "output file")
		backend = flag.String("backend", "", "rendering backend (default: best available)")
		verbose = flag.Bool("v", false, "log frame lifecycle")
	)
	flag.Parse()

	if *verbose {
		ggui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	w, h := float64(*width), float64(*height)
	opts := []headless.Option{
		headless.WithMaxFrames(*frames),
		headless.WithScript(script(w, h)),
	}
	if *backend != "" {
		opts = append(opts, headless.WithBackend(*backend))
	}
	host, err := headless.New(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create host: %v", err)
	}
	defer host.Close()

	img, err := imageview.New(host.Textures(), gradient(256, 192))
	if err != nil {
		log.Fatalf("Failed to upload image: %v", err)
	}
	defer img.Close()

	ctx := context.Background()
	sine := ggui.Remote[[]ggui.Point](ggui.Go(ctx, sampleSine))

	iw, ih := img.Size()
	d := demo{
		plot: frame.New(ggui.Pt(0, 1.2), ggui.Pt(4*math.Pi, -1.2), panzoom.WithKeepAspect(0)),
		img:  img,
		mark: panzoom.HandleState{Pos: ggui.Pt(float64(iw)/2, float64(ih)/2)},
	}
	left := ggui.R(0, 0, w/2, h)
	right := ggui.R(w/2, 0, w, h)

	root := ggui.Orr(
		ggui.Stateful(func(d demo) ggui.Widget[demo] {
			return d.widget(sine, left, right)
		}, d),
		ggui.Map(sine.Action(), func([]ggui.Point) demo { return demo{} }),
	)

	if _, err := ggui.Run(ctx, host, root); err != nil && !errors.Is(err, ggui.ErrHostClosed) {
		log.Fatalf("Run failed: %v", err)
	}

	if err := host.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d frames)\n", *output, *width, *height, host.Frame())
}

// demo is the application state threaded through Stateful.
type demo struct {
	plot panzoom.State
	img  *imageview.State
	mark panzoom.HandleState
	sine []ggui.Point
}

// widget returns the widget for one state: it terminates with the next
// state as soon as either view changed or the data arrived.
func (d demo) widget(sine *ggui.RemoteAction[[]ggui.Point], left, right ggui.Rect) ggui.Widget[demo] {
	plot := frame.View("plot", &d.plot, func(tf ggui.TF) ggui.Widget[struct{}] {
		if d.sine == nil {
			return ggui.Show[struct{}](shape.Text(tf.ToScreen(ggui.Pt(0.5, 0)), ggui.Black, "computing..."))
		}
		return ggui.Show[struct{}](shape.Polyline(d.sine, ggui.MustColor("blue"), shape.Thickness(2), shape.Transform(tf)))
	})
	view := imageview.View("image", d.img, func(tf ggui.TF) ggui.Widget[struct{}] {
		return ggui.Orr(
			ggui.Show[struct{}](shape.Text(ggui.Pt(4, 4), ggui.White, "gradient", shape.Transform(tf))),
			ggui.Map(panzoom.Handle(&d.mark, tf, 12, ggui.MustColor("red")), func(ggui.Point) struct{} { return struct{}{} }),
		)
	})

	ws := []ggui.Widget[demo]{
		ggui.Child("left", left, ggui.Map(plot, func(panzoom.Event[struct{}]) demo { return d })),
		ggui.Child("right", right, ggui.Map(view, func(panzoom.Event[struct{}]) demo { return d })),
	}
	if d.sine == nil {
		ws = append(ws, ggui.Map(sine.Value(), func(pts []ggui.Point) demo {
			d.sine = pts
			return d
		}))
	}
	return ggui.Orr(ws...)
}

// script zooms into the plot, drags the image and then the marker at its
// centre.
func script(w, h float64) headless.Script {
	// The right-button drag moves the image, and its centre with it, by
	// the total pointer motion.
	markX, markY := 3*w/4+8*5, h/2+8*3
	return func(frame uint64, host *headless.Host) {
		switch {
		case frame == 2:
			host.SetMousePos(w/4, h/2)
		case frame >= 3 && frame < 6:
			host.Scroll(1)
		case frame == 10:
			host.SetMousePos(3*w/4, h/2)
		case frame == 11:
			host.MouseDown(ggui.MouseRight)
		case frame > 11 && frame < 20:
			host.SetMousePos(3*w/4+float64(frame-11)*5, h/2+float64(frame-11)*3)
		case frame == 20:
			host.MouseUp(ggui.MouseRight)
		case frame == 22:
			host.SetMousePos(markX, markY)
		case frame == 23:
			host.MouseDown(ggui.MouseLeft)
		case frame > 23 && frame < 30:
			host.SetMousePos(markX-float64(frame-23)*4, markY+float64(frame-23)*2)
		case frame == 30:
			host.MouseUp(ggui.MouseLeft)
		}
	}
}

func sampleSine(ctx context.Context) ([]ggui.Point, error) {
	const n = 512
	pts := make([]ggui.Point, 0, n)
	for i := range n {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			time.Sleep(time.Millisecond)
		}
		x := 4 * math.Pi * float64(i) / (n - 1)
		pts = append(pts, ggui.Pt(x, math.Sin(x)))
	}
	return pts, nil
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: 255,
			})
		}
	}
	return img
}
