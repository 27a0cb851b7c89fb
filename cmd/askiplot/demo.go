package main

import (
	"fmt"
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"github.com/askiplot/askiplot"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	var (
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "demo NAME",
		Short: "Show a built-in demonstration",
		Long: `demo renders one of the built-in demonstrations. fusion, textlines,
grid, groupedbars and gaussian print a single frame; lines and static
animate in the terminal until a key is pressed.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"fusion", "textlines", "grid", "groupedbars", "gaussian", "lines", "static"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "fusion":
				return demoFusion(cmd)
			case "textlines":
				return demoTextLines(cmd, width, height)
			case "grid":
				return demoGrid(cmd)
			case "groupedbars":
				return demoGroupedBars(cmd, width, height)
			case "gaussian":
				return demoGaussian(cmd, width, height)
			case "lines":
				return demoLines()
			case "static":
				return demoStatic()
			}
			return fmt.Errorf("unknown demo %q", args[0])
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 0, "Canvas width (0 = terminal width)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Canvas height (0 = terminal height)")

	return cmd
}

// demoFusion composes four filled boxes onto the corners of one canvas
// and crosses it with a pair of center lines.
func demoFusion(cmd *cobra.Command) error {
	box1, err := askiplot.New(10, 5)
	if err != nil {
		return err
	}
	box1.Fill(askiplot.MustGlyph(".")).DrawTextCentered("BOX1", askiplot.Center)
	box2 := box1.Clone().DrawTextCentered("BOX2", askiplot.Center)

	p, err := askiplot.New(60, 15)
	if err != nil {
		return err
	}
	p.Fusion().
		Add(box1, askiplot.NorthWest).
		Add(box1, askiplot.SouthEast).
		Add(box2, askiplot.NorthEast).
		Add(box2, askiplot.SouthWest).
		Fuse().
		DrawLineHorizontalAtRatio(0.5).
		DrawLineVerticalAtRatio(0.5)

	fmt.Fprint(cmd.OutOrStdout(), p.Serialize())
	return nil
}

// demoTextLines exercises the nine anchors, line brush switching and
// vertical text on one canvas.
func demoTextLines(cmd *cobra.Command, width, height int) error {
	p, err := askiplot.New(width, height)
	if err != nil {
		return err
	}
	p.DrawLineVerticalAtCol(13).
		DrawLineVerticalAtCol(15).
		SetBrush("LineVertical", "!").
		DrawLineVerticalAtRatio(0.5).
		SetBrush("LineHorizontal", ".").
		DrawLineHorizontalAtRow(p.Height() - 2).
		DrawLineHorizontalAtRow(1).
		DrawText("North", askiplot.North).
		DrawText("South", askiplot.South).
		DrawText("East", askiplot.East).
		DrawText("West", askiplot.West).
		DrawText("NorthEast", askiplot.NorthEast).
		DrawText("NorthWest", askiplot.NorthWest).
		DrawText("SouthEast", askiplot.SouthEast).
		DrawText("SouthWest", askiplot.SouthWest).
		DrawText("Center", askiplot.Center).
		DrawTextCentered("Centered text at South + Offset(0,2)", askiplot.South.Plus(askiplot.Offset{Row: 2})).
		DrawTextCentered("Centered text at South", askiplot.South).
		SetBrush("LineHorizontal", ">").
		DrawLineHorizontalAtRatio(0.66).
		SetBrush("LineHorizontal", "<").
		DrawLineHorizontalAtRatio(0.33).
		DrawTextVerticalCentered("Vertical text", askiplot.East.Minus(askiplot.Offset{Col: 10})).
		DrawText("{3,3}", askiplot.Abs(3, 3))

	fmt.Fprint(cmd.OutOrStdout(), p.Serialize())
	return nil
}

// demoGrid tiles six bordered panes in a 2x3 grid, then draws through a
// held reference to show that panes stay live after assignment.
func demoGrid(cmd *cobra.Command) error {
	const paneW, paneH = 10, 5
	g, err := askiplot.NewGrid(2, 3, 3*paneW, 2*paneH)
	if err != nil {
		return err
	}

	base, err := askiplot.New(paneW, paneH)
	if err != nil {
		return err
	}
	base.FillMain().DrawBorders(askiplot.BorderAll &^ askiplot.BorderBottom)

	sp1 := base.Clone().SetMainBrush("1").Redraw()
	sp2 := base.Clone().SetMainBrush("2").Redraw()
	sp3 := base.Clone().SetMainBrush("3").Redraw()

	g.SetInRowMajor(sp1, sp2, sp3, sp3, sp2, sp1)
	if pane, ok := g.PlotAt(1, 2).(*askiplot.Canvas); ok {
		pane.DrawTextCentered("--", askiplot.Center)
	}

	fmt.Fprint(cmd.OutOrStdout(), g.Serialize())
	return nil
}

func demoGroupedBars(cmd *cobra.Command, width, height int) error {
	bp, err := askiplot.NewBarChart(width, height)
	if err != nil {
		return err
	}
	askiplot.NewBarGroup(bp).
		Add([]float64{80, 40}, "Data Source 1", askiplot.MustGlyph("@")).
		Add([]float64{20, 50}, "Data Source 2", askiplot.MustGlyph("$")).
		Add([]float64{10, 20}, "Data Source 3", askiplot.MustGlyph(".")).
		Commit()
	bp.DrawBarLabels(askiplot.Offset{Row: 1})
	bp.DrawLegend()
	bp.SetBrush("BorderTop", "/").DrawBorders(askiplot.BorderTop | askiplot.BorderRight)

	fmt.Fprint(cmd.OutOrStdout(), bp.Serialize())
	return nil
}

func demoGaussian(cmd *cobra.Command, width, height int) error {
	const n = 10000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rand.NormFloat64()
	}

	hp, err := askiplot.NewHistogram(width, height)
	if err != nil {
		return err
	}
	hp.DrawBorders(askiplot.BorderAll)
	hp.SetTitle("Gaussian distribution").DrawTitle()
	hp.SetBrush("Area", "@").SetBrush("BorderTop", " ")
	hp.PlotHistogram(samples, "Normal (0,1)")
	hp.DrawText(fmt.Sprintf("Number of samples: %d", n), askiplot.NorthWest.Plus(askiplot.Offset{Col: 2, Row: -2}))
	hp.DrawLegend()

	fmt.Fprint(cmd.OutOrStdout(), hp.Serialize())
	return nil
}

// demoLines accumulates random grid lines under a floating title box.
func demoLines() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	p, err := askiplot.New(w, h)
	if err != nil {
		return err
	}

	box, err := askiplot.New(16, 5)
	if err != nil {
		return err
	}
	box.DrawTextCentered("AskiPlot", askiplot.Center)
	boxPos := askiplot.Center.Minus(askiplot.Offset{Col: box.Width() / 2, Row: box.Height() / 2})

	events := make(chan tcell.Event, 16)
	go pumpEvents(screen, events)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				screen.Sync()
				w, h = screen.Size()
				if fresh, err := askiplot.New(w, h); err == nil {
					p = fresh
				}
			}
		case <-ticker.C:
			if rand.IntN(2) == 1 {
				p.DrawLineVerticalAtRatio(rand.Float64())
			} else {
				p.DrawLineHorizontalAtRatio(rand.Float64())
			}
			p.Fuse(box, boxPos)
			blit(screen, p)
		}
	}
}

// demoStatic renders white noise through a RandomGamma whose zero
// threshold sweeps between fully dense and fully dark.
func demoStatic() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	gamma := askiplot.NewRandomGamma("01")
	zt, step := 0, 5

	events := make(chan tcell.Event, 16)
	go pumpEvents(screen, events)

	ticker := time.NewTicker(125 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			w, h := screen.Size()
			p, err := askiplot.New(w, h)
			if err != nil {
				return err
			}
			img := askiplot.NewImage(w, h)
			for x := 0; x < w; x++ {
				for y := 0; y < h; y++ {
					img.Set(x, y, uint8(rand.IntN(256)))
				}
			}

			gamma.SetZeroThreshold(uint8(zt))
			p.DrawImage(img, gamma, askiplot.SouthWest)
			blit(screen, p)

			zt += step
			if zt <= 0 || zt >= 255 {
				zt = min(max(zt, 0), 255)
				step = -step
			}
		}
	}
}

// pumpEvents forwards screen events to ch until the screen is finalized
// and PollEvent starts yielding nil, then closes ch.
func pumpEvents(screen tcell.Screen, ch chan<- tcell.Event) {
	defer close(ch)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		ch <- ev
	}
}

// blit copies a plot onto the screen, canvas row 0 at the bottom.
func blit(s tcell.Screen, p askiplot.Plot) {
	w, h := p.Width(), p.Height()
	for col := 0; col < w; col++ {
		for row := 0; row < h; row++ {
			r, _ := utf8.DecodeRuneInString(p.At(col, row).Glyph)
			if r == utf8.RuneError {
				r = ' '
			}
			s.SetContent(col, h-1-row, r, nil, tcell.StyleDefault)
		}
	}
	s.Show()
}
