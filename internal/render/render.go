// Package render paints rolls of the dice into PNG frames.
package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/KirkDiggler/thousand/internal/assets"
	"github.com/KirkDiggler/thousand/internal/models"
)

// Frame layout, in pixels
const (
	DieSize = 100
	dieGap  = 10
	marginX = 40
	marginY = 50

	FrameWidth  = 2*marginX + models.DiceCount*(DieSize+dieGap) - dieGap
	FrameHeight = 2*marginY + DieSize

	fontPoints = 14
)

// pip positions on a 3x3 grid, as fractions of the die size
var pips = map[int][][2]float64{
	1: {{0.5, 0.5}},
	2: {{0.25, 0.25}, {0.75, 0.75}},
	3: {{0.25, 0.25}, {0.5, 0.5}, {0.75, 0.75}},
	4: {{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}},
	5: {{0.25, 0.25}, {0.75, 0.25}, {0.5, 0.5}, {0.25, 0.75}, {0.75, 0.75}},
	6: {{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.5}, {0.75, 0.5}, {0.25, 0.75}, {0.75, 0.75}},
}

// DrawDie paints a die face with pips at (x, y)
func DrawDie(dc *gg.Context, x, y, size float64, face int) error {
	positions, ok := pips[face]
	if !ok {
		return fmt.Errorf("no pips for face %d", face)
	}

	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(x, y, size, size, size*0.12)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill die: %w", err)
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(size * 0.03)
	dc.DrawRoundedRectangle(x, y, size, size, size*0.12)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke die: %w", err)
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	for _, p := range positions {
		dc.DrawCircle(x+p[0]*size, y+p[1]*size, size*0.09)
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill pips: %w", err)
	}

	return nil
}

// Config for a frame renderer
type Config struct {
	// Faces are the loaded face images; missing ones are drawn procedurally
	Faces *assets.Faces

	// Path is where each frame is written
	Path string

	// FontPath is an optional font for the missing-image placeholder text
	FontPath string

	// Placeholder is the text written over a die whose image is missing
	Placeholder string

	Logger *slog.Logger
}

// Renderer writes the current dice to a PNG file
type Renderer struct {
	faces       *assets.Faces
	path        string
	fontPath    string
	placeholder string
	logger      *slog.Logger
}

// New creates a frame renderer
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("frame path cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Renderer{
		faces:       cfg.Faces,
		path:        cfg.Path,
		fontPath:    cfg.FontPath,
		placeholder: cfg.Placeholder,
		logger:      logger,
	}, nil
}

// Paint draws the dice onto a new context. The caller must Close it.
func (r *Renderer) Paint(faces []int) (*gg.Context, error) {
	dc := gg.NewContext(FrameWidth, FrameHeight)
	dc.ClearWithColor(gg.RGB(0.93, 0.93, 0.93))

	hasFont := false
	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, fontPoints); err != nil {
			r.logger.Warn("font not loaded", "path", r.fontPath, "error", err)
		} else {
			hasFont = true
		}
	}

	for i, face := range faces {
		x := float64(marginX + i*(DieSize+dieGap))
		y := float64(marginY)

		if img, ok := r.faces.Image(face); ok {
			dc.DrawImageEx(img, gg.DrawImageOptions{
				X:         x,
				Y:         y,
				DstWidth:  DieSize,
				DstHeight: DieSize,
			})
			continue
		}

		if err := DrawDie(dc, x, y, DieSize, face); err != nil {
			dc.Close()
			return nil, err
		}

		if hasFont && r.placeholder != "" {
			dc.SetRGB(0.7, 0.1, 0.1)
			dc.DrawStringAnchored(r.placeholder, x+DieSize/2, y+DieSize+dieGap, 0.5, 1)
		}
	}

	return dc, nil
}

// Render paints the dice and saves them to the configured path
func (r *Renderer) Render(faces []int) error {
	dc, err := r.Paint(faces)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(r.path); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}

	return nil
}

// SaveFace writes a single die face as a size x size PNG
func SaveFace(path string, face, size int) error {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	inset := float64(size) * 0.04
	if err := DrawDie(dc, inset, inset, float64(size)-2*inset, face); err != nil {
		return err
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save face %d: %w", face, err)
	}

	return nil
}
