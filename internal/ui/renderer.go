package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
)

// Theme defines the color scheme for the board.
type Theme struct {
	CellShades   [3]color.RGBA // indexed by hex.CellColor
	SelectedCell color.RGBA
	LegalMove    color.RGBA
	LastMove     color.RGBA
	CheckCell    color.RGBA
	Background   color.RGBA
	CellBorder   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		CellShades: [3]color.RGBA{
			{209, 184, 151, 255}, // Mid tan
			{240, 217, 181, 255}, // Light tan
			{181, 136, 99, 255},  // Brown
		},
		SelectedCell: color.RGBA{247, 247, 105, 150},
		LegalMove:    color.RGBA{130, 151, 105, 200},
		LastMove:     color.RGBA{180, 190, 100, 90},
		CheckCell:    color.RGBA{255, 100, 100, 150},
		Background:   color.RGBA{40, 44, 52, 255},
		CellBorder:   color.RGBA{90, 70, 50, 255},
	}
}

// whiteSubImage is the texture for DrawTriangles fills.
var whiteSubImage *ebiten.Image

func init() {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Renderer draws the hexagonal board. Cells are flat-top hexagons laid
// out so white's back rank is at the bottom of the screen.
type Renderer struct {
	sprites   *SpriteManager
	theme     *Theme
	hexSide   float64
	hexHeight float64
	offsetX   float64
	offsetY   float64
}

// NewRenderer creates a renderer centered on (offsetX, offsetY).
func NewRenderer(hexSide, offsetX, offsetY float64) *Renderer {
	return &Renderer{
		sprites:   NewSpriteManager(int(hexSide * 1.35)),
		theme:     DefaultTheme(),
		hexSide:   hexSide,
		hexHeight: math.Sqrt(3) * hexSide,
		offsetX:   offsetX,
		offsetY:   offsetY,
	}
}

// HexToPixel returns the screen center of a cell.
func (r *Renderer) HexToPixel(h hex.Hex) (float64, float64) {
	x := r.offsetX + r.hexSide*1.5*float64(h.Q)
	y := r.offsetY + r.hexHeight*float64(h.S-h.R)/2
	return x, y
}

// PixelToHex maps a screen position to a board cell using cube
// rounding. The second return is false off the board.
func (r *Renderer) PixelToHex(x, y int) (hex.Hex, bool) {
	fx := float64(x) - r.offsetX
	fy := float64(y) - r.offsetY

	q := (2.0 / 3.0) * fx / r.hexSide
	rr := (-fx/3 - math.Sqrt(3)/3*fy) / r.hexSide
	s := -q - rr

	rq := math.Round(q)
	rRow := math.Round(rr)
	rs := math.Round(s)

	qDiff := math.Abs(rq - q)
	rDiff := math.Abs(rRow - rr)
	sDiff := math.Abs(rs - s)

	// Fix the component that rounded worst so the sum stays zero.
	switch {
	case qDiff > rDiff && qDiff > sDiff:
		rq = -rRow - rs
	case rDiff > sDiff:
		rRow = -rq - rs
	default:
		rs = -rq - rRow
	}

	h := hex.Hex{Q: int(rq), R: int(rRow), S: int(rs)}
	if h.Abs() > board.Radius {
		return hex.Hex{}, false
	}
	return h, true
}

// DrawBoard fills every cell with its three-coloring shade.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *board.Board) {
	for q := -board.Radius; q <= board.Radius; q++ {
		for row := -board.Radius; row <= board.Radius; row++ {
			h := hex.Hex{Q: q, R: row, S: -q - row}
			if !b.IsValidHex(h) {
				continue
			}
			cx, cy := r.HexToPixel(h)
			shade := r.theme.CellShades[h.Color()]
			r.fillHexagon(screen, cx, cy, r.hexSide, shade)
			r.strokeHexagon(screen, cx, cy, r.hexSide, r.theme.CellBorder)
		}
	}
}

// DrawHighlights marks the selection, its legal moves and the last move.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected *hex.Hex, legal hex.Set, last *board.MoveRecord) {
	if last != nil {
		r.highlightCell(screen, last.From, r.theme.LastMove)
		r.highlightCell(screen, last.To, r.theme.LastMove)
	}
	if selected != nil {
		r.highlightCell(screen, *selected, r.theme.SelectedCell)
	}
	for _, m := range legal.Slice() {
		cx, cy := r.HexToPixel(m)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.hexSide)*0.22, r.theme.LegalMove, true)
	}
}

// DrawCheck marks the checked king's cell.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingCell hex.Hex) {
	r.highlightCell(screen, kingCell, r.theme.CheckCell)
}

func (r *Renderer) highlightCell(screen *ebiten.Image, h hex.Hex, c color.RGBA) {
	cx, cy := r.HexToPixel(h)
	r.fillHexagon(screen, cx, cy, r.hexSide*0.96, c)
}

// DrawPieces draws every piece centered on its cell.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	size := float64(r.sprites.Size())
	b.Pieces(func(p board.Piece) bool {
		cx, cy := r.HexToPixel(p.Pos)
		r.sprites.DrawPieceAt(screen, p, int(cx-size/2), int(cy-size/2))
		return true
	})
}

func (r *Renderer) fillHexagon(screen *ebiten.Image, cx, cy, side float64, c color.RGBA) {
	path := hexagonPath(cx, cy, side)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) strokeHexagon(screen *ebiten.Image, cx, cy, side float64, c color.RGBA) {
	path := hexagonPath(cx, cy, side)
	op := &vector.StrokeOptions{Width: 1}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func hexagonPath(cx, cy, side float64) *vector.Path {
	var path vector.Path
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		x := float32(cx + side*math.Cos(angle))
		y := float32(cy + side*math.Sin(angle))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
