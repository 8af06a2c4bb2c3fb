// Package ui implements the hexagonal chess GUI using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/hexplay/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

type spriteKey struct {
	Type  board.PieceType
	Color board.Color
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// GetPiece returns the sprite for a piece type and color.
func (sm *SpriteManager) GetPiece(pt board.PieceType, c board.Color) *ebiten.Image {
	return sm.pieces[spriteKey{pt, c}]
}

var pieceFiles = map[spriteKey]string{
	{board.Pawn, board.White}:   "assets/pieces/wP.svg",
	{board.Knight, board.White}: "assets/pieces/wN.svg",
	{board.Bishop, board.White}: "assets/pieces/wB.svg",
	{board.Rook, board.White}:   "assets/pieces/wR.svg",
	{board.Queen, board.White}:  "assets/pieces/wQ.svg",
	{board.King, board.White}:   "assets/pieces/wK.svg",
	{board.Pawn, board.Black}:   "assets/pieces/bP.svg",
	{board.Knight, board.Black}: "assets/pieces/bN.svg",
	{board.Bishop, board.Black}: "assets/pieces/bB.svg",
	{board.Rook, board.Black}:   "assets/pieces/bR.svg",
	{board.Queen, board.Black}:  "assets/pieces/bQ.svg",
	{board.King, board.Black}:   "assets/pieces/bK.svg",
}

// loadPieces loads all piece sprites from embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for key, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[key] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.GetPiece(p.Type, p.Color)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
