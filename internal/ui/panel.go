package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelPadding = 20
	ButtonHeight = 40
	moveRowH     = 22
)

// Panel colors
var (
	panelBg       = color.RGBA{38, 40, 45, 255}
	buttonHoverBg = color.RGBA{65, 70, 78, 255}
	accentColor   = color.RGBA{76, 175, 120, 255}
	accentHover   = color.RGBA{96, 195, 140, 255}
	textPrimary   = color.RGBA{240, 240, 245, 255}
	textSecondary = color.RGBA{160, 165, 175, 255}
	textMuted     = color.RGBA{120, 125, 135, 255}
	dividerColor  = color.RGBA{60, 65, 72, 255}
	moveRowAlt    = color.RGBA{44, 48, 54, 255}
	statusGameEnd = color.RGBA{255, 200, 80, 255}
	statusCheck   = color.RGBA{255, 120, 120, 255}
)

// Button is a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
}

// Panel is the side panel with the move history and game controls.
type Panel struct {
	game       *Game
	newGameBtn *Button
	scrollY    int
	maxScrollY int
}

// NewPanel creates the side panel.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.newGameBtn = &Button{
		X: BoardWidth + PanelPadding,
		Y: PanelPadding,
		W: PanelWidth - PanelPadding*2,
		H: ButtonHeight,
		Label:   "New Game",
		OnClick: g.NewGameAction,
	}
	return p
}

// Update handles panel input.
func (p *Panel) Update(input *InputHandler) {
	btn := p.newGameBtn
	btn.hovered = input.IsInBounds(btn.X, btn.Y, btn.W, btn.H)
	if btn.hovered && input.IsLeftJustPressed() && btn.OnClick != nil {
		btn.OnClick()
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && input.IsInBounds(BoardWidth, 0, PanelWidth, ScreenHeight) {
		p.scrollY -= int(wheelY * float64(moveRowH))
		if p.scrollY < 0 {
			p.scrollY = 0
		}
		if p.scrollY > p.maxScrollY {
			p.scrollY = p.maxScrollY
		}
	}
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(BoardWidth), 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)

	p.drawButton(screen, p.newGameBtn)

	x := BoardWidth + PanelPadding
	y := PanelPadding + ButtonHeight + 24

	p.drawText(screen, p.game.Board().TurnInfo(), x, y, textSecondary, GetBoldFace())
	y += 30

	p.drawMoveHistory(screen, y)
	p.drawStatusBar(screen)
}

func (p *Panel) drawButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.hovered {
		bgColor = accentHover
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)

	face := GetBoldFace()
	w, h := MeasureText(btn.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(btn.X)+(float64(btn.W)-w)/2, float64(btn.Y)+(float64(btn.H)-h)/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, btn.Label, face, op)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	moves := p.game.Board().History()
	x := BoardWidth + PanelPadding
	maxY := ScreenHeight - 70
	visibleHeight := maxY - startY

	totalRows := (len(moves) + 1) / 2
	p.maxScrollY = totalRows*moveRowH - visibleHeight
	if p.maxScrollY < 0 {
		p.maxScrollY = 0
	}
	if p.scrollY > p.maxScrollY {
		p.scrollY = p.maxScrollY
	}

	y := startY - p.scrollY
	for i := 0; i < len(moves); i += 2 {
		if y > maxY {
			break
		}
		if y >= startY {
			if (i/2)%2 == 1 {
				vector.DrawFilledRect(screen, float32(x-4), float32(y-2),
					float32(PanelWidth-PanelPadding*2+8), float32(moveRowH), moveRowAlt, false)
			}
			p.drawText(screen, fmt.Sprintf("%d.", i/2+1), x, y, textMuted, GetRegularFace())
			p.drawText(screen, moves[i].Notation, x+34, y, textPrimary, GetRegularFace())
			if i+1 < len(moves) {
				p.drawText(screen, moves[i+1].Notation, x+110, y, textPrimary, GetRegularFace())
			}
		}
		y += moveRowH
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - 60
	x := BoardWidth + PanelPadding

	vector.DrawFilledRect(screen, float32(x), float32(statusY-10),
		float32(PanelWidth-PanelPadding*2), 1, dividerColor, false)

	msg, c := p.game.StatusMessage()
	p.drawText(screen, msg, x, statusY, c, GetRegularFace())
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.RGBA, face *text.GoTextFace) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
