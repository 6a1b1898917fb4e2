package game

import (
	"strings"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorBlue   = "\033[34m"
	ColorYellow = "\033[33m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue}

const playerSymbols = "AB"

// RenderASCII returns one character per tile: '.' for neutral, 'A' or 'B'
// by owner, lower-cased on the objective. Rows are separated by '\n' with
// no trailing newline.
func (e *Engine) RenderASCII() string {
	b := e.board

	var sb strings.Builder
	sb.Grow((b.W + 1) * b.H)

	for y := 0; y < b.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.W; x++ {
			sb.WriteByte(asciiSymbol(b.GetTile(x, y)))
		}
	}
	return sb.String()
}

func asciiSymbol(t *core.Tile) byte {
	if t.IsNeutral() {
		return '.'
	}
	symbol := byte('?')
	if t.Owner >= 0 && t.Owner < len(playerSymbols) {
		symbol = playerSymbols[t.Owner]
	}
	if t.IsObjective {
		symbol += 'a' - 'A'
	}
	return symbol
}

// RenderColored returns an ANSI colored view of the board with coordinates,
// base/objective/boost markers and contested tiles highlighted.
func (e *Engine) RenderColored() string {
	const (
		EmptySymbol     = "·"
		BaseSymbol      = "♔"
		ObjectiveSymbol = "◎"
		ContestedSymbol = "~"
	)

	b := e.board
	estimatedSize := (b.W*14+10)*(b.H+3) + 160

	var sb strings.Builder
	sb.Grow(estimatedSize)

	// Header row
	sb.WriteString("   ")
	for x := 0; x < b.W; x++ {
		sb.WriteString(core.IntToStringFixedWidth(x, 2))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	for y := 0; y < b.H; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < b.W; x++ {
			t := b.GetTile(x, y)

			switch {
			case t.IsContested():
				sb.WriteString(ColorYellow)
			case t.IsNeutral():
				sb.WriteString(ColorGray)
			default:
				sb.WriteString(getPlayerColor(t.Owner))
			}

			if t.IsNeutral() {
				sb.WriteString(" ")
			} else {
				sb.WriteByte(asciiSymbol(t))
			}

			switch {
			case t.IsContested():
				sb.WriteString(ContestedSymbol)
			case t.IsBase:
				sb.WriteString(BaseSymbol)
			case t.IsObjective:
				sb.WriteString(ObjectiveSymbol)
			case t.Boost != core.BoostNone:
				sb.WriteString(boostSymbol(t.Boost))
			case t.IsNeutral():
				sb.WriteString(EmptySymbol)
			default:
				sb.WriteString(" ")
			}

			sb.WriteString(ColorReset)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString(BaseSymbol + "=base " + ObjectiveSymbol + "=objective " + ContestedSymbol + "=contested ")
	sb.WriteString("c=capacity i=income f=faster a=AP s=shield j=jammer\n")

	return sb.String()
}

func boostSymbol(boost core.BoostType) string {
	switch boost {
	case core.BoostExtraCapacity:
		return "c"
	case core.BoostExtraIncome:
		return "i"
	case core.BoostFasterCapture:
		return "f"
	case core.BoostExtraAP:
		return "a"
	case core.BoostShieldUp:
		return "s"
	case core.BoostAreaJammer:
		return "j"
	default:
		return "?"
	}
}

// getPlayerColor returns the color for the given player ID
func getPlayerColor(playerID int) string {
	if playerID < 0 || playerID >= len(playerColors) {
		return ColorWhite
	}
	return playerColors[playerID]
}
