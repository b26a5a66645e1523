package render

import (
	"github.com/fatih/color"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// ColorName is the short human name of a palette colour; colours outside the
// palette are returned as their hex code.
func ColorName(c core.Color) string {
	switch c {
	case core.ColorDefault:
		return "gray"
	case core.ColorGreen:
		return "green"
	case core.ColorBlue:
		return "blue"
	case core.ColorAmber:
		return "amber"
	case core.ColorOrange:
		return "orange"
	case core.ColorPurple:
		return "purple"
	case core.ColorRed:
		return "red"
	}

	return string(c)
}

// Attribute maps a palette colour onto the nearest terminal colour.
func Attribute(c core.Color) color.Attribute {
	switch c {
	case core.ColorGreen:
		return color.FgGreen
	case core.ColorBlue:
		return color.FgBlue
	case core.ColorAmber:
		return color.FgYellow
	case core.ColorOrange:
		return color.FgHiYellow
	case core.ColorPurple:
		return color.FgMagenta
	case core.ColorRed:
		return color.FgRed
	}

	return color.FgHiBlack
}

// Swatch returns a two-cell block in the terminal colour of c, for legends.
func Swatch(c core.Color) string {
	return color.New(Attribute(c) + 10).Sprint("  ")
}
