package encode

import "github.com/fatih/color"

// ColorClass names the output spans that take color.
type ColorClass int

const (
	HeaderColor ColorClass = iota
	StepNumColor
	RuleColor
	ChangedColor
	HeaderCellColor
	TrueCellColor
	FalseCellColor
)

// Colors maps output spans to sprint functions, with a fallback.
type Colors struct {
	Default func(...any) string
	Map     map[ColorClass]func(...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: color.New(color.Reset).Sprint,
		Map: map[ColorClass]func(...any) string{
			HeaderColor:     color.New(color.Bold).Sprint,
			StepNumColor:    color.New(color.Faint).Sprint,
			RuleColor:       color.New(color.FgCyan).Sprint,
			ChangedColor:    color.New(color.FgGreen, color.Bold).Sprint,
			HeaderCellColor: color.New(color.Bold).Sprint,
			TrueCellColor:   color.New(color.FgGreen).Sprint,
			FalseCellColor:  color.New(color.FgRed).Sprint,
		},
	}
}

// Func adapts the color table to the WithColor option.
func (c *Colors) Func() func(class ColorClass, s string) string {
	return func(class ColorClass, s string) string {
		f, ok := c.Map[class]
		if !ok {
			f = c.Default
		}
		return f(s)
	}
}
