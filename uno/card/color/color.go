package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var painters = map[Color]colorStruct{
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Wild:   {name: "wild", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

// Playable lists the colors a wild card may be declared as.
var Playable = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if p, ok := painters[c]; ok {
		return p.name
	}
	return "none"
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// Valid reports whether c can be the color in effect.
func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

func ByName(name string) (Color, error) {
	for c, p := range painters {
		if p.name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
