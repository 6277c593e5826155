package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
)

var (
	Output io.Writer = color.Stdout
	// Delay paces the output so a table can follow the game.
	Delay = 1 * time.Second
)

// Print writes a message that already carries its line break.
func Print(message string) {
	fmt.Fprint(Output, message)
	time.Sleep(Delay)
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(Output, args...)
	time.Sleep(Delay)
}
