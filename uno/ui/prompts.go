package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/spf13/cast"
)

// PassLabel answers a card selection with its pass option.
const PassLabel = "-"

var input = bufio.NewReader(os.Stdin)

func SetInput(r io.Reader) {
	input = bufio.NewReader(r)
}

// readLine fails with ErrorsExist once the input is closed or the player
// types exit.
func readLine() (string, error) {
	line, err := input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", consts.ErrorsExist
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "exit") {
		return "", consts.ErrorsExist
	}
	return line, nil
}

func PromptString(message string) (string, error) {
	for {
		Println(message)
		line, err := readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			Println("Invalid text input")
			continue
		}
		return line, nil
	}
}

func promptInteger(message string) (int, error) {
	for {
		line, err := PromptString(message)
		if err != nil {
			return 0, err
		}
		number, err := cast.ToIntE(line)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return number, nil
	}
}

func promptLowercaseString(message string) (string, error) {
	line, err := PromptString(message)
	return strings.ToLower(line), err
}

func promptUppercaseString(message string) (string, error) {
	line, err := PromptString(message)
	return strings.ToUpper(line), err
}

// PromptCardSelection returns the position of the chosen card in cards, or -1
// when passOption is offered and taken.
func PromptCardSelection(message string, cards []card.Card, passOption string) (int, error) {
	runeSequence := runeSequence{}
	cardOptions := make(map[string]int, len(cards))
	cardSelectionLines := []string{message}
	for i, c := range cards {
		label := string(runeSequence.next())
		cardOptions[label] = i
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s: %s", label, c))
	}
	if passOption != "" {
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s: %s", PassLabel, passOption))
	}

	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")
	for {
		selectedLabel, err := promptUppercaseString(cardSelectionMessage)
		if err != nil {
			return 0, err
		}
		if passOption != "" && selectedLabel == PassLabel {
			return -1, nil
		}
		selected, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selected, nil
	}
}

func PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := promptLowercaseString(colorMessage)
		if err != nil {
			return color.None, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil || !chosenColor.Valid() {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		number, err := promptInteger(message)
		if err != nil {
			return 0, err
		}
		if number < minimum || number > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return number, nil
	}
}

// PromptSeat asks for another player's seat, never exclude.
func PromptSeat(names []string, exclude int) (int, error) {
	lines := []string{"Select a player:"}
	for i, name := range names {
		if i != exclude {
			lines = append(lines, fmt.Sprintf("%d: %s", i+1, name))
		}
	}
	message := strings.Join(lines, "\n")
	for {
		number, err := PromptIntegerInRange(1, len(names), message)
		if err != nil {
			return 0, err
		}
		if number-1 == exclude {
			Println("Pick someone else")
			continue
		}
		return number - 1, nil
	}
}

func PromptConfirm(message string) (bool, error) {
	for {
		answer, err := promptLowercaseString(message + " (y/n)")
		if err != nil {
			return false, err
		}
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		Println("Answer y or n")
	}
}
