package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readChoice reads a 1-based option number, reprompting on invalid input, and
// returns the 0-based index.
func readChoice(stdin *bufio.Reader, stdout io.Writer, optionCount int) (int, error) {
	for {
		fmt.Fprintf(stdout, "Your answer (1-%d): ", optionCount)
		line, err := stdin.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("stdin.ReadString() > %w", err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > optionCount {
			fmt.Fprintf(stdout, "Please enter a number between 1 and %d.\n", optionCount)
			continue
		}
		return choice - 1, nil
	}
}
