package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pastehound/pastehound/internal/config"
)

// unlimitedWords are the inputs accepted as "run until interrupted".
var unlimitedWords = map[string]bool{
	"unlimited": true,
	"infinite":  true,
	"inf":       true,
	"u":         true,
}

// parseCount converts user input to a discovery target.
// Returns 0 for the unlimited synonyms and ErrInvalidCount for
// anything that is not a positive integer.
func parseCount(input string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if unlimitedWords[s] {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, config.ErrInvalidCount
	}
	return n, nil
}

// promptCount interactively asks how many discoveries to find.
// Invalid input re-prompts; EOF is reported as an error so the caller
// can cancel cleanly.
func promptCount(in io.Reader, out io.Writer) (int, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "How many discoveries to find? (number or 'unlimited'): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		n, err := parseCount(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, "Please enter a positive number or 'unlimited'.")
			continue
		}
		if n == 0 {
			fmt.Fprintln(out, "Unlimited mode: press Ctrl+C to stop.")
		}
		return n, nil
	}
}

// promptOpenBrowser interactively asks whether to open discoveries in
// the browser. Accepts the usual yes/no synonyms and re-prompts on
// anything else.
func promptOpenBrowser(in io.Reader, out io.Writer) (bool, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Open discoveries in browser? (y/n): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, err
			}
			return false, io.EOF
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes", "1", "true":
			return true, nil
		case "n", "no", "0", "false":
			return false, nil
		default:
			fmt.Fprintln(out, "Please enter 'y' or 'n'.")
		}
	}
}
