package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, output io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(output, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// readSecret reads one line from input, for passwords piped on stdin. The
// prompt goes to output so stdout stays clean.
func readSecret(input io.Reader, output io.Writer, prompt string) (string, error) {
	fmt.Fprintf(output, "%s: ", prompt)
	reader := bufio.NewReader(input)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
