package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads one line from reader, with
// the trailing newline trimmed. A partial line before EOF is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret prompts for a secret and reads it from the terminal without
// echo. label names what is being asked for ("password", "recovery key").
func GetSecret(label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "Enter %s: ", label); err != nil {
		return "", err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// GetMultiline reads lines until an empty one and joins them with '\n'.
// Used for post and advice bodies.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetConfirm asks a yes/no question and returns true only on an explicit
// "y"/"yes". Destructive actions go through here first.
func GetConfirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	if _, err := fmt.Fprint(w, prompt+" [y/N] "); err != nil {
		return false, err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// GetIndex prompts for a 1-based list position and checks it against the
// list size.
func GetIndex(reader *bufio.Reader, prompt string, size int, w io.Writer) (int, error) {
	text, err := getSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	return getIndexFromText(text, size)
}

func getIndexFromText(text string, size int) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > size {
		return 0, fmt.Errorf("enter a number between 1 and %d", size)
	}
	return n, nil
}

// Interactive helpers are called through vars so command tests can stub
// them.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
	getMultiline  = GetMultiline
	getConfirm    = GetConfirm
	getIndex      = GetIndex
)
