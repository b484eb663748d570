package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inkveil/inkveil/internal/common"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
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

// promptOutputDir is the consent step for the output directory. An empty
// line means the user declined; the batch then falls back to per-file
// downloads instead of aborting.
func (a *App) promptOutputDir(ctx context.Context) (string, error) {
	dir, err := GetSimpleText(a.reader, "Directory to save redacted files into (empty line to skip)", a.out)
	if err != nil {
		return "", common.ErrorTargetUnavailable
	}
	if dir == "" {
		return "", common.ErrorTargetCancelled
	}
	return dir, nil
}
