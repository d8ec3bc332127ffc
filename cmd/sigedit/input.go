package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/fs"
)

// readHTML reads a signature from a file, or from stdin when path is "-".
func readHTML(deps *Dependencies, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return fs.ReadHTML(path)
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(deps *Dependencies, path, content string) error {
	if path == "" {
		_, err := io.WriteString(deps.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// parseAssignment splits an "ID=VALUE" flag value.
func parseAssignment(flag, s string) (int, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", sigedit.Errorf(sigedit.EINVALID, "--%s %q must have the form ID=VALUE", flag, s)
	}
	id, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || id < 1 {
		return 0, "", sigedit.Errorf(sigedit.EINVALID, "--%s %q: ID must be a positive number", flag, s)
	}
	return id, value, nil
}

// fail prints the user-facing message for err and returns it.
func fail(deps *Dependencies, err error) error {
	fmtError(deps.Stderr, err)
	return err
}

func fmtError(w io.Writer, err error) {
	io.WriteString(w, "error: "+sigedit.ErrorMessage(err)+"\n")
}
