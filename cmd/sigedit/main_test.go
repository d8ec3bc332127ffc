package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/sigedit"
	main "github.com/fwojciec/sigedit/cmd/sigedit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMain runs the program with an empty config file and a temporary
// database.
func runMain(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath
	m.Now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }

	config := writeFile(t, "config.yaml", "")
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), append([]string{"--config", config}, args...), strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := main.NewMain().Run(context.Background(), nil, strings.NewReader(""), &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Usage: sigedit")
	})

	t.Run("help lists commands", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := main.NewMain().Run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr)

		require.NoError(t, err)
		for _, cmd := range []string{"parse", "edit", "validate", "export", "preview", "template", "signature"} {
			assert.Contains(t, stdout.String(), cmd)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := runMain(t, "", "frobnicate")

		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
	})

	t.Run("missing explicit config", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := main.NewMain().Run(context.Background(),
			[]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "validate", "x.html"},
			strings.NewReader(""), &stdout, &stderr)

		assert.Equal(t, sigedit.ENOTFOUND, sigedit.ErrorCode(err))
	})

	t.Run("parse and edit a file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sig.html", scenarioHTML)

		stdout, _, err := runMain(t, "", "parse", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Product Manager")

		stdout, _, err = runMain(t, "", "edit", path, "--set", "1=Jane Doe")
		require.NoError(t, err)
		assert.Contains(t, stdout, "<p>Jane Doe</p>")
	})

	t.Run("preview renders markdown", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sig.html", `<p><strong>Jane Smith</strong></p><script>alert(1)</script>`)

		stdout, _, err := runMain(t, "", "preview", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "**Jane Smith**")
		assert.NotContains(t, stdout, "alert")
	})

	t.Run("export writes file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, "sig.html", scenarioHTML)

		stdout, _, err := runMain(t, "", "export", path, "--dir", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, filepath.Join(dir, "signature-2026-10-16.html"))
	})

	t.Run("templates persist across runs", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "sigedit.db")
		path := writeFile(t, "sig.html", scenarioHTML)

		stdout, _, err := runMain(t, db, "template", "save", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Saved template 1 (Template 1)")

		stdout, _, err = runMain(t, db, "template", "list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "1  Template 1")

		stdout, _, err = runMain(t, db, "template", "show", "1")
		require.NoError(t, err)
		assert.Equal(t, scenarioHTML+"\n", stdout)
	})

	t.Run("saved signature can be edited and deleted", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "sigedit.db")
		path := writeFile(t, "sig.html", scenarioHTML)

		_, stderr, err := runMain(t, db, "parse", "--save", path)
		require.NoError(t, err)
		id := strings.TrimSpace(strings.TrimPrefix(stderr, "Saved signature "))
		require.NotEmpty(t, id)

		_, _, err = runMain(t, db, "edit", "--signature", id, "--set", "2=Head of Product", "--output", filepath.Join(t.TempDir(), "out.html"))
		require.NoError(t, err)

		stdout, _, err := runMain(t, db, "signature", "show", id, "--html")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Head of Product")

		_, _, err = runMain(t, db, "signature", "delete", id, "--force")
		require.NoError(t, err)

		_, _, err = runMain(t, db, "signature", "show", id)
		assert.Equal(t, sigedit.ENOTFOUND, sigedit.ErrorCode(err))
	})
}
