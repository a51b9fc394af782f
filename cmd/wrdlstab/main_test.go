package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// workspace moves into a temp dir holding a small word list and returns the
// paths for --words-file and --db.
func workspace(t *testing.T) (wordsFile, db string) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	wordsFile = filepath.Join(dir, "words.txt")
	list := "tabor\ntrout\nwrite\nnorth\ngrits\nforty\ncarts\n"
	require.NoError(t, os.WriteFile(wordsFile, []byte(list), 0o644))
	return wordsFile, filepath.Join(dir, "data", "freq.db")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	flagFirst, flagJSON, flagTarget, flagTurns, flagSalt = false, false, "", 6, "wrdlstab"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolve(t *testing.T) {
	wf, db := workspace(t)

	out, err := run(t, "", "solve", "--words-file", wf, "--db", db, "crate:-y-g-")
	require.NoError(t, err)
	assert.Equal(t, "2 candidate(s):\nforty\nnorth\n", out)

	out, err = run(t, "", "solve", "--words-file", wf, "--db", db, "--first", "crate:-y-g-")
	require.NoError(t, err)
	assert.Equal(t, "forty\n", out)

	out, err = run(t, "", "solve", "--words-file", wf, "--db", db, "zzzzz:ggggg")
	require.NoError(t, err)
	assert.Equal(t, "No matches.\n", out)

	out, err = run(t, "", "solve", "--words-file", wf, "--db", db, "--json", "crate:-y-g-")
	require.NoError(t, err)
	assert.Contains(t, out, `"pattern": "...t."`)

	_, err = os.Stat(db)
	assert.True(t, os.IsNotExist(err), "solve never creates the database")
}

func TestSolveErrors(t *testing.T) {
	wf, db := workspace(t)

	_, err := run(t, "", "solve", "--words-file", wf, "--db", db, "cr4te:-----")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = run(t, "", "solve", "--words-file", wf, "--db", db, "-n", "4")
	require.Error(t, err)
	assert.Equal(t, exitNoWords, exitCode(err))

	_, err = run(t, "", "solve", "--words-file", filepath.Join(filepath.Dir(wf), "missing.txt"), "--db", db, "-n", "5")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestFreqImportRanksCandidates(t *testing.T) {
	_, db := workspace(t)
	freq := "north 500\nbirth 300\nforty 100\nworth 50\nthe 9000\nit's 40\n"

	out, err := run(t, freq, "freq", "import", "-", "--db", db, "--lang", "en")
	require.NoError(t, err)
	assert.Equal(t, "imported 5 words for en\n", out)

	out, err = run(t, "", "freq", "top", "2", "--db", db, "--lang", "en", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, "north\nbirth\n", out)

	out, err = run(t, "", "solve", "--words-file", "", "--db", db, "--lang", "en", "-n", "5", "crate:-y-g-")
	require.NoError(t, err)
	assert.Equal(t, "4 candidate(s):\nnorth\nbirth\nforty\nworth\n", out)
}

func TestSimulate(t *testing.T) {
	wf, db := workspace(t)
	out, err := run(t, "", "simulate", "--words-file", wf, "--db", db, "-n", "5", "--target", "north", "crate")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in 3")

	out, err = run(t, "", "simulate", "--words-file", wf, "--db", db, "-n", "5", "--target", "")
	require.NoError(t, err)
	assert.Contains(t, out, "playing the word for ")

	_, err = run(t, "", "simulate", "--words-file", wf, "--db", db, "-n", "5", "--target", "north", "nor")
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	wf, db := workspace(t)
	out, err := run(t, "add crate:-y-g-\nfind\nquit\n", "play", "--words-file", wf, "--db", db, "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "2 candidate(s):\nforty\nnorth\n")
}

func TestTokenAndVersion(t *testing.T) {
	workspace(t)
	t.Setenv("WRDLSTAB_JWT_SECRET", "s3cret")
	out, err := run(t, "", "token", "--sub", "ops")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out), "."))

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wrdlstab dev\n", out)
}
