package freqdb

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wrdlstab/internal/rank"
	"github.com/robalobadob/wrdlstab/internal/words"
)

const sample = `# word count
the 600
about 100
other 80
Crane 10
crane 5
it's 50
slate 3
north 2
ab 150
`

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "freq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestImportAndTopN(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	res, err := s.Import(ctx, "en", "sample", strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Lang: "en", Words: 7, Total: 1000}, res)

	n, err := s.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	ws, err := s.TopN(ctx, "en", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "other", "crane", "slate", "north"}, ws)

	// the limit applies before the length filter
	ws, err = s.TopN(ctx, "en", 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"about"}, ws)

	ws, err = s.TopN(ctx, "fr", 0, 5)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestImportReplacesLanguage(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	_, err := s.Import(ctx, "en", "first", strings.NewReader(sample))
	require.NoError(t, err)
	_, err = s.Import(ctx, "en", "second", strings.NewReader("fjord 1\n"))
	require.NoError(t, err)

	ws, err := s.TopN(ctx, "en", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"fjord"}, ws)
}

func TestImportRejectsMalformedLines(t *testing.T) {
	s := openTest(t)
	_, err := s.Import(context.Background(), "en", "bad", strings.NewReader("the 10\nbroken\n"))
	require.ErrorIs(t, err, ErrBadFrequencyLine)
	_, err = s.Import(context.Background(), "en", "bad", strings.NewReader("the many\n"))
	require.ErrorIs(t, err, ErrBadFrequencyLine)
}

func TestOracle(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	empty, err := s.Oracle(ctx, "en")
	require.NoError(t, err)
	assert.False(t, empty.Available())

	_, err = s.Import(ctx, "en", "sample", strings.NewReader(sample))
	require.NoError(t, err)
	o, err := s.Oracle(ctx, "en")
	require.NoError(t, err)
	require.True(t, o.Available())

	score, ok := o.Frequency("crane")
	require.True(t, ok)
	assert.InDelta(t, math.Log10(15.0/1000*1e9), score, 1e-9)

	ranked := rank.ByFrequency([]string{"north", "crane", "about", "zzzzz"}, o)
	assert.Equal(t, []string{"about", "crane", "north", "zzzzz"}, ranked)
}

func TestCorpusSource(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	_, err := s.Import(ctx, "en", "sample", strings.NewReader(sample))
	require.NoError(t, err)

	ws, err := words.Load(ctx, Corpus{Store: s, Lang: "en", N: 50000}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "other", "crane", "slate", "north"}, ws)

	_, err = words.Load(ctx, Corpus{Store: s, Lang: "en", N: 50000}, 9)
	require.ErrorIs(t, err, words.ErrNoWordSource)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTest(t)
	require.NoError(t, migrate(s.db))
	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}
