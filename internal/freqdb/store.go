// internal/freqdb/store.go
//
// Word-frequency corpus backed by SQLite.
// Exposes:
//   - Import: load a "word count" frequency list for a language.
//   - TopN:   the N most frequent words, filtered to one length (corpus word source).
//   - Oracle: per-word Zipf scores for ranking candidates.
//
// Scores are stored on the Zipf scale: log10(occurrences per billion words).

package freqdb

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/robalobadob/wrdlstab/internal/rank"
)

var ErrBadFrequencyLine = errors.New("freqdb: malformed frequency line")

type Store struct{ db *sql.DB }

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// ImportResult summarises one Import call.
type ImportResult struct {
	Lang  string `json:"lang"`
	Words int    `json:"words"` // distinct alphabetic words stored
	Total int64  `json:"total"` // occurrences across every parsed line
}

// Import replaces the corpus for lang with the contents of r.
//
// Each line holds a word and its occurrence count separated by whitespace.
// Blank lines and lines starting with '#' are skipped. Words are lowercased;
// words that are not purely a–z still count towards the total but are not stored.
func (s *Store) Import(ctx context.Context, lang, source string, r io.Reader) (ImportResult, error) {
	counts := make(map[string]int64)
	var total int64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return ImportResult{}, fmt.Errorf("%w: line %d: %q", ErrBadFrequencyLine, line, text)
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || n < 0 {
			return ImportResult{}, fmt.Errorf("%w: line %d: count %q", ErrBadFrequencyLine, line, fields[1])
		}
		total += n
		if w := strings.ToLower(fields[0]); isAlpha(w) {
			counts[w] += n
		}
	}
	if err := sc.Err(); err != nil {
		return ImportResult{}, fmt.Errorf("read frequency list: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM word_freq WHERE lang=?`, lang); err != nil {
		return ImportResult{}, fmt.Errorf("clear %s: %w", lang, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO word_freq(lang, word, freq) VALUES (?,?,?)`)
	if err != nil {
		return ImportResult{}, err
	}
	defer stmt.Close()
	for w, n := range counts {
		if _, err := stmt.ExecContext(ctx, lang, w, zipf(n, total)); err != nil {
			return ImportResult{}, fmt.Errorf("insert %q: %w", w, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports(lang, source, words, total) VALUES (?,?,?,?)`,
		lang, source, len(counts), total,
	); err != nil {
		return ImportResult{}, fmt.Errorf("record import: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Lang: lang, Words: len(counts), Total: total}, nil
}

// zipf converts a raw count into log10(occurrences per billion).
func zipf(n, total int64) float64 {
	if n <= 0 || total <= 0 {
		return 0
	}
	return math.Log10(float64(n) / float64(total) * 1e9)
}

// TopN returns the n most frequent words of lang, then keeps those of the
// given length, most frequent first. n <= 0 means no limit.
func (s *Store) TopN(ctx context.Context, lang string, n, length int) ([]string, error) {
	if n <= 0 {
		n = -1
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT word FROM (
            SELECT word, freq FROM word_freq
            WHERE lang=?
            ORDER BY freq DESC, word ASC
            LIMIT ?
        )
        WHERE length(word)=?
        ORDER BY freq DESC, word ASC`, lang, n, length,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Oracle loads every score for lang. An empty oracle reports itself unavailable.
func (s *Store) Oracle(ctx context.Context, lang string) (rank.MapOracle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, freq FROM word_freq WHERE lang=?`, lang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(rank.MapOracle)
	for rows.Next() {
		var w string
		var f float64
		if err := rows.Scan(&w, &f); err != nil {
			return nil, err
		}
		out[w] = f
	}
	return out, rows.Err()
}

// Count returns how many words are stored for lang.
func (s *Store) Count(ctx context.Context, lang string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM word_freq WHERE lang=?`, lang).Scan(&n)
	return n, err
}

// Corpus adapts the store to a word source: the N most frequent words of Lang.
type Corpus struct {
	Store *Store
	Lang  string
	N     int
}

func (c Corpus) Words(ctx context.Context, length int) ([]string, error) {
	return c.Store.TopN(ctx, c.Lang, c.N, length)
}

func (c Corpus) String() string { return fmt.Sprintf("corpus %s top %d", c.Lang, c.N) }

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
