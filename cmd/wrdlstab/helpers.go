// Shared helpers for wrdlstab commands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/freqdb"
	"github.com/robalobadob/wrdlstab/internal/rank"
	"github.com/robalobadob/wrdlstab/internal/words"
)

// backend is the word source and ranking oracle a command runs against.
type backend struct {
	source words.Source
	oracle rank.Oracle
	store  *freqdb.Store
}

func (b *backend) Close() error {
	if b.store == nil {
		return nil
	}
	return b.store.Close()
}

func (b *backend) engine() *engine.Engine {
	return &engine.Engine{Source: b.source, Oracle: b.oracle, MaxShow: cfg.MaxShow}
}

// openBackend picks the word source:
//   - --words-file when given (no fallback: a bad path is an error);
//   - otherwise the frequency corpus if it has words for the language,
//     falling back to the built-in list.
//
// The corpus also supplies the ranking oracle; without it ranking is lexical.
// A missing database file is never created here.
func openBackend(ctx context.Context) (*backend, error) {
	b := &backend{}
	if _, err := os.Stat(cfg.DB); err == nil {
		st, err := freqdb.Open(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("open frequency db: %w", err)
		}
		b.store = st
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat frequency db: %w", err)
	}

	var corpus words.Source
	if b.store != nil {
		n, err := b.store.Count(ctx, cfg.Lang)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		if n > 0 {
			oracle, err := b.store.Oracle(ctx, cfg.Lang)
			if err != nil {
				_ = b.Close()
				return nil, err
			}
			b.oracle = oracle
			corpus = freqdb.Corpus{Store: b.store, Lang: cfg.Lang, N: cfg.TopN}
		}
	}

	switch {
	case cfg.WordsFile != "":
		b.source = words.File(cfg.WordsFile)
	case corpus != nil:
		b.source = words.Fallback{corpus, words.Embedded{}}
	default:
		b.source = words.Embedded{}
	}
	log.Debug().
		Str("source", fmt.Sprint(b.source)).
		Bool("ranked", b.oracle != nil).
		Msg("word source ready")
	return b, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
