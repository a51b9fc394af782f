// internal/httpserver/routes_solve.go
//
// Stateless solving.
//   - POST /solve  {length, rows:[{word, marks}]} → constraints + ranked candidates
//
// Responses carry an ETag derived from the constraint set, the display cap
// and the word-list version, so a client re-sending an unchanged board gets 304.

package httpserver

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/solver"
)

// rowReq is one guess row: the guessed word and its feedback marks
// ('-' absent, 'y' present, 'g' correct).
type rowReq struct {
	Word  string `json:"word"`
	Marks string `json:"marks"`
}

type solveReq struct {
	Length int      `json:"length"`
	Rows   []rowReq `json:"rows"`
}

type solveRes struct {
	engine.Result
	ETag string `json:"etag"`
}

// handleSolve derives constraints from the posted rows and returns candidates.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	length := req.Length
	if length == 0 {
		length = s.opts.Length
	}
	if err := puzzle.CheckLength(length); err != nil {
		writeError(w, r, err)
		return
	}
	var board puzzle.Board
	for _, rr := range req.Rows {
		row, err := puzzle.ParseRow(rr.Word, rr.Marks, length)
		if err != nil {
			writeError(w, r, err)
			return
		}
		board.AddRow(row)
	}
	cs, err := solver.Derive(board, length)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.serveCandidates(w, r, cs)
}

// serveCandidates answers with the candidates for cs, or 304 when the
// client already holds them.
func (s *Server) serveCandidates(w http.ResponseWriter, r *http.Request, cs solver.ConstraintSet) {
	tag, err := s.etag(cs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("ETag", tag)
	if etagMatch(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	res, err := s.engine.SolveConstraints(r.Context(), cs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, solveRes{Result: res, ETag: tag})
}

// etag hashes everything that determines a candidate list.
func (s *Server) etag(cs solver.ConstraintSet) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(cs)
	if err != nil {
		return "", err
	}
	_, _ = h.Write([]byte("v" + strconv.FormatUint(s.words.Version(), 10) + "|"))
	_, _ = h.Write([]byte("max" + strconv.Itoa(s.opts.MaxShow) + "|"))
	_, _ = h.Write(b)
	return `"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`, nil
}

// etagMatch reports whether an If-None-Match header lists tag.
// Weak validators compare equal to their strong form.
func etagMatch(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, cand := range strings.Split(header, ",") {
		cand = strings.TrimSpace(cand)
		if cand == "*" || strings.TrimPrefix(cand, "W/") == tag {
			return true
		}
	}
	return false
}
