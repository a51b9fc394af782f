// internal/httpserver/routes_boards.go
//
// Board sessions held in the in-memory store.
//   - POST   /boards                                  → new board with one blank row
//   - GET    /boards/{id}                             → board state
//   - DELETE /boards/{id}                             → drop the board
//   - PUT    /boards/{id}/length                      → change word length (rows re-sliced)
//   - POST   /boards/{id}/rows                        → append a row ({word, marks}, both optional)
//   - DELETE /boards/{id}/rows                        → clear back to one blank row
//   - PUT    /boards/{id}/rows/{row}                  → retype a row's letters ({word})
//   - DELETE /boards/{id}/rows/{row}                  → remove a row
//   - POST   /boards/{id}/rows/{row}/tiles/{pos}/cycle → absent → present → correct → absent
//   - GET    /boards/{id}/candidates                  → same payload as POST /solve
//
// Every mutation goes through store.Update so edits to one board are serialised.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/solver"
	"github.com/robalobadob/wrdlstab/internal/store"
)

// mountBoards registers all /boards routes.
func (s *Server) mountBoards(r chi.Router) {
	r.Route("/boards", func(r chi.Router) {
		r.Post("/", s.handleNewBoard)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetBoard)
			r.Delete("/", s.handleDeleteBoard)
			r.Put("/length", s.handleResize)
			r.Post("/rows", s.handleAddRow)
			r.Delete("/rows", s.handleClearRows)
			r.Put("/rows/{row}", s.handleSetWord)
			r.Delete("/rows/{row}", s.handleRemoveRow)
			r.Post("/rows/{row}/tiles/{pos}/cycle", s.handleCycle)
			r.Get("/candidates", s.handleBoardCandidates)
		})
	})
}

type newBoardReq struct {
	Length int `json:"length"`
}

func (s *Server) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	var req newBoardReq
	if err := decodeOptional(r, &req); err != nil {
		badJSON(w)
		return
	}
	if req.Length == 0 {
		req.Length = s.opts.Length
	}
	sess, err := s.store.Create(r.Context(), req.Length)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req newBoardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	if err := puzzle.CheckLength(req.Length); err != nil {
		writeError(w, r, err)
		return
	}
	s.update(w, r, func(sess *store.Session) error {
		sess.Length = req.Length
		sess.Board.Resize(req.Length)
		return nil
	})
}

func (s *Server) handleAddRow(w http.ResponseWriter, r *http.Request) {
	var req rowReq
	if err := decodeOptional(r, &req); err != nil {
		badJSON(w)
		return
	}
	s.update(w, r, func(sess *store.Session) error {
		row, err := puzzle.ParseRow(req.Word, req.Marks, sess.Length)
		if err != nil {
			return err
		}
		sess.Board.AddRow(row)
		return nil
	})
}

func (s *Server) handleClearRows(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(sess *store.Session) error {
		sess.Board.Clear()
		sess.Board.AddRow(puzzle.NewRow(sess.Length))
		return nil
	})
}

func (s *Server) handleSetWord(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "row")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req rowReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	s.update(w, r, func(sess *store.Session) error {
		row, err := sess.Board.Row(i)
		if err != nil {
			return err
		}
		row.SetWord(req.Word)
		return nil
	})
}

func (s *Server) handleRemoveRow(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "row")
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.update(w, r, func(sess *store.Session) error {
		return sess.Board.RemoveRow(i)
	})
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	i, err := pathInt(r, "row")
	if err != nil {
		writeError(w, r, err)
		return
	}
	pos, err := pathInt(r, "pos")
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.update(w, r, func(sess *store.Session) error {
		row, err := sess.Board.Row(i)
		if err != nil {
			return err
		}
		if pos < 0 || pos >= len(row) {
			return fmt.Errorf("%w: tile %d", puzzle.ErrNoSuchRow, pos)
		}
		row[pos].Cycle()
		return nil
	})
}

func (s *Server) handleBoardCandidates(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	cs, err := solver.Derive(sess.Board, sess.Length)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.serveCandidates(w, r, cs)
}

// update runs fn against the board named in the path and writes the result.
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(*store.Session) error) {
	sess, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), fn)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// pathInt reads a non-negative integer URL parameter.
func pathInt(r *http.Request, name string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", puzzle.ErrNoSuchRow, name, chi.URLParam(r, name))
	}
	return n, nil
}

// decodeOptional decodes a JSON body into v; an empty body leaves v untouched.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
