package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/usecase"
)

// Limits bounds the board sizes the UI may request. The solver itself
// accepts anything up to its mask width; the adapter narrows that to a
// range that stays interactive.
type Limits struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Handler struct {
	UC     *usecase.Service
	Limits Limits
}

func New(uc *usecase.Service, lim Limits) *Handler { return &Handler{UC: uc, Limits: lim} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/navigate", h.handleNavigate)
	mux.HandleFunc("/api/step", h.handleStep)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/limits", h.handleLimits)
}

func (h *Handler) sizeOK(n int) bool { return n >= h.Limits.Min && n <= h.Limits.Max }

// ParseDirection maps a wire direction string to its enum.
func ParseDirection(s string) (domain.Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return domain.First, true
	case "prev", "previous":
		return domain.Prev, true
	case "next":
		return domain.Next, true
	case "last":
		return domain.Last, true
	case "random":
		return domain.Random, true
	}
	return 0, false
}

// ---- Solve ----

type solveReq struct {
	N           int  `json:"n"`
	ShowAttacks bool `json:"showAttacks,omitempty"`
}

type solveResp struct {
	N          int               `json:"n,omitempty"`
	Count      int               `json:"count"`
	Index      int               `json:"index"`
	Solution   domain.Placement  `json:"solution,omitempty"`
	Board      *domain.BoardView `json:"board,omitempty"`
	DurationMs float64           `json:"durationMs"`
	Nodes      int               `json:"nodes"`
	Cached     bool              `json:"cached"`
	Error      string            `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if !h.sizeOK(req.N) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "board size out of range"})
		return
	}
	sols, st, cached, err := h.UC.Solve(r.Context(), req.N)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	resp := solveResp{
		N:          req.N,
		Count:      len(sols),
		DurationMs: float64(st.Duration.Microseconds()) / 1000,
		Nodes:      st.Nodes,
		Cached:     cached,
	}
	if len(sols) > 0 {
		resp.Solution = sols[0]
		view, err := h.UC.Board(r.Context(), req.N, 0, req.N, req.ShowAttacks)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
			return
		}
		resp.Board = &view
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Navigate ----

type navigateReq struct {
	N           int    `json:"n"`
	Index       int    `json:"index"`
	Direction   string `json:"direction"`
	ShowAttacks bool   `json:"showAttacks,omitempty"`
}

type navigateResp struct {
	Index    int               `json:"index"`
	Count    int               `json:"count"`
	Solution domain.Placement  `json:"solution,omitempty"`
	Board    *domain.BoardView `json:"board,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req navigateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(navigateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if !h.sizeOK(req.N) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(navigateResp{Error: "board size out of range"})
		return
	}
	dir, ok := ParseDirection(req.Direction)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(navigateResp{Error: "unknown direction " + req.Direction})
		return
	}
	idx, sol, total, err := h.UC.Navigate(r.Context(), req.N, req.Index, dir)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(navigateResp{Error: err.Error()})
		return
	}
	resp := navigateResp{Index: idx, Count: total, Solution: sol}
	if total > 0 {
		view, err := h.UC.Board(r.Context(), req.N, idx, req.N, req.ShowAttacks)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(navigateResp{Error: err.Error()})
			return
		}
		resp.Board = &view
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Step ----

type stepReq struct {
	N           int  `json:"n"`
	Index       int  `json:"index"`
	Step        int  `json:"step"` // -1 shows the full board
	ShowAttacks bool `json:"showAttacks,omitempty"`
}

type stepResp struct {
	Board       *domain.BoardView `json:"board,omitempty"`
	Info        domain.StepInfo   `json:"info"`
	SafeColumns []int             `json:"safeColumns,omitempty"`
	Error       string            `json:"error,omitempty"`
}

func (h *Handler) handleStep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req stepReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stepResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if !h.sizeOK(req.N) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stepResp{Error: "board size out of range"})
		return
	}
	view, info, cols, err := h.UC.Step(r.Context(), req.N, req.Index, req.Step, req.ShowAttacks)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stepResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(stepResp{Board: &view, Info: info, SafeColumns: cols})
}

// ---- Validate ----

type validateReq struct {
	N         int              `json:"n"`
	Placement domain.Placement `json:"placement"`
}

type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Cell `json:"conflicts,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.N, req.Placement)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Limits ----

func (h *Handler) handleLimits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	_ = json.NewEncoder(w).Encode(h.Limits)
}
