package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/layout"
	"github.com/matzehuels/tianzige/pkg/paper"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// layoutResponse is the body of GET /v1/layout.
type layoutResponse struct {
	Page  paper.Size  `json:"page"`
	Grid  layout.Grid `json:"grid"`
	Style styleInfo   `json:"style"`
}

type styleInfo struct {
	Color     string  `json:"color"`
	LineWidth float64 `json:"line_width"`
	InnerGrid bool    `json:"inner_grid"`
	Guides    bool    `json:"guides"`
	Diagonals bool    `json:"diagonals"`
}

// errorResponse is the body of every failed request. The grid fields are
// only set for MINIMUM_BOXES_UNSATISFIABLE.
type errorResponse struct {
	Code          errors.Code `json:"code"`
	Message       string      `json:"message"`
	Columns       *int        `json:"columns,omitempty"`
	Rows          *int        `json:"rows,omitempty"`
	MaxSquareSize *float64    `json:"max_square_size_mm,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r, s.Base())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := opts.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := s.runner.Resolve(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	st := opts.Style()
	writeJSON(w, http.StatusOK, layoutResponse{
		Page: opts.Page(),
		Grid: g,
		Style: styleInfo{
			Color:     st.Color.Hex(),
			LineWidth: st.LineWidth,
			InnerGrid: st.InnerGrid,
			Guides:    st.Guides,
			Diagonals: st.Diagonals,
		},
	})
}

func (s *Server) handleGridPDF(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r, s.Base())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	id := uuid.NewString()
	s.logger.Debug("rendered grid",
		"render_id", id,
		"page", result.Page,
		"columns", result.Grid.Columns,
		"rows", result.Grid.Rows,
		"bytes", result.Stats.Bytes)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Header().Set("Content-Disposition", `inline; filename="tianzige.pdf"`)
	w.Header().Set("X-Render-ID", id)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)

	resp := errorResponse{Code: code, Message: errors.UserMessage(err)}
	var mbe *layout.MinimumBoxesError
	if stderrors.As(err, &mbe) {
		resp.Message = mbe.Error()
		resp.Columns = &mbe.Columns
		resp.Rows = &mbe.Rows
		resp.MaxSquareSize = &mbe.MaxSquareSize
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		resp.Message = "internal error"
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// parseOptions overlays the query parameters onto base:
//
//	page, size, min_h, min_v, step, mt, mb, ml, mr,
//	color, line_width, inner, guides, diagonals
func parseOptions(r *http.Request, base pipeline.Options) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := base

	if v := q.Get("page"); v != "" {
		opts.PageSize = v
	}
	if v := q.Get("color"); v != "" {
		opts.Color = v
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"size", &opts.SquareSize},
		{"step", &opts.SizeStep},
		{"mt", &opts.MarginTop},
		{"mb", &opts.MarginBottom},
		{"ml", &opts.MarginLeft},
		{"mr", &opts.MarginRight},
		{"line_width", &opts.LineWidth},
	}
	for _, f := range floats {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", f.key, v)
		}
		*f.dst = n
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"min_h", &opts.MinHorizontal},
		{"min_v", &opts.MinVertical},
	}
	for _, f := range ints {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not an integer", f.key, v)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"inner", &opts.InnerGrid},
		{"guides", &opts.Guides},
		{"diagonals", &opts.Diagonals},
	}
	for _, f := range bools {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a boolean", f.key, v)
		}
		*f.dst = b
	}

	return opts, nil
}
