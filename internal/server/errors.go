package server

import (
	"errors"
	"html"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/admpub/log"
	"github.com/go-chi/render"

	"github.com/admpub/product-analyzer/pkg/chart"
	"github.com/admpub/product-analyzer/pkg/config"
	"github.com/admpub/product-analyzer/pkg/storage"
)

// ErrResponse renders an error as JSON.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErrResponse(err error, code int) *ErrResponse {
	resp := &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
	}
	if err != nil {
		resp.ErrorText = err.Error()
	}
	return resp
}

// forClient drops the error text of 5xx responses unless debug is set.
func (e *ErrResponse) forClient(debug bool) *ErrResponse {
	if !debug && e.HTTPStatusCode >= http.StatusInternalServerError {
		e.ErrorText = ``
	}
	return e
}

func ErrNotFound(err error) render.Renderer {
	return newErrResponse(err, http.StatusNotFound)
}

func ErrBadRequest(err error) render.Renderer {
	return newErrResponse(err, http.StatusBadRequest)
}

func ErrInternalServerError(err error) render.Renderer {
	return newErrResponse(err, http.StatusInternalServerError)
}

// ErrFor maps err to a response: missing data is a 404, invalid input a
// 400, anything else a 500.
func ErrFor(err error) *ErrResponse {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newErrResponse(err, http.StatusNotFound)
	case errors.Is(err, storage.ErrUnknownField), errors.Is(err, chart.ErrLengthMismatch), errors.Is(err, errUnsupportedRenderer):
		return newErrResponse(err, http.StatusBadRequest)
	default:
		return newErrResponse(err, http.StatusInternalServerError)
	}
}

func renderAPIError(w http.ResponseWriter, r *http.Request, cfg *config.Config, err error) {
	resp := ErrFor(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		log.Errorf(`%s %s: %v`, r.Method, r.URL.Path, err)
	}
	render.Render(w, r, resp.forClient(cfg.IsDebug()))
}

func renderPageError(w http.ResponseWriter, r *http.Request, cfg *config.Config, title string, err error) {
	resp := ErrFor(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		log.Errorf(`%s %s: %v`, r.Method, r.URL.Path, err)
	}
	resp.forClient(cfg.IsDebug())
	render.Status(r, resp.HTTPStatusCode)
	render.HTML(w, r, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>`+html.EscapeString(title)+`</title></head><body>`+
		`<h1>`+strconv.Itoa(resp.HTTPStatusCode)+` `+html.EscapeString(resp.StatusText)+`</h1>`+
		`<p class="error">`+html.EscapeString(resp.ErrorText)+`</p></body></html>`)
}
