package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/admpub/product-analyzer/pkg/analyze"
	"github.com/admpub/product-analyzer/pkg/chart"
	"github.com/admpub/product-analyzer/pkg/chartjs"
	"github.com/admpub/product-analyzer/pkg/chartutil"
	"github.com/admpub/product-analyzer/pkg/config"
	"github.com/admpub/product-analyzer/pkg/product"
	"github.com/admpub/product-analyzer/pkg/storage"
)

func listProducts(cfg *config.Config) ([]product.Product, error) {
	em, err := cfg.Storager()
	if err != nil {
		return nil, err
	}
	return em.List(0)
}

// handleChart serves the single bar chart page. ?renderer=echarts draws it
// with ECharts instead of Chart.js.
func handleChart(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	products, err := listProducts(cfg)
	if err != nil {
		renderPageError(w, r, cfg, chart.DatasetLabel, err)
		return
	}
	buf := bytes.NewBuffer(nil)
	var renderer chart.Renderer
	switch name := r.URL.Query().Get(`renderer`); name {
	case ``, `chartjs`:
		buf.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>` + chart.DatasetLabel + `</title></head><body>` + "\n")
		renderer = chartjs.New(buf, cfg.ChartJSURL)
	case `echarts`:
		renderer = chartutil.NewRenderer(buf, themed(cfg.Theme), chartutil.Title(chart.DatasetLabel, ``))
	default:
		renderPageError(w, r, cfg, chart.DatasetLabel, fmt.Errorf(`%w: renderer %q`, errUnsupportedRenderer, name))
		return
	}
	if err = chart.Bind(analyze.BarInput(products), renderer); err != nil {
		renderPageError(w, r, cfg, chart.DatasetLabel, err)
		return
	}
	if _, ok := renderer.(*chartjs.Renderer); ok {
		buf.WriteString(`</body></html>`)
	}
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	w.Write(buf.Bytes())
}

var errUnsupportedRenderer = errors.New(`unsupported renderer`)

func handleAPIChart(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	products, err := listProducts(cfg)
	if err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	chartConfig, err := chart.Build(analyze.BarInput(products))
	if err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	render.JSON(w, r, chartConfig)
}

func handleAPIStats(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	em, err := cfg.Storager()
	if err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	report, err := analyze.Analyze(em)
	if err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	render.JSON(w, r, report.Stats)
}

// handleAPIProducts lists products. ?q= searches names, ?top=N&by=field
// returns the N largest by quantity, price or revenue.
func handleAPIProducts(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	em, err := cfg.Storager()
	if err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	query := r.URL.Query()
	if q := query.Get(`q`); len(q) > 0 {
		products, err := em.List(0)
		if err != nil {
			renderAPIError(w, r, cfg, err)
			return
		}
		matches := analyze.Search(products, q, analyze.DefaultMinSimilarity)
		if matches == nil {
			matches = []analyze.Match{}
		}
		render.JSON(w, r, matches)
		return
	}
	if top := query.Get(`top`); len(top) > 0 {
		n, err := strconv.Atoi(top)
		if err != nil || n <= 0 {
			render.Render(w, r, ErrBadRequest(fmt.Errorf(`invalid top: %q`, top)))
			return
		}
		by := query.Get(`by`)
		if len(by) == 0 {
			by = `quantity`
		}
		if !storage.ValidSortField(by) {
			render.Render(w, r, ErrBadRequest(fmt.Errorf(`%w: %s`, storage.ErrUnknownField, by)))
			return
		}
		products, err := analyze.Top(em, n, by)
		if err != nil {
			renderAPIError(w, r, cfg, err)
			return
		}
		render.JSON(w, r, products)
		return
	}
	products, err := em.List(0)
	if err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	if products == nil {
		products = []product.Product{}
	}
	render.JSON(w, r, products)
}

func handleAPIReload(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	if err := cfg.Reload(); err != nil {
		renderAPIError(w, r, cfg, err)
		return
	}
	handleAPIStats(w, r, cfg)
}
