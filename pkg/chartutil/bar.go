package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/admpub/product-analyzer/pkg/chart"
)

func NewBar(w io.Writer, options []charts.GlobalOpts, headTitles []string, addSeries func(*charts.Bar)) *charts.Bar {
	bar := charts.NewBar()
	options = append([]charts.GlobalOpts{Initialization()}, options...)
	bar.SetGlobalOptions(options...)

	bar.SetXAxis(headTitles)

	if addSeries != nil {
		addSeries(bar)
	}

	if w != nil {
		bar.Render(w)
	}
	return bar
}

func NewBarDatas() *BarDatasMap {
	return &BarDatasMap{
		m: map[string][]opts.BarData{},
	}
}

// BarDatasMap collects bar series by name, keeping the order in which names
// were first seen.
type BarDatasMap struct {
	m map[string][]opts.BarData
	r []string
}

func (b *BarDatasMap) SetDatasMap(index int, key string, value interface{}, size int, options ...func(*opts.BarData)) {
	datas, ok := b.m[key]
	if !ok {
		datas = make([]opts.BarData, size)
		b.m[key] = datas
		b.r = append(b.r, key)
	}
	datas[index] = opts.BarData{
		Name:  key,
		Value: value,
	}
	for _, o := range options {
		o(&datas[index])
	}
}

func (b *BarDatasMap) SetValues(key string, labels []string, values []float64, options ...func(*opts.BarData)) {
	for index, value := range values {
		b.SetDatasMap(index, key, value, len(values), append([]func(*opts.BarData){func(bd *opts.BarData) {
			if index < len(labels) {
				bd.Name = labels[index]
			}
		}}, options...)...)
	}
}

func (b BarDatasMap) Keys() []string {
	return b.r
}

func (b BarDatasMap) AddSeries(bar *charts.Bar) {
	for _, key := range b.r {
		val := b.m[key]
		if len(val) > 0 && val[0].ItemStyle != nil {
			bar.AddSeries(key, val, charts.WithItemStyleOpts(*val[0].ItemStyle))
		} else {
			bar.AddSeries(key, val)
		}
	}
}

func ItemColor(color string) func(*opts.BarData) {
	return func(bd *opts.BarData) {
		bd.ItemStyle = &opts.ItemStyle{Color: color}
	}
}

// BarFromConfig converts a binder configuration into an ECharts bar chart
// drawn into the element elementID.
func BarFromConfig(elementID string, cfg chart.Config, options ...charts.GlobalOpts) *charts.Bar {
	options = append(options, UpdateInitialization(ChartID(elementID)), AxisTooltip())
	return NewBar(nil, options, cfg.Data.Labels, func(b *charts.Bar) {
		datas := NewBarDatas()
		for _, ds := range cfg.Data.Datasets {
			if len(ds.Data) == 0 {
				b.AddSeries(ds.Label, []opts.BarData{})
				continue
			}
			datas.SetValues(ds.Label, cfg.Data.Labels, ds.Data)
		}
		datas.AddSeries(b)
		b.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: `top`}))
	})
}

// Renderer draws binder configurations with ECharts.
type Renderer struct {
	w       io.Writer
	options []charts.GlobalOpts
}

func NewRenderer(w io.Writer, options ...charts.GlobalOpts) *Renderer {
	return &Renderer{w: w, options: options}
}

func (r *Renderer) Render(elementID string, cfg chart.Config) error {
	return BarFromConfig(elementID, cfg, r.options...).Render(r.w)
}
