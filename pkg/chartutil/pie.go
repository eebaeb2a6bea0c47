package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewPie builds a donut chart of values keyed by labels.
func NewPie(w io.Writer, options []charts.GlobalOpts, name string, labels []string, values []float64) *charts.Pie {
	pie := charts.NewPie()
	options = append([]charts.GlobalOpts{Initialization()}, options...)
	pie.SetGlobalOptions(options...)

	size := min(len(labels), len(values))
	datas := make([]opts.PieData, size)
	for index := 0; index < size; index++ {
		datas[index] = opts.PieData{Name: labels[index], Value: values[index]}
	}
	pie.AddSeries(name, datas,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{`40%`, `75%`}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: `{b}: {d}%`}),
	)
	if w != nil {
		pie.Render(w)
	}
	return pie
}
