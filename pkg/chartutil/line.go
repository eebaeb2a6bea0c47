package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func NewLine(w io.Writer, options []charts.GlobalOpts, headTitles []string, addSeries func(*charts.Line)) *charts.Line {
	line := charts.NewLine()
	options = append([]charts.GlobalOpts{Initialization()}, options...)
	line.SetGlobalOptions(options...)

	line.SetXAxis(headTitles)

	if addSeries != nil {
		addSeries(line)
	}

	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: `royalblue`, Width: 3}),
	)
	if w != nil {
		line.Render(w)
	}
	return line
}

func LineValues(values []float64) []opts.LineData {
	datas := make([]opts.LineData, len(values))
	for index, value := range values {
		datas[index] = opts.LineData{Value: value, SymbolSize: 8}
	}
	return datas
}
