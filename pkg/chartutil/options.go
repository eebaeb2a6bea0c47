package chartutil

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// https://github.com/go-echarts/examples

var Theme = types.ThemeWesteros

func Title(title, subtitle string, options ...func(*opts.Title)) charts.GlobalOpts {
	option := opts.Title{
		Title:    title,
		Subtitle: subtitle,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTitleOpts(option)
}

func Initialization(options ...func(*opts.Initialization)) charts.GlobalOpts {
	option := opts.Initialization{Theme: Theme}
	for _, o := range options {
		o(&option)
	}
	return charts.WithInitializationOpts(option)
}

// UpdateInitialization applies options on top of the initialization already
// set on the chart. Initialization replaces it.
func UpdateInitialization(options ...func(*opts.Initialization)) charts.GlobalOpts {
	return func(bc *charts.BaseConfiguration) {
		option := bc.Initialization
		for _, o := range options {
			o(&option)
		}
		charts.WithInitializationOpts(option)(bc)
	}
}

func WithTheme(theme string) func(*opts.Initialization) {
	return func(i *opts.Initialization) {
		if len(theme) > 0 {
			i.Theme = theme
		}
	}
}

func ChartID(id string) func(*opts.Initialization) {
	return func(i *opts.Initialization) {
		i.ChartID = id
	}
}

func AxisNames(xName, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	}
}

func AxisTooltip() charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: `axis`})
}
