package server

import (
	"github.com/go-echarts/go-echarts/v2/charts"

	"github.com/admpub/product-analyzer/pkg/analyze"
	"github.com/admpub/product-analyzer/pkg/chart"
	"github.com/admpub/product-analyzer/pkg/chartutil"
	"github.com/admpub/product-analyzer/pkg/product"
)

func themed(theme string) charts.GlobalOpts {
	return chartutil.UpdateInitialization(chartutil.WithTheme(theme))
}

// quantityBar is the binder chart of the dashboard, drawn into the "chart"
// element.
func quantityBar(theme string, products []product.Product) (*charts.Bar, error) {
	var bar *charts.Bar
	err := chart.Bind(analyze.BarInput(products), chart.RendererFunc(func(elementID string, cfg chart.Config) error {
		options := []charts.GlobalOpts{themed(theme), chartutil.Title(`📊 Số lượng sản phẩm trong kho`, `Inventory`)}
		options = append(options, chartutil.AxisNames(`Sản phẩm`, `Số lượng`)...)
		bar = chartutil.BarFromConfig(elementID, cfg, options...)
		return nil
	}))
	return bar, err
}

func seriesBar(theme, title, subtitle, seriesName, color string, labels []string, values []float64) *charts.Bar {
	datas := chartutil.NewBarDatas()
	datas.SetValues(seriesName, labels, values, chartutil.ItemColor(color))
	options := []charts.GlobalOpts{themed(theme), chartutil.Title(title, subtitle), chartutil.AxisTooltip()}
	return chartutil.NewBar(nil, options, labels, datas.AddSeries)
}

func priceBar(theme string, products []product.Product) *charts.Bar {
	labels, _, prices := analyze.ProductData(products)
	return seriesBar(theme, `Giá sản phẩm`, `Prices`, `Giá`, `lightgreen`, labels, prices)
}

func revenueBar(theme string, products []product.Product) *charts.Bar {
	labels, _, _ := analyze.ProductData(products)
	return seriesBar(theme, `Doanh thu theo sản phẩm`, `Revenue`, `Doanh thu`, `coral`, labels, analyze.Revenues(products))
}

// revenuePie expects products already sorted by revenue.
func revenuePie(theme string, products []product.Product) *charts.Pie {
	labels, _, _ := analyze.ProductData(products)
	return chartutil.NewPie(nil, []charts.GlobalOpts{themed(theme), chartutil.Title(`💰 Phân bổ doanh thu theo sản phẩm`, `Revenue share`)}, `Doanh thu`, labels, analyze.Revenues(products))
}

func priceLine(theme string, products []product.Product) *charts.Line {
	labels, _, prices := analyze.ProductData(products)
	options := []charts.GlobalOpts{themed(theme), chartutil.Title(`Biểu đồ đường`, `Prices`), chartutil.AxisTooltip()}
	options = append(options, chartutil.AxisNames(`Sản phẩm`, `Giá`)...)
	return chartutil.NewLine(nil, options, labels, func(l *charts.Line) {
		l.AddSeries(`Giá`, chartutil.LineValues(prices))
	})
}

// createdHeatMap returns nil when no product carries a creation time.
func createdHeatMap(theme string, products []product.Product) *charts.HeatMap {
	counts, first, last := analyze.CreatedByDay(products)
	if len(counts) == 0 {
		return nil
	}
	start := last.AddDate(0, 0, -365)
	if first.After(start) {
		start = first
	}
	return chartutil.NewHeatMapCalendar(nil, []charts.GlobalOpts{themed(theme), chartutil.Title(`Products added`, `Sản phẩm mới`)}, `Sản phẩm mới`, start, last, counts)
}
