package chartutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/product-analyzer/pkg/chart"
)

func TestBarFromConfig(t *testing.T) {
	cfg, err := chart.Build(chart.Input{
		Labels: []string{`A`, `B`, `C`},
		Values: []float64{10, 20, 5},
	})
	require.NoError(t, err)
	bar := BarFromConfig(chart.ElementID, cfg)
	assert.Equal(t, `chart`, bar.ChartID)
	require.Len(t, bar.MultiSeries, 1)
	assert.Equal(t, chart.DatasetLabel, bar.MultiSeries[0].Name)
	datas, ok := bar.MultiSeries[0].Data.([]opts.BarData)
	require.True(t, ok)
	require.Len(t, datas, 3)
	for index, label := range cfg.Data.Labels {
		assert.Equal(t, label, datas[index].Name)
		assert.Equal(t, cfg.Data.Datasets[0].Data[index], datas[index].Value)
	}
}

func TestBarFromConfigTheme(t *testing.T) {
	cfg, err := chart.Build(chart.Input{Labels: []string{`A`}, Values: []float64{1}})
	require.NoError(t, err)
	bar := BarFromConfig(chart.ElementID, cfg, UpdateInitialization(WithTheme(types.ThemeChalk)))
	assert.Equal(t, `chart`, bar.Initialization.ChartID)
	assert.Equal(t, types.ThemeChalk, bar.Initialization.Theme)

	bar = BarFromConfig(chart.ElementID, cfg, UpdateInitialization(WithTheme(``)))
	assert.Equal(t, Theme, bar.Initialization.Theme)
}

func TestUpdateInitializationKeepsFields(t *testing.T) {
	hm := NewHeatMapCalendar(nil, []charts.GlobalOpts{UpdateInitialization(WithTheme(types.ThemeChalk))}, `n`,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, `255px`, hm.Initialization.Height)
	assert.Equal(t, types.ThemeChalk, hm.Initialization.Theme)
}

func TestRenderer(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := chart.Bind(chart.Input{
		Labels: []string{`A`, `B`},
		Values: []float64{1, 2},
	}, NewRenderer(buf, Title(`Products`, ``)))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `id="chart"`)
	assert.Contains(t, out, chart.DatasetLabel)
	assert.Contains(t, out, `Products`)
}

func TestBarDatasMapKeepsOrder(t *testing.T) {
	datas := NewBarDatas()
	datas.SetValues(`quantity`, []string{`a`, `b`}, []float64{1, 2})
	datas.SetValues(`price`, []string{`a`, `b`}, []float64{3, 4}, ItemColor(`lightgreen`))
	assert.Equal(t, []string{`quantity`, `price`}, datas.Keys())
	bar := NewBar(nil, nil, []string{`a`, `b`}, datas.AddSeries)
	require.Len(t, bar.MultiSeries, 2)
	assert.Equal(t, `quantity`, bar.MultiSeries[0].Name)
	assert.Equal(t, `price`, bar.MultiSeries[1].Name)
}

func TestGenHeatMapCalendarData(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)
	items, maxValue := genHeatMapCalendarData(start, end, map[string]int64{
		`2025-01-02`: 4,
		`2025-01-03`: 1,
	})
	assert.Equal(t, int64(4), maxValue)
	require.Len(t, items, 3)
	assert.Equal(t, [2]interface{}{`2025-01-01`, `-`}, items[0].Value)
	assert.Equal(t, [2]interface{}{`2025-01-02`, int64(4)}, items[1].Value)
}

func TestNewPie(t *testing.T) {
	pie := NewPie(nil, nil, `revenue`, []string{`a`, `b`, `c`}, []float64{1, 2})
	require.Len(t, pie.MultiSeries, 1)
	datas, ok := pie.MultiSeries[0].Data.([]opts.PieData)
	require.True(t, ok)
	assert.Len(t, datas, 2)
}
