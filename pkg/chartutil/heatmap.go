package chartutil

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var InRangeColor = []string{"#68a0f3ff", "#5f8ed5ff", "#537bb8ff", "#466798ff", "#31496dff", "#172740ff"}

// NewHeatMapCalendar draws one calendar cell per day between start and end.
// counts is keyed by time.DateOnly.
func NewHeatMapCalendar(w io.Writer, options []charts.GlobalOpts, label string, start time.Time, end time.Time, counts map[string]int64) *charts.HeatMap {
	hm := charts.NewHeatMap()
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -366)
	}
	data, maxValue := genHeatMapCalendarData(start, end, counts)
	visualMapOpt := opts.VisualMap{
		Top: `65`, Left: `0`,
		Min: 0,
		Max: float32(max(maxValue, 1)),
		InRange: &opts.VisualMapInRange{
			Color: InRangeColor,
		},
	}
	options = append([]charts.GlobalOpts{Initialization(func(i *opts.Initialization) {
		i.Height = `255px`
	})}, options...)
	options = append(options, charts.WithVisualMapOpts(visualMapOpt))
	hm.SetGlobalOptions(options...)

	calendarOpts := &opts.Calendar{
		Top:      "80",
		Left:     "100",
		Right:    "30",
		CellSize: "20",
		ItemStyle: &opts.ItemStyle{
			BorderWidth: 0.5,
		},
		Orient: "horizontal",
	}
	calendarOpts.Range = append(calendarOpts.Range, start.Format(time.DateOnly), end.Format(time.DateOnly))

	hm.AddCalendar(calendarOpts).AddSeries(label, data, charts.WithCoordinateSystem("calendar"))

	if w != nil {
		hm.Render(w)
	}
	return hm
}

func genHeatMapCalendarData(start time.Time, end time.Time, counts map[string]int64) ([]opts.HeatMapData, int64) {
	var items []opts.HeatMapData
	start = DayStart(start)
	end = DayEnd(end)
	var maxValue int64
	for dt := start; dt.Before(end); dt = dt.AddDate(0, 0, 1) {
		day := dt.Format(time.DateOnly)
		value := counts[day]
		if value <= 0 {
			items = append(items, opts.HeatMapData{Value: [2]interface{}{day, "-"}})
		} else {
			items = append(items, opts.HeatMapData{Value: [2]interface{}{day, value}})
		}
		maxValue = max(maxValue, value)
	}
	return items, maxValue
}

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
