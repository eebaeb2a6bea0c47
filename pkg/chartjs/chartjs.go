package chartjs

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/admpub/product-analyzer/pkg/chart"
)

const DefaultScriptURL = `https://cdn.jsdelivr.net/npm/chart.js`

var fragment = template.Must(template.New(`chartjs`).Funcs(template.FuncMap{
	`safeJS`: func(b []byte) template.JS {
		return template.JS(b)
	},
}).Parse(`<canvas id="{{.ElementID}}"></canvas>
<script src="{{.ScriptURL}}"></script>
<script>
window.chartData = {{safeJS .ChartData}};
new Chart(document.getElementById({{.ElementID}}), {{safeJS .Config}});
</script>
`))

// Renderer writes a Chart.js fragment for each rendered config.
type Renderer struct {
	w         io.Writer
	scriptURL string
}

func New(w io.Writer, scriptURL string) *Renderer {
	if len(scriptURL) == 0 {
		scriptURL = DefaultScriptURL
	}
	return &Renderer{w: w, scriptURL: scriptURL}
}

func (r *Renderer) Render(elementID string, cfg chart.Config) error {
	var values []float64
	if len(cfg.Data.Datasets) > 0 {
		values = cfg.Data.Datasets[0].Data
	}
	chartData, err := json.Marshal(chart.Input{Labels: cfg.Data.Labels, Values: values})
	if err != nil {
		return err
	}
	config, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return fragment.Execute(r.w, map[string]any{
		`ElementID`: elementID,
		`ScriptURL`: r.scriptURL,
		`ChartData`: chartData,
		`Config`:    config,
	})
}
