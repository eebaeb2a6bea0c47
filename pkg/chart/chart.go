package chart

import (
	"errors"
	"fmt"
)

const (
	// TypeBar is the only chart kind the binder produces.
	TypeBar = `bar`

	// DatasetLabel names the single dataset ("product quantity").
	DatasetLabel = `Số lượng sản phẩm`

	// ElementID identifies the output element every render targets.
	ElementID = `chart`
)

var ErrLengthMismatch = errors.New(`labels and values differ in length`)

// Input holds the two parallel sequences a chart is built from.
// Values[i] belongs to Labels[i].
type Input struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Config is the configuration handed to the rendering library:
// { type: "bar", data: { labels: [...], datasets: [ { label, data } ] } }
type Config struct {
	Type string `json:"type"`
	Data Data   `json:"data"`
}

// Renderer is the external rendering library. Once Render is called the
// library owns the configuration.
type Renderer interface {
	Render(elementID string, cfg Config) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(elementID string, cfg Config) error

func (f RendererFunc) Render(elementID string, cfg Config) error {
	return f(elementID, cfg)
}

// Build constructs the bar chart configuration for in. Order is preserved
// exactly; nil sequences become empty ones.
func Build(in Input) (Config, error) {
	if len(in.Labels) != len(in.Values) {
		return Config{}, fmt.Errorf(`%w: %d labels, %d values`, ErrLengthMismatch, len(in.Labels), len(in.Values))
	}
	labels := make([]string, len(in.Labels))
	copy(labels, in.Labels)
	values := make([]float64, len(in.Values))
	copy(values, in.Values)
	return Config{
		Type: TypeBar,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{
				{Label: DatasetLabel, Data: values},
			},
		},
	}, nil
}

// Bind builds the configuration for in and renders it once into ElementID.
// Renderer errors are returned as is.
func Bind(in Input, r Renderer) error {
	cfg, err := Build(in)
	if err != nil {
		return err
	}
	return r.Render(ElementID, cfg)
}
