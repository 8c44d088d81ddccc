package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/vfg2006/metas-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrEmptyChart = errors.New("gráfico sem dados para desenhar")

// Renderer transforma a especificação de um gráfico em imagem
type Renderer interface {
	Render(w io.Writer, chart domain.Chart) error
}

type PNGRenderer struct {
	width  vg.Length
	height vg.Length
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{
		width:  10 * vg.Inch,
		height: 5 * vg.Inch,
	}
}

// WithSize altera as dimensões da imagem, em polegadas
func (r *PNGRenderer) WithSize(width, height float64) *PNGRenderer {
	r.width = vg.Length(width) * vg.Inch
	r.height = vg.Length(height) * vg.Inch
	return r
}

// Render desenha barras, linhas e áreas. Pizzas viram barras de participação
// e o mapa de calor vira uma linha de barras coloridas pela intensidade.
func (r *PNGRenderer) Render(w io.Writer, chart domain.Chart) error {
	if chart.Empty() || len(chart.Categories) == 0 {
		return ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = chart.XAxis
	p.Y.Label.Text = chart.YAxis
	p.NominalX(chart.Categories...)
	p.Add(plotter.NewGrid())

	bars := countBars(chart.Series)
	barWidth := r.barWidth(len(chart.Categories), bars)
	barIndex := 0

	for _, series := range chart.Series {
		switch series.Kind {
		case domain.ChartArea:
			if err := addLine(p, series, chart.Type == domain.ChartArea); err != nil {
				return err
			}
		default:
			offset := barOffset(barIndex, bars, barWidth)
			if err := addBars(p, series, barWidth, offset); err != nil {
				return err
			}
			barIndex++
		}

		if chart.ShowLabels && len(series.Labels) > 0 {
			if err := addLabels(p, series); err != nil {
				return err
			}
		}
	}

	if chart.Percent {
		ref := plotter.NewFunction(func(float64) float64 { return 100 })
		ref.Color = parseHex(domain.Colors["success"])
		ref.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(ref)
		p.Legend.Add("Meta (100%)", ref)
	}

	p.Legend.Top = true

	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return fmt.Errorf("erro ao preparar imagem: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao escrever imagem: %w", err)
	}

	return nil
}

func (r *PNGRenderer) barWidth(categories, bars int) vg.Length {
	if bars == 0 {
		bars = 1
	}
	width := r.width * 0.6 / vg.Length(categories*bars)
	return min(width, vg.Points(40))
}

// addBars cria uma barra por ponto para permitir uma cor por barra
func addBars(p *plot.Plot, series domain.ChartSeries, width, offset vg.Length) error {
	var legend *plotter.BarChart

	for i, v := range series.Values {
		if v == nil {
			continue
		}

		bar, err := plotter.NewBarChart(plotter.Values{*v}, width)
		if err != nil {
			return fmt.Errorf("erro ao criar barra %q: %w", series.Name, err)
		}
		bar.XMin = float64(i)
		bar.Offset = offset
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = parseHex(pointColor(series, i))

		p.Add(bar)
		if legend == nil {
			legend = bar
		}
	}

	if legend != nil {
		p.Legend.Add(series.Name, legend)
	}
	return nil
}

// addLine liga os pontos presentes; pontos sem valor são pulados
func addLine(p *plot.Plot, series domain.ChartSeries, fill bool) error {
	points := make(plotter.XYs, 0, len(series.Values))
	for i, v := range series.Values {
		if v == nil {
			continue
		}
		points = append(points, plotter.XY{X: float64(i), Y: *v})
	}
	if len(points) == 0 {
		return nil
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("erro ao criar linha %q: %w", series.Name, err)
	}

	c := parseHex(series.Color)
	line.Color = c
	line.Width = vg.Points(2)
	if fill {
		line.FillColor = withAlpha(c, 0x33)
	}

	p.Add(line)
	p.Legend.Add(series.Name, line)
	return nil
}

func addLabels(p *plot.Plot, series domain.ChartSeries) error {
	labels := plotter.XYLabels{}
	for i, v := range series.Values {
		if v == nil || i >= len(series.Labels) {
			continue
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: *v})
		labels.Labels = append(labels.Labels, series.Labels[i])
	}
	if len(labels.XYs) == 0 {
		return nil
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("erro ao criar rótulos %q: %w", series.Name, err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(8)
	}
	l.Offset = vg.Point{Y: vg.Points(4)}

	p.Add(l)
	return nil
}

func countBars(series []domain.ChartSeries) int {
	n := 0
	for _, s := range series {
		if s.Kind != domain.ChartArea {
			n++
		}
	}
	return n
}

// barOffset centraliza grupos de barras lado a lado sobre cada categoria
func barOffset(index, total int, width vg.Length) vg.Length {
	if total <= 1 {
		return 0
	}
	return vg.Length(float64(index)-float64(total-1)/2) * width
}

func pointColor(series domain.ChartSeries, i int) string {
	if i < len(series.Colors) && series.Colors[i] != "" {
		return series.Colors[i]
	}
	if series.Color != "" {
		return series.Color
	}
	return domain.Colors["primary"]
}

// parseHex converte "#rrggbb" em cor. Valores inválidos caem no cinza neutro.
func parseHex(hex string) color.RGBA {
	fallback := color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}

	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return fallback
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
