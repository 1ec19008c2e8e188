package util

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/analysis"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// PlotResults creates a scatter plot comparing the true Pareto front of the given Problem
// with the final population resulted from the algorithm.
func PlotResults(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string, outputPath ...string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	if len(results[0]) != 2 {
		return fmt.Errorf("can only plot 2D for %s Benchmark", problem.Name())
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "f1(x)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "f2(x)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}))

	var trueX []opts.ScatterData
	for _, p := range problem.TrueParetoFront(500) {
		trueX = append(trueX, opts.ScatterData{
			Value:      []float64(p),
			Symbol:     "circle",
			SymbolSize: 3,
		})
	}

	foundX := make([]opts.ScatterData, 0, len(results))
	for _, res := range results {
		// penalized individuals would stretch the axes to infinity
		if math.IsInf(res[0], 0) || math.IsInf(res[1], 0) {
			continue
		}
		foundX = append(foundX, opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 8,
		})
	}

	if len(trueX) > 0 {
		scatter.AddSeries("True Pareto Front", trueX)
	}
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	filename := fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)
	if len(outputPath) > 0 && outputPath[0] != "" {
		filename = outputPath[0]
	}
	return render(filename, scatter)
}

// PlotConvergence draws the best and mean feasible fitness per generation
// as a line chart.
func PlotConvergence(history []analysis.GenerationStats, title, outputPath string) error {
	if len(history) == 0 {
		return fmt.Errorf("no generations to plot for %s", title)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "generation"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "fitness",
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}))

	generations := make([]int, len(history))
	best := make([]opts.LineData, len(history))
	mean := make([]opts.LineData, len(history))
	for i, h := range history {
		generations[i] = h.Generation
		best[i] = lineValue(h.BestFitness)
		mean[i] = lineValue(h.MeanFitness)
	}

	line.SetXAxis(generations).
		AddSeries("best", best).
		AddSeries("mean", mean).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	return render(outputPath, line)
}

// lineValue leaves a gap for generations without a feasible individual.
func lineValue(v float64) opts.LineData {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return opts.LineData{Value: "-"}
	}
	return opts.LineData{Value: v}
}

type renderer interface {
	Render(w io.Writer) error
}

func render(filename string, chart renderer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return chart.Render(f)
}
