package service

import "github.com/Harshitk-cp/edgeworth/internal/domain"

var seriesColors = []string{"blue", "red", "green", "orange", "purple"}

func newEdgeworthBox(title string) domain.Figure {
	return domain.Figure{
		Title:   title,
		XLabelA: "x1A",
		YLabelA: "x2A",
		XLabelB: "x1B",
		YLabelB: "x2B",
		XRange:  [2]float64{-0.1, 1.1},
		YRange:  [2]float64{-0.1, 1.1},
		Lines:   boxEdges(),
	}
}

func boxEdges() []domain.Line {
	corner := func(x1, x2 float64) domain.Allocation { return domain.Allocation{X1: x1, X2: x2} }
	return []domain.Line{
		{Style: domain.LineSolid, From: corner(0, 0), To: corner(1, 0)},
		{Style: domain.LineSolid, From: corner(0, 1), To: corner(1, 1)},
		{Style: domain.LineSolid, From: corner(0, 0), To: corner(0, 1)},
		{Style: domain.LineSolid, From: corner(1, 0), To: corner(1, 1)},
	}
}

// EdgeworthFigure plots the endowment, a set of allocations improving on it,
// and the allocation reached at the utility-maximizing price.
func (m *Model) EdgeworthFigure(set []domain.Allocation, maxPoint domain.Allocation) domain.Figure {
	if set == nil {
		set = []domain.Allocation{}
	}
	fig := newEdgeworthBox("Pareto improvements over the endowment")
	fig.Series = []domain.Series{
		{Label: "Endowment", Marker: domain.MarkerSquare, Color: "black", Points: []domain.Allocation{m.par.EndowmentA()}},
		{Label: "Set C", Marker: domain.MarkerCircle, Color: "blue", Points: set},
		{Label: "Max U Point", Marker: domain.MarkerCircle, Color: "green", Points: []domain.Allocation{maxPoint}},
	}
	return fig
}

// ComparisonFigure plots labelled allocations for agent A against the
// Pareto-efficient diagonal.
func ComparisonFigure(points []domain.LabeledPoint) domain.Figure {
	fig := newEdgeworthBox("Allocation comparison")
	for i, p := range points {
		fig.Series = append(fig.Series, domain.Series{
			Label:  p.Label,
			Marker: domain.MarkerCircle,
			Color:  seriesColors[i%len(seriesColors)],
			Points: []domain.Allocation{p.Point},
		})
	}
	fig.Lines = append([]domain.Line{{
		Label: "Pareto efficient path",
		Style: domain.LineDashed,
		From:  domain.Allocation{X1: 0, X2: 0},
		To:    domain.Allocation{X1: 1, X2: 1},
	}}, fig.Lines...)
	return fig
}
