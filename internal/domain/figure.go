package domain

// Figure is renderer-agnostic plot data for an Edgeworth box. Agent A's axes
// run from the lower-left corner; agent B's axes are inverted from the
// upper-right corner.
type Figure struct {
	Title   string     `json:"title,omitempty"`
	XLabelA string     `json:"x_label_a"`
	YLabelA string     `json:"y_label_a"`
	XLabelB string     `json:"x_label_b"`
	YLabelB string     `json:"y_label_b"`
	XRange  [2]float64 `json:"x_range"`
	YRange  [2]float64 `json:"y_range"`
	Series  []Series   `json:"series"`
	Lines   []Line     `json:"lines"`
}

type MarkerShape string

const (
	MarkerCircle MarkerShape = "circle"
	MarkerSquare MarkerShape = "square"
)

type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
)

// Series is a labelled group of scatter points.
type Series struct {
	Label  string       `json:"label"`
	Marker MarkerShape  `json:"marker"`
	Color  string       `json:"color"`
	Points []Allocation `json:"points"`
}

type Line struct {
	Label string     `json:"label,omitempty"`
	Style LineStyle  `json:"style"`
	From  Allocation `json:"from"`
	To    Allocation `json:"to"`
}

// LabeledPoint is an allocation for agent A annotated for display.
type LabeledPoint struct {
	Label string     `json:"label"`
	Point Allocation `json:"point"`
}
