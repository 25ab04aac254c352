package docvalue

import "time"

// Typed shapes the per-kind maps are decoded into. Vectors stay slices so
// an absent field can be told apart from a zero one.

type lineShape struct {
	Layer string    `mapstructure:"layer"`
	Start []float64 `mapstructure:"start"`
	End   []float64 `mapstructure:"end"`
}

type insertShape struct {
	Layer          string    `mapstructure:"layer"`
	Block          string    `mapstructure:"block"`
	InsertionPoint []float64 `mapstructure:"insertion_point"`
	Scale          []float64 `mapstructure:"scale"`
	Rotation       *float64  `mapstructure:"rotation"`
}

type circleShape struct {
	Layer  string    `mapstructure:"layer"`
	Center []float64 `mapstructure:"center"`
	Radius *float64  `mapstructure:"radius"`
}

type arcShape struct {
	Layer      string    `mapstructure:"layer"`
	Center     []float64 `mapstructure:"center"`
	Radius     *float64  `mapstructure:"radius"`
	StartAngle *float64  `mapstructure:"start_angle"`
	EndAngle   *float64  `mapstructure:"end_angle"`
}

type vertexShape struct {
	X     float64  `mapstructure:"x"`
	Y     float64  `mapstructure:"y"`
	Z     *float64 `mapstructure:"z"`
	Bulge *float64 `mapstructure:"bulge"`
}

type polylineShape struct {
	Layer    string        `mapstructure:"layer"`
	Vertices []vertexShape `mapstructure:"vertices"`
	Closed   bool          `mapstructure:"closed"`
}

type textShape struct {
	Layer          string    `mapstructure:"layer"`
	InsertionPoint []float64 `mapstructure:"insertion_point"`
	Height         *float64  `mapstructure:"height"`
	Text           string    `mapstructure:"text"`
	Rotation       float64   `mapstructure:"rotation"`
	Style          string    `mapstructure:"style"`
	Width          float64   `mapstructure:"width"`
}

type dimensionShape struct {
	Layer           string    `mapstructure:"layer"`
	Block           string    `mapstructure:"block"`
	DefinitionPoint []float64 `mapstructure:"definition_point"`
	TextMidpoint    []float64 `mapstructure:"text_midpoint"`
	DimType         int       `mapstructure:"dim_type"`
	Text            string    `mapstructure:"text"`
}

type ellipseShape struct {
	Layer      string    `mapstructure:"layer"`
	Center     []float64 `mapstructure:"center"`
	MajorAxis  []float64 `mapstructure:"major_axis"`
	Ratio      *float64  `mapstructure:"ratio"`
	StartParam float64   `mapstructure:"start_param"`
	EndParam   *float64  `mapstructure:"end_param"`
}

type splineShape struct {
	Layer         string      `mapstructure:"layer"`
	Degree        *int        `mapstructure:"degree"`
	Flags         int         `mapstructure:"flags"`
	Knots         []float64   `mapstructure:"knots"`
	ControlPoints [][]float64 `mapstructure:"control_points"`
	FitPoints     [][]float64 `mapstructure:"fit_points"`
}

type unknownShape struct {
	Name  string `mapstructure:"name"`
	Layer string `mapstructure:"layer"`
	Pairs []any  `mapstructure:"pairs"`
}

type metadataShape struct {
	Version      int       `mapstructure:"version"`
	LastModified time.Time `mapstructure:"last_modified"`
	Filename     string    `mapstructure:"filename"`
}
