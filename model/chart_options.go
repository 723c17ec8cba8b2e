package model

// ChartOptions is the subset of the ApexCharts options object the price
// history card uses. Booleans are never omitted: ApexCharts treats a missing
// `show` as true.
type ChartOptions struct {
	Colors     []string           `json:"colors"`
	Chart      ChartConfig        `json:"chart"`
	Legend     LegendConfig       `json:"legend"`
	Stroke     StrokeConfig       `json:"stroke"`
	DataLabels Toggle             `json:"dataLabels"`
	Markers    MarkersConfig      `json:"markers"`
	Labels     LabelsConfig       `json:"labels"`
	XAxis      XAxisConfig        `json:"xaxis"`
	Tooltip    TooltipConfig      `json:"tooltip"`
	Fill       FillConfig         `json:"fill"`
	Grid       GridConfig         `json:"grid"`
	Responsive []ResponsiveOption `json:"responsive"`
}

type Toggle struct {
	Enabled bool `json:"enabled"`
}

type Visibility struct {
	Show bool `json:"show"`
}

type ChartConfig struct {
	FontFamily string     `json:"fontFamily"`
	Height     int        `json:"height"`
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Toolbar    Visibility `json:"toolbar"`
}

type LegendConfig struct {
	Show            bool   `json:"show"`
	Position        string `json:"position"`
	HorizontalAlign string `json:"horizontalAlign"`
}

type StrokeConfig struct {
	Curve string `json:"curve"`
	Width []int  `json:"width"`
}

type MarkersConfig struct {
	Size int `json:"size"`
}

type LabelsConfig struct {
	Show     bool   `json:"show"`
	Position string `json:"position"`
}

type XAxisConfig struct {
	Type       string     `json:"type"`
	TickAmount int        `json:"tickAmount"`
	AxisBorder Visibility `json:"axisBorder"`
	AxisTicks  Visibility `json:"axisTicks"`
}

type TooltipConfig struct {
	X TooltipX `json:"x"`
}

type TooltipX struct {
	Format string `json:"format"`
}

type FillConfig struct {
	Gradient GradientConfig `json:"gradient"`
}

type GradientConfig struct {
	Enabled     bool    `json:"enabled"`
	OpacityFrom float64 `json:"opacityFrom"`
	OpacityTo   float64 `json:"opacityTo"`
}

type GridConfig struct {
	StrokeDashArray int       `json:"strokeDashArray"`
	XAxis           GridLines `json:"xaxis"`
	YAxis           GridLines `json:"yaxis"`
}

type GridLines struct {
	Lines Visibility `json:"lines"`
}

type ResponsiveOption struct {
	Breakpoint int               `json:"breakpoint"`
	Options    ResponsiveOptions `json:"options"`
}

type ResponsiveOptions struct {
	Chart ResponsiveChart `json:"chart"`
}

type ResponsiveChart struct {
	Height int `json:"height"`
}
