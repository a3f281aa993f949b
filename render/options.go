package render

// Options controls SVG output. All fields have the defaults spec.md §6
// names; DefaultOptions returns them so callers can override a subset.
type Options struct {
	Scale           float64
	StrokeColor     string
	FillColor       string
	BackgroundColor string
	Padding         float64
}

// DefaultOptions returns the spec.md §6 defaults: scale=1, strokeColor and
// fillColor="#000", backgroundColor="none" (no background rect emitted),
// padding=0.1 user units.
func DefaultOptions() Options {
	return Options{
		Scale:           1,
		StrokeColor:     "#000",
		FillColor:       "#000",
		BackgroundColor: "none",
		Padding:         0.1,
	}
}
