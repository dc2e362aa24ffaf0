package board

import (
	"fmt"
	"image/color"
)

type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillPolygon
	OpStrokePolygon
	OpLine
	OpFillCircle
	OpFillText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpFillPolygon:
		return "fill-polygon"
	case OpStrokePolygon:
		return "stroke-polygon"
	case OpLine:
		return "line"
	case OpFillCircle:
		return "fill-circle"
	case OpFillText:
		return "fill-text"
	default:
		return "unknown"
	}
}

// Op is a single recorded drawing primitive.
type Op struct {
	Kind   OpKind
	Points []Point
	Rect   Rect
	Radius float64
	Width  float64
	Size   float64
	Text   string
	Color  color.RGBA
}

func (o Op) String() string {
	c := fmt.Sprintf("#%02x%02x%02x", o.Color.R, o.Color.G, o.Color.B)
	switch o.Kind {
	case OpFillRect, OpStrokeRect:
		return fmt.Sprintf("%s %g,%g %gx%g %s", o.Kind, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, c)
	case OpFillCircle:
		return fmt.Sprintf("%s %g,%g r=%g %s", o.Kind, o.Points[0].X, o.Points[0].Y, o.Radius, c)
	case OpFillText:
		return fmt.Sprintf("%s %q %g,%g %s", o.Kind, o.Text, o.Points[0].X, o.Points[0].Y, c)
	default:
		return fmt.Sprintf("%s %v %s", o.Kind, o.Points, c)
	}
}

// Recorder is a Surface that records every primitive it receives and passes
// it on to Next, when set.
type Recorder struct {
	Ops  []Op
	Next Surface
}

func NewRecorder(next Surface) *Recorder {
	return &Recorder{Next: next}
}

func rgba(c color.Color) color.RGBA {
	if v, ok := c.(color.RGBA); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: rgba(c)})
	if r.Next != nil {
		r.Next.FillRect(rect, c)
	}
}

func (r *Recorder) StrokeRect(rect Rect, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Width: width, Color: rgba(c)})
	if r.Next != nil {
		r.Next.StrokeRect(rect, c, width)
	}
}

func (r *Recorder) FillPolygon(points []Point, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: append([]Point(nil), points...), Color: rgba(c)})
	if r.Next != nil {
		r.Next.FillPolygon(points, c)
	}
}

func (r *Recorder) StrokePolygon(points []Point, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolygon, Points: append([]Point(nil), points...), Width: width, Color: rgba(c)})
	if r.Next != nil {
		r.Next.StrokePolygon(points, c, width)
	}
}

func (r *Recorder) Line(from Point, to Point, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []Point{from, to}, Width: width, Color: rgba(c)})
	if r.Next != nil {
		r.Next.Line(from, to, c, width)
	}
}

func (r *Recorder) FillCircle(center Point, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []Point{center}, Radius: radius, Color: rgba(c)})
	if r.Next != nil {
		r.Next.FillCircle(center, radius, c)
	}
}

// MeasureText defers to Next. Without one it estimates a fixed advance per
// character.
func (r *Recorder) MeasureText(s string, size float64) float64 {
	if r.Next != nil {
		return r.Next.MeasureText(s, size)
	}
	return float64(len(s)) * size * 0.6
}

func (r *Recorder) FillText(s string, at Point, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Points: []Point{at}, Size: size, Text: s, Color: rgba(c)})
	if r.Next != nil {
		r.Next.FillText(s, at, size, c)
	}
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Circles returns the recorded circles filled with c and a radius of radius.
func (r *Recorder) Circles(c color.RGBA, radius float64) []Op {
	var ops []Op
	for _, op := range r.Filter(OpFillCircle) {
		if op.Color == c && op.Radius == radius {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns the content of every recorded text primitive in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Filter(OpFillText) {
		texts = append(texts, op.Text)
	}
	return texts
}
