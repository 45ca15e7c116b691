package render

// OpKind identifies a recorded surface command.
type OpKind int

const (
	OpStrokeColor OpKind = iota
	OpLineWidth
	OpDash
	OpRectangle
	OpLine
)

// Op is one recorded command. Args holds the numeric arguments in call order;
// Color is set for OpStrokeColor and Dash for OpDash.
type Op struct {
	Kind  OpKind
	Args  []float64
	Color RGB
	Dash  []float64
}

// Recorder is a Surface that keeps every command in memory.
type Recorder struct {
	Ops []Op
}

// SetStrokeColor implements Surface.
func (r *Recorder) SetStrokeColor(c RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeColor, Color: c})
}

// SetLineWidth implements Surface.
func (r *Recorder) SetLineWidth(w float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineWidth, Args: []float64{w}})
}

// SetDash implements Surface.
func (r *Recorder) SetDash(pattern []float64) {
	r.Ops = append(r.Ops, Op{Kind: OpDash, Dash: append([]float64(nil), pattern...)})
}

// Rectangle implements Surface.
func (r *Recorder) Rectangle(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRectangle, Args: []float64{x, y, w, h}})
}

// Line implements Surface.
func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Args: []float64{x1, y1, x2, y2}})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

var _ Surface = (*Recorder)(nil)
