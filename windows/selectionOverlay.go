package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"splot/scatter"
)

// SelectionTool chooses the region gesture drawn on the chart.
type SelectionTool int

const (
	ToolBox SelectionTool = iota
	ToolLasso
)

// selectionOverlay sits on top of a rendered chart image and captures
// region gestures. A completed drag maps the drawn box or lasso into
// image pixel space and reports the row indices of the contained
// points. A plain tap reports an empty selection. When idle it shows
// the hover fields of the point nearest the pointer.
type selectionOverlay struct {
	widget.BaseWidget

	tool SelectionTool
	geom scatter.Geometry
	pts  []scatter.Point

	dragging  bool
	dragStart fyne.Position
	dragCur   fyne.Position
	path      []fyne.Position

	mouse    fyne.Position
	hovering bool

	// onSelection receives the selected row indices; empty means the
	// gesture contained no points.
	onSelection func([]int)

	// hoverText renders the hover-field label for a row; empty string
	// hides the label.
	hoverText func(row int) string
}

func newSelectionOverlay(onSelection func([]int), hoverText func(row int) string) *selectionOverlay {
	o := &selectionOverlay{
		onSelection: onSelection,
		hoverText:   hoverText,
	}
	o.ExtendBaseWidget(o)
	return o
}

// SetChart rebinds the overlay to a freshly rendered chart. Any
// gesture in progress is abandoned because its coordinates no longer
// mean anything.
func (o *selectionOverlay) SetChart(geom scatter.Geometry, pts []scatter.Point) {
	o.geom = geom
	o.pts = pts
	o.dragging = false
	o.path = nil
	o.Refresh()
}

func (o *selectionOverlay) SetTool(tool SelectionTool) {
	o.tool = tool
	o.dragging = false
	o.path = nil
	o.Refresh()
}

// containRect maps the chart image into this overlay's current size.
func (o *selectionOverlay) containRect() scatter.ContainRect {
	size := o.Size()
	return scatter.Contain(float32(o.geom.Width), float32(o.geom.Height), size.Width, size.Height)
}

// Dragged accumulates the gesture. The first event recovers the start
// position from the event delta.
func (o *selectionOverlay) Dragged(e *fyne.DragEvent) {
	if !o.dragging {
		o.dragging = true
		o.dragStart = fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
		o.path = o.path[:0]
		o.path = append(o.path, o.dragStart)
	}
	o.dragCur = e.Position
	if o.tool == ToolLasso {
		last := o.path[len(o.path)-1]
		dx := e.Position.X - last.X
		dy := e.Position.Y - last.Y
		// drop sub-pixel jitter so the polygon stays manageable
		if dx*dx+dy*dy >= 9 {
			o.path = append(o.path, e.Position)
		}
	}
	o.Refresh()
}

// DragEnd commits the gesture and reports the contained rows.
func (o *selectionOverlay) DragEnd() {
	if !o.dragging {
		return
	}
	o.dragging = false

	var rows []int
	if len(o.pts) > 0 {
		cr := o.containRect()
		switch o.tool {
		case ToolLasso:
			poly := make([]scatter.Vertex, 0, len(o.path))
			for _, p := range o.path {
				ix, iy := cr.ViewToImage(p.X, p.Y)
				poly = append(poly, scatter.Vertex{X: ix, Y: iy})
			}
			rows = scatter.PointsInLasso(o.geom, o.pts, poly)
		default:
			x0, y0 := cr.ViewToImage(o.dragStart.X, o.dragStart.Y)
			x1, y1 := cr.ViewToImage(o.dragCur.X, o.dragCur.Y)
			rows = scatter.PointsInBox(o.geom, o.pts, x0, y0, x1, y1)
		}
	}

	o.path = nil
	o.Refresh()

	if o.onSelection != nil {
		o.onSelection(rows)
	}
}

// Tapped clears the selection: a click without a drag is the "empty
// region" gesture.
func (o *selectionOverlay) Tapped(*fyne.PointEvent) {
	if o.onSelection != nil {
		o.onSelection(nil)
	}
}

func (o *selectionOverlay) MouseIn(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}

func (o *selectionOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}

func (o *selectionOverlay) MouseOut() {
	o.hovering = false
	o.Refresh()
}

var (
	_ fyne.Draggable    = (*selectionOverlay)(nil)
	_ fyne.Tappable     = (*selectionOverlay)(nil)
	_ desktop.Hoverable = (*selectionOverlay)(nil)
)

func (o *selectionOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background ensures the full area receives events
	bg := canvas.NewRectangle(color.NRGBA{})
	band := canvas.NewRectangle(color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0x30})
	band.StrokeColor = color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xc0}
	band.StrokeWidth = 1

	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.NRGBA{A: 0xaa})

	return &selectionRenderer{
		o:       o,
		bg:      bg,
		band:    band,
		label:   label,
		labelBG: labelBG,
	}
}

type selectionRenderer struct {
	o       *selectionOverlay
	bg      *canvas.Rectangle
	band    *canvas.Rectangle
	lines   []*canvas.Line
	label   *widget.RichText
	labelBG *canvas.Rectangle
}

func (r *selectionRenderer) Destroy() {}

func (r *selectionRenderer) MinSize() fyne.Size { return fyne.NewSize(10, 10) }

func (r *selectionRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg, r.band}
	for _, l := range r.lines {
		objs = append(objs, l)
	}
	objs = append(objs, r.labelBG, r.label)
	return objs
}

func (r *selectionRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	r.layoutBand()
	r.layoutLasso()
	r.layoutHover(size)
}

func (r *selectionRenderer) layoutBand() {
	o := r.o
	if !o.dragging || o.tool != ToolBox {
		r.band.Resize(fyne.NewSize(0, 0))
		r.band.Move(fyne.NewPos(-10, -10))
		return
	}
	x0, x1 := o.dragStart.X, o.dragCur.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := o.dragStart.Y, o.dragCur.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	r.band.Move(fyne.NewPos(x0, y0))
	r.band.Resize(fyne.NewSize(x1-x0, y1-y0))
}

func (r *selectionRenderer) layoutLasso() {
	o := r.o
	want := 0
	if o.dragging && o.tool == ToolLasso && len(o.path) > 1 {
		want = len(o.path) // one extra segment closes the loop
	}

	for len(r.lines) < want {
		l := canvas.NewLine(color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xc0})
		l.StrokeWidth = 1
		r.lines = append(r.lines, l)
	}
	for i, l := range r.lines {
		if i >= want {
			l.Position1 = fyne.NewPos(-10, -10)
			l.Position2 = fyne.NewPos(-10, -10)
			continue
		}
		// the final segment closes the loop back to the start
		l.Position1 = o.path[i]
		l.Position2 = o.path[(i+1)%len(o.path)]
	}
}

func (r *selectionRenderer) layoutHover(size fyne.Size) {
	o := r.o
	hide := func() {
		r.label.Move(fyne.NewPos(-1000, -1000))
		r.labelBG.Resize(fyne.NewSize(0, 0))
		r.labelBG.Move(fyne.NewPos(-1000, -1000))
	}

	if o.dragging || !o.hovering || o.hoverText == nil || len(o.pts) == 0 {
		hide()
		return
	}

	cr := o.containRect()
	if !cr.Inside(o.mouse.X, o.mouse.Y) {
		hide()
		return
	}

	ix, iy := cr.ViewToImage(o.mouse.X, o.mouse.Y)
	p, ok := scatter.NearestPoint(o.geom, o.pts, ix, iy, 14)
	if !ok {
		hide()
		return
	}

	text := o.hoverText(p.Row)
	if text == "" {
		hide()
		return
	}

	r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: text}}
	r.label.Refresh()

	pad := float32(6)
	ts := r.label.MinSize()
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx, ty := o.mouse.X+8, o.mouse.Y+8
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	r.labelBG.Resize(fyne.NewSize(bgW, bgH))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *selectionRenderer) Refresh() {
	r.Layout(r.o.Size())
	r.bg.Refresh()
	r.band.Refresh()
	for _, l := range r.lines {
		l.Refresh()
	}
	r.labelBG.Refresh()
	r.label.Refresh()
}
