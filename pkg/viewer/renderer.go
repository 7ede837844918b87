package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogeom/pkg/geometry"
	"github.com/philipparndt/gogeom/pkg/stl"
)

var boxColor = color.RGBA{255, 170, 0, 255}

// ModelRenderer renders an STL model in 3D, either as a wireframe or as
// filled triangles with depth testing. It can overlay the wireframe of an
// axis-aligned bounding box on top of the model.
type ModelRenderer struct {
	widget.BaseWidget
	model      *stl.Model
	camera     *Camera
	lines      []*canvas.Line
	boxLines   []*canvas.Line
	raster     *canvas.Image
	box        *geometry.AABB
	filled     bool
	dragStart  *fyne.Position
	width      float64
	height     float64
}

// NewModelRenderer creates a new 3D model renderer
func NewModelRenderer(model *stl.Model) *ModelRenderer {
	r := &ModelRenderer{
		model:    model,
		camera:   NewCamera(model.BoundingBox()),
		lines:    make([]*canvas.Line, 0),
		boxLines: make([]*canvas.Line, 0),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetModel replaces the rendered model, keeping the current camera
func (r *ModelRenderer) SetModel(model *stl.Model) {
	r.model = model
	r.Render(r.width, r.height)
}

// SetFilledMode switches between filled and wireframe rendering
func (r *ModelRenderer) SetFilledMode(filled bool) {
	r.filled = filled
	r.Render(r.width, r.height)
}

// SetBoundingBox sets the box overlay. A nil box hides the overlay.
func (r *ModelRenderer) SetBoundingBox(box *geometry.AABB) {
	r.box = box
	r.Render(r.width, r.height)
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &modelWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *ModelRenderer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height

	if r.filled {
		r.renderFilled(width, height)
	} else {
		r.renderWireframe(width, height)
	}

	r.Refresh()
}

// renderWireframe draws all triangle edges as canvas lines
func (r *ModelRenderer) renderWireframe(width, height float64) {
	r.raster = nil
	r.lines = make([]*canvas.Line, 0)

	for _, triangle := range r.model.Triangles {
		vertices := []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}

		for i := 0; i < 3; i++ {
			v1 := vertices[i]
			v2 := vertices[(i+1)%3]

			x1, y1, z1 := r.camera.Project(v1, width, height)
			x2, y2, z2 := r.camera.Project(v2, width, height)

			// Simple depth-based color
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.lines = append(r.lines, line)
		}
	}

	r.updateBoxLines(width, height)
}

// renderFilled rasterizes the triangles into an image with a depth buffer
func (r *ModelRenderer) renderFilled(width, height float64) {
	r.lines = nil
	r.boxLines = nil

	w := int(width)
	h := int(height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	light := geometry.NewVector3(0.3, 0.5, 1).Normalize()

	for _, triangle := range r.model.Triangles {
		x1, y1, z1 := r.camera.Project(triangle.V1, width, height)
		x2, y2, z2 := r.camera.Project(triangle.V2, width, height)
		x3, y3, z3 := r.camera.Project(triangle.V3, width, height)

		// Skip triangles behind the camera
		if z1 <= 0.01 && z2 <= 0.01 && z3 <= 0.01 {
			continue
		}

		// Flat shading from the face normal
		normal := triangle.CalculateNormal()
		shade := math.Abs(normal.Dot(light))
		brightness := uint8(60 + 180*shade)
		col := color.RGBA{brightness, brightness, brightness, 255}

		fillTriangleWithDepth(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}

	if r.box != nil {
		for _, edge := range boxEdges(r.box) {
			x1, y1, _ := r.camera.Project(edge[0], width, height)
			x2, y2, _ := r.camera.Project(edge[1], width, height)
			drawLine(img, int(x1), int(y1), int(x2), int(y2), boxColor)
		}
	}

	r.raster = canvas.NewImageFromImage(img)
	r.raster.FillMode = canvas.ImageFillStretch
	r.raster.Resize(fyne.NewSize(float32(width), float32(height)))
}

// updateBoxLines rebuilds the bounding-box overlay lines
func (r *ModelRenderer) updateBoxLines(width, height float64) {
	r.boxLines = make([]*canvas.Line, 0)
	if r.box == nil {
		return
	}

	for _, edge := range boxEdges(r.box) {
		x1, y1, _ := r.camera.Project(edge[0], width, height)
		x2, y2, _ := r.camera.Project(edge[1], width, height)

		line := canvas.NewLine(boxColor)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))

		r.boxLines = append(r.boxLines, line)
	}
}

// boxEdges returns the 12 wireframe edges of a box
func boxEdges(box *geometry.AABB) [12][2]geometry.Vector3 {
	min := box.Min()
	max := box.Max()

	corners := [8]geometry.Vector3{
		geometry.NewVector3(min.X, min.Y, min.Z),
		geometry.NewVector3(max.X, min.Y, min.Z),
		geometry.NewVector3(max.X, max.Y, min.Z),
		geometry.NewVector3(min.X, max.Y, min.Z),
		geometry.NewVector3(min.X, min.Y, max.Z),
		geometry.NewVector3(max.X, min.Y, max.Z),
		geometry.NewVector3(max.X, max.Y, max.Z),
		geometry.NewVector3(min.X, max.Y, max.Z),
	}

	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
	}

	var edges [12][2]geometry.Vector3
	for i, p := range pairs {
		edges[i] = [2]geometry.Vector3{corners[p[0]], corners[p[1]]}
	}
	return edges
}

// Dragged handles mouse drag events for rotation
func (r *ModelRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (r *ModelRenderer) DragEnd() {
	r.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// modelWidgetRenderer implements fyne.WidgetRenderer
type modelWidgetRenderer struct {
	renderer *ModelRenderer
	objects  []fyne.CanvasObject
}

func (m *modelWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *modelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *modelWidgetRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0)

	if m.renderer.raster != nil {
		m.objects = append(m.objects, m.renderer.raster)
	}
	for _, line := range m.renderer.lines {
		m.objects = append(m.objects, line)
	}
	for _, line := range m.renderer.boxLines {
		m.objects = append(m.objects, line)
	}

	canvas.Refresh(m.renderer)
}

func (m *modelWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *modelWidgetRenderer) Destroy() {}
