package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogeom/pkg/analysis"
	"github.com/philipparndt/gogeom/pkg/stl"
	"github.com/philipparndt/gogeom/pkg/viewer"
	"github.com/philipparndt/gogeom/pkg/watcher"
)

type App struct {
	window         fyne.Window
	model          *stl.Model
	renderer       *viewer.ModelRenderer
	modelInfoLabel *widget.Label
	fileWatcher    *watcher.FileWatcher
	currentFile    string
	showBox        bool
}

func main() {
	a := app.New()
	w := a.NewWindow("gogeom - 3D Model Inspector")

	appInstance := &App{
		window: w,
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to gogeom")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open STL File' to load a 3D model")

	openButton := widget.NewButton("Open STL File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), a.window)
		return
	}

	a.model = model
	a.currentFile = filename
	a.setupMainUI()
	a.watchCurrentFile()
}

// watchCurrentFile reloads the model whenever the file changes on disk
func (a *App) watchCurrentFile() {
	if a.fileWatcher != nil {
		a.fileWatcher.Close()
	}

	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watching disabled: %v\n", err)
		return
	}

	if err := fw.Watch([]string{a.currentFile}, func(path string) {
		a.reloadModel()
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to watch %s: %v\n", a.currentFile, err)
		fw.Close()
		return
	}

	fw.Start()
	a.fileWatcher = fw
}

func (a *App) reloadModel() {
	model, err := stl.Parse(a.currentFile)
	if err != nil {
		// The file may be mid-write; the next event retries
		return
	}

	a.model = model
	fyne.Do(func() {
		a.renderer.SetModel(model)
		a.updateBoxOverlay()
		a.updateModelInfo()
	})
}

func (a *App) setupMainUI() {
	a.modelInfoLabel = widget.NewLabel("")

	// Create 3D renderer
	a.renderer = viewer.NewModelRenderer(a.model)

	// Create control buttons
	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	// Create filled mode checkbox
	filledModeCheck := widget.NewCheck("Show Filled", func(checked bool) {
		a.renderer.SetFilledMode(checked)
	})
	filledModeCheck.SetChecked(false)

	// Create bounding box checkbox
	boundingBoxCheck := widget.NewCheck("Show Bounding Box", func(checked bool) {
		a.showBox = checked
		a.updateBoxOverlay()
	})
	boundingBoxCheck.SetChecked(false)

	a.updateModelInfo()

	// Instructions
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• The model reloads automatically\n" +
			"  when the file changes",
	)
	instructions.Wrapping = fyne.TextWrapWord

	// Create info panel
	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		a.modelInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		filledModeCheck,
		boundingBoxCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	// Create scroll container for info panel
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	// Create main layout
	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)

	// Initial render
	a.renderer.Render(800, 600)
}

func (a *App) updateBoxOverlay() {
	if a.showBox {
		a.renderer.SetBoundingBox(a.model.BoundingBox())
	} else {
		a.renderer.SetBoundingBox(nil)
	}
}

func (a *App) updateModelInfo() {
	result := analysis.AnalyzeModel(a.model)
	bbox := result.BoundingBox
	a.modelInfoLabel.SetText(fmt.Sprintf(
		"Model: %s\nTriangles: %d\nEdges: %d\nSurface Area: %.2f\n\n"+
			"Bounding Box:\n  Center: (%.2f, %.2f, %.2f)\n  Extent: (%.2f, %.2f, %.2f)\n\n"+
			"Dimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.model.Name,
		result.TriangleCount,
		result.EdgeCount,
		result.SurfaceArea,
		bbox.Center().X, bbox.Center().Y, bbox.Center().Z,
		bbox.Extent().X, bbox.Extent().Y, bbox.Extent().Z,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}
