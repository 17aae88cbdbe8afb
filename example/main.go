// Example wires guikit to a GLFW window.
//
// It builds a settings form from a schema and a small table in a
// MemoryHost, prints the form's values as YAML, then opens a window where
// clicking a table row copies that row's first cell to the clipboard.
//
//	devbox shell
//	go run ./example/ -v
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/backend/opengl"
)

const (
	windowWidth  = 640
	windowHeight = 480
	windowTitle  = "guikit example"
	rowHeight    = 24
)

var settingsSchema = guikit.MustSchema("Settings",
	guikit.Leaf("title"),
	guikit.Leaf("fullscreen"),
	guikit.Tuple("size", "w", "h"),
	guikit.Nested("audio", guikit.MustSchema("Audio",
		guikit.Leaf("volume"),
		guikit.Leaf("muted"),
	)),
)

// row is one table row: the row item followed by its first cell.
type row struct {
	id   guikit.ID
	cell guikit.ID
}

func (r row) ItemID() guikit.ID { return r.id }

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	guikit.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	host := guikit.NewMemoryHost()

	window, err := host.Add(guikit.KindWindow, guikit.WithSize(windowWidth, windowHeight))
	if err != nil {
		return err
	}

	form := guikit.MustGenerate(host, settingsSchema)
	if err := buildForm(host, window, form); err != nil {
		return fmt.Errorf("build form: %w", err)
	}
	values, err := guikit.Read(host, form)
	if err != nil {
		return fmt.Errorf("read form: %w", err)
	}
	out, err := guikit.MarshalValuesYAML(values)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)

	rows, err := buildTable(host, window, []string{"alpha", "beta", "gamma", "delta"})
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := opengl.Init(); err != nil {
		return err
	}

	pointer := opengl.NewPointerAdapter(win)
	clip := &opengl.Clipboard{Window: win}

	for !win.ShouldClose() {
		glfw.PollEvents()
		p := pointer.Update()
		opengl.ClearFrame(win, guikit.RGBA(30, 30, 36, 255))

		if p.Clicked {
			hit, _, err := opengl.HoveredItem(host, win, rows, false)
			if err != nil {
				return err
			}
			text, err := guikit.CopyCellText(host, clip, hit.cell, -1, 0)
			if err != nil {
				return err
			}
			fmt.Printf("copied %q\n", text)
		}

		win.SwapBuffers()
	}
	return nil
}

func buildForm(host *guikit.MemoryHost, window guikit.ID, form *guikit.Instance) error {
	return guikit.WithContainer(host, window, func() error {
		widgets := []struct {
			path  string
			kind  guikit.Kind
			value any
		}{
			{"title", guikit.KindInputText, "Untitled"},
			{"fullscreen", guikit.KindCheckbox, false},
			{"size.w", guikit.KindDragInt, windowWidth},
			{"size.h", guikit.KindDragInt, windowHeight},
			{"audio.volume", guikit.KindDragFloat, 0.8},
			{"audio.muted", guikit.KindCheckbox, false},
		}
		for _, w := range widgets {
			id, err := form.Get(w.path)
			if err != nil {
				return err
			}
			if _, err := host.Add(w.kind, guikit.WithTag(id), guikit.WithValue(w.value)); err != nil {
				return err
			}
		}
		return nil
	})
}

func buildTable(host *guikit.MemoryHost, window guikit.ID, names []string) ([]row, error) {
	table, err := host.Add(guikit.KindTable, guikit.WithParent(window))
	if err != nil {
		return nil, err
	}

	rows := make([]row, 0, len(names))
	err = guikit.WithContainer(host, table, func() error {
		for i, name := range names {
			y := float32(i * rowHeight)
			id, err := host.Add(guikit.KindTableRow, guikit.WithPos(0, y), guikit.WithSize(windowWidth, rowHeight))
			if err != nil {
				return err
			}
			cell, err := host.Add(guikit.KindText, guikit.WithParent(id), guikit.WithValue(name), guikit.WithPos(0, y))
			if err != nil {
				return err
			}
			rows = append(rows, row{id: id, cell: cell})
		}
		return nil
	})
	return rows, err
}
