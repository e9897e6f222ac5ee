// Command cellcut builds a planar Voronoi tessellation from a
// generator layout and either prints a custom-format record per cell
// to stdout, or serves an HTML report over HTTP. It is an external
// collaborator of the cell kernel, structured the way the reference
// program's cmd/app/main.go drives its own Voronoi package.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/0x0FACED/planecut/internal/cell2d"
	"github.com/0x0FACED/planecut/internal/render"
	"github.com/0x0FACED/planecut/internal/telemetry"
	"github.com/0x0FACED/planecut/internal/tessellate"
)

func main() {
	mode := flag.String("mode", "cli", "cli (print custom records to stdout) or serve (HTML report over HTTP)")
	generators := flag.Int("generators", 12, "number of generators")
	random := flag.Bool("random", false, "scatter generators randomly instead of on a grid")
	width := flag.Float64("width", 1000, "bounding box width")
	height := flag.Float64("height", 1000, "bounding box height")
	format := flag.String("format", "%i %q %w %p %a", "custom output format, used in cli mode")
	addr := flag.String("addr", ":8080", "listen address, used in serve mode")
	flag.Parse()

	logger := telemetry.New()

	sites := layout(*generators, *width, *height, *random)
	bbox := tessellate.BoundingBox{Xmin: 0, Xmax: *width, Ymin: 0, Ymax: *height}
	container := tessellate.New(bbox, tessellate.Options{Cell: cell2d.DefaultConfig(), Logger: logger})

	switch *mode {
	case "cli":
		runCLI(container, sites, *format, logger)
	case "serve":
		runServer(container, sites, *addr, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q, want cli or serve\n", *mode)
		os.Exit(2)
	}
}

// layout mirrors the reference program's generateFixStations /
// generateRandStations pair: a roughly-square grid by default, or a
// uniform scatter when random is set.
func layout(n int, width, height float64, random bool) []tessellate.Generator {
	if random {
		out := make([]tessellate.Generator, n)
		for i := range out {
			out[i] = tessellate.Generator{X: rand.Float64() * width, Y: rand.Float64() * height}
		}
		return out
	}

	rows := int(math.Sqrt(float64(n)))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows
	xStep := width / float64(cols)
	yStep := height / float64(rows)

	out := make([]tessellate.Generator, 0, n)
	for i := 0; i < rows && len(out) < n; i++ {
		for j := 0; j < cols && len(out) < n; j++ {
			out = append(out, tessellate.Generator{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return out
}

func runCLI(container *tessellate.Container, sites []tessellate.Generator, format string, logger *telemetry.Logger) {
	diagram, err := container.Build(sites)
	if err != nil {
		logger.Fatal("cellcut: build failed", zap.Error(err))
	}

	for i, cell := range diagram.Cells {
		if err := render.Custom(os.Stdout, cell.Cell, format, i, cell.Site.X, cell.Site.Y, 0); err != nil {
			logger.Fatal("cellcut: custom output failed", zap.Error(err))
		}
	}
}

func runServer(container *tessellate.Container, sites []tessellate.Generator, addr string, logger *telemetry.Logger) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		diagram, err := container.Build(sites)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := render.HTML(w, diagram, logger); err != nil {
			logger.Error("cellcut: html render failed", zap.Error(err))
		}
	})

	logger.Info("cellcut: serving report", zap.String("addr", addr))
	log.Fatal(http.ListenAndServe(addr, nil))
}
