package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/0x0FACED/planecut/internal/cell2d"
	"github.com/0x0FACED/planecut/internal/telemetry"
	"github.com/0x0FACED/planecut/internal/tessellate"
)

func TestHTMLRendersChartAndLogs(t *testing.T) {
	logger := telemetry.New()
	container := tessellate.New(
		tessellate.BoundingBox{Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10},
		tessellate.Options{Cell: cell2d.DefaultConfig(), Logger: logger},
	)
	diagram, err := container.Build([]tessellate.Generator{{X: 3, Y: 5}, {X: 7, Y: 5}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	logger.Info("marker line for html embedding test")

	var buf bytes.Buffer
	if err := HTML(&buf, diagram, logger); err != nil {
		t.Fatalf("HTML: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<html>") {
		t.Fatalf("missing <html> wrapper")
	}
	if !strings.Contains(out, "marker line for html embedding test") {
		t.Fatalf("log lines not embedded: %q", out)
	}
	if !strings.Contains(out, "<span") {
		t.Fatalf("expected ANSI colors translated to spans: %q", out)
	}
	if !strings.Contains(out, "2 cells") {
		t.Fatalf("cell count not embedded: %q", out)
	}
}
