package export

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"image/gif"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/san-kum/lorenzviz/internal/anim"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/integrators"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
	"github.com/san-kum/lorenzviz/internal/viz"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Steps = 300
	cfg.Seeds = cfg.Seeds[:2]
	cfg.Colors = cfg.Colors[:2]
	cfg.Tail = 100
	cfg.Stride = 50
	cfg.Interval = 40 * time.Millisecond
	return cfg
}

func buildSet(t *testing.T, cfg *config.Config) *sim.Set {
	t.Helper()
	gen, err := sim.NewGenerator(physics.NewLorenz(cfg.Params), integrators.NewEuler(), cfg.Dt)
	if err != nil {
		t.Fatal(err)
	}
	set, err := sim.BuildSet(context.Background(), gen, cfg.InitStates(), cfg.Colors, cfg.Steps)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestWriteSVGWellFormed(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := testConfig()
	scene := viz.NewScene()
	anim.NewUpdater(scene, buildSet(t, cfg), cfg.Tail, cfg.Stride, anim.DefaultStyle()).Update(2)

	var buf bytes.Buffer
	g.Expect(WriteSVG(&buf, scene, 400, 300, viz.ThemeNeon)).To(gomega.Succeed())

	dec := xml.NewDecoder(&buf)
	paths, circles, texts := 0, 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		g.Expect(err).NotTo(gomega.HaveOccurred())
		if se, ok := tok.(xml.StartElement); ok {
			switch se.Name.Local {
			case "path":
				paths++
			case "circle":
				circles++
			case "text":
				texts++
			}
		}
	}
	g.Expect(paths).To(gomega.Equal(6))
	g.Expect(circles).To(gomega.Equal(2))
	// title has a shadow copy
	g.Expect(texts).To(gomega.Equal(4))
}

func TestWriteSVGEscapesText(t *testing.T) {
	scene := viz.NewScene()
	scene.Label(anim.TextStyle{X: 0.5, Y: 0.5}).SetText("a<b & c")

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 10, 10, viz.ThemeNeon); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "a&lt;b &amp; c") {
		t.Errorf("label not escaped:\n%s", buf.String())
	}
}

func TestWriteGIF(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := testConfig()
	set := buildSet(t, cfg)

	var buf bytes.Buffer
	n, err := WriteGIF(context.Background(), &buf, set, cfg, GIFOptions{Width: 80, Height: 60})
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(n).To(gomega.Equal(anim.FrameCount(301, 100, 50)))

	decoded, err := gif.DecodeAll(&buf)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(decoded.Image).To(gomega.HaveLen(n))
	g.Expect(decoded.Delay).To(gomega.HaveEach(4))
}

func TestWriteGIFMaxFrames(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	n, err := WriteGIF(context.Background(), &buf, buildSet(t, cfg), cfg, GIFOptions{Width: 40, Height: 30, MaxFrames: 2})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("frames = %d, want 2", n)
	}
}

func TestWriteGIFCanceled(t *testing.T) {
	cfg := testConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if _, err := WriteGIF(ctx, &buf, buildSet(t, cfg), cfg, GIFOptions{Width: 40, Height: 30}); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestExportJSON(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := testConfig()
	set := buildSet(t, cfg)

	var buf bytes.Buffer
	g.Expect(ExportJSON(&buf, cfg, set)).To(gomega.Succeed())

	var data ExportData
	g.Expect(json.Unmarshal(buf.Bytes(), &data)).To(gomega.Succeed())
	g.Expect(data.Trajectories).To(gomega.HaveLen(2))
	g.Expect(data.Trajectories[0].X).To(gomega.HaveLen(301))
	g.Expect(data.Trajectories[1].Seed).To(gomega.Equal(cfg.Seeds[1]))
	g.Expect(data.Params).To(gomega.Equal(cfg.Params))
}
