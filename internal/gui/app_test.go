package gui

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/integrators"
	"github.com/san-kum/lorenzviz/internal/physics"
	"github.com/san-kum/lorenzviz/internal/sim"
	"github.com/san-kum/lorenzviz/internal/viz"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Steps, cfg.Tail, cfg.Stride = 300, 100, 10
	cfg.Interval = 25 * time.Millisecond

	gen, err := sim.NewGenerator(physics.NewLorenz(cfg.Params), integrators.NewEuler(), cfg.Dt)
	if err != nil {
		t.Fatal(err)
	}
	seeds := []dynamo.State{{0.1, 0, 0}, {-0.1, 0, 0}}
	set, err := sim.BuildSet(context.Background(), gen, seeds, []string{"#00f5ff", "#ff00ff"}, cfg.Steps)
	if err != nil {
		t.Fatal(err)
	}
	app := NewApp(set, cfg)
	app.Driver.Start()
	return app
}

func TestAdvanceTicksOncePerDisplayFrame(t *testing.T) {
	g := gomega.NewWithT(t)
	app := newTestApp(t)

	// a 100ms display frame spans four intervals but renders one frame
	g.Expect(app.advance(0.1)).To(gomega.BeTrue())
	g.Expect(app.Driver.Frame()).To(gomega.Equal(0))
	g.Expect(app.frame.Index).To(gomega.Equal(0))

	g.Expect(app.advance(0.1)).To(gomega.BeTrue())
	g.Expect(app.Driver.Frame()).To(gomega.Equal(1))
}

func TestAdvanceWaitsForInterval(t *testing.T) {
	g := gomega.NewWithT(t)
	app := newTestApp(t)

	g.Expect(app.advance(0.010)).To(gomega.BeFalse())
	g.Expect(app.Driver.Frame()).To(gomega.Equal(-1))
	g.Expect(app.advance(0.016)).To(gomega.BeTrue())
	g.Expect(app.Driver.Frame()).To(gomega.Equal(0))

	// leftover time is not carried over
	g.Expect(app.advance(0.010)).To(gomega.BeFalse())
}

func TestOrbitFollowsSceneCamera(t *testing.T) {
	g := gomega.NewWithT(t)
	cam := viz.NewCamera()
	cam.SetView(0, 0)

	pos, target := orbit(cam.Eye())
	g.Expect(target.X).To(gomega.BeNumerically("~", 0, 1e-4))
	g.Expect(target.Y).To(gomega.BeNumerically("~", 0, 1e-4))
	g.Expect(pos.X).To(gomega.BeNumerically("~", camDistance, 1e-3))
	g.Expect(pos.Y).To(gomega.BeNumerically("~", 0, 1e-3))
	g.Expect(pos.Z).To(gomega.BeNumerically("~", 0, 1e-3))

	cam.SetView(90, 0)
	pos, _ = orbit(cam.Eye())
	g.Expect(pos.Y).To(gomega.BeNumerically("~", camDistance, 1e-3))
}
