package anim_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/lorenzviz/internal/anim"
)

var _ = Describe("Driver", func() {
	var (
		rendered []int
		driver   *anim.Driver
	)

	record := func(frame int) { rendered = append(rendered, frame) }

	BeforeEach(func() {
		rendered = nil
		driver = anim.NewDriver(3, 25*time.Millisecond, true, record)
	})

	It("starts idle and renders nothing until started", func() {
		Expect(driver.Phase()).To(Equal(anim.Idle))
		Expect(driver.Tick()).To(BeFalse())
		Expect(rendered).To(BeEmpty())
		Expect(driver.Frame()).To(Equal(-1))
	})

	It("plays frames in increasing order", func() {
		driver.Start()
		Expect(driver.Phase()).To(Equal(anim.Playing))
		Expect(driver.Tick()).To(BeTrue())
		Expect(driver.Tick()).To(BeTrue())
		Expect(rendered).To(Equal([]int{0, 1}))
		Expect(driver.Frame()).To(Equal(1))
	})

	It("enters Looping after the last frame and restarts from zero", func() {
		driver.Start()
		for i := 0; i < 3; i++ {
			driver.Tick()
		}
		Expect(driver.Phase()).To(Equal(anim.Looping))
		Expect(driver.Loops()).To(Equal(0))

		driver.Tick()
		Expect(driver.Phase()).To(Equal(anim.Playing))
		Expect(driver.Loops()).To(Equal(1))
		Expect(rendered).To(Equal([]int{0, 1, 2, 0}))
	})

	It("stops after one pass without repeat", func() {
		driver = anim.NewDriver(2, time.Millisecond, false, record)
		driver.Start()
		Expect(driver.Tick()).To(BeTrue())
		Expect(driver.Tick()).To(BeTrue())
		Expect(driver.Phase()).To(Equal(anim.Stopped))
		Expect(driver.Tick()).To(BeFalse())
		Expect(rendered).To(Equal([]int{0, 1}))
	})

	It("seeks and clamps the play position", func() {
		driver.Start()
		driver.Seek(2)
		driver.Tick()
		driver.Seek(-4)
		driver.Tick()
		driver.Seek(99)
		driver.Tick()
		Expect(rendered).To(Equal([]int{2, 0, 2}))
	})

	It("resumes a stopped driver on seek", func() {
		driver = anim.NewDriver(1, time.Millisecond, false, record)
		driver.Start()
		driver.Tick()
		Expect(driver.Phase()).To(Equal(anim.Stopped))
		driver.Seek(0)
		Expect(driver.Phase()).To(Equal(anim.Playing))
		Expect(driver.Tick()).To(BeTrue())
	})

	It("never has fewer than one frame", func() {
		Expect(anim.NewDriver(-10, time.Millisecond, true, record).Frames()).To(Equal(1))
	})

	Describe("Run", func() {
		It("renders one frame per tick", func() {
			ticks := make(chan time.Time, 7)
			for i := 0; i < 7; i++ {
				ticks <- time.Time{}
			}
			close(ticks)

			Expect(driver.Run(context.Background(), ticks)).To(Succeed())
			Expect(rendered).To(Equal([]int{0, 1, 2, 0, 1, 2, 0}))
			Expect(driver.Loops()).To(Equal(2))
		})

		It("returns when playback stops", func() {
			driver = anim.NewDriver(2, time.Millisecond, false, record)
			ticks := make(chan time.Time, 5)
			for i := 0; i < 5; i++ {
				ticks <- time.Time{}
			}

			Expect(driver.Run(context.Background(), ticks)).To(Succeed())
			Expect(rendered).To(Equal([]int{0, 1}))
			Expect(ticks).To(HaveLen(3))
		})

		It("returns the context error on cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(driver.Run(ctx, make(chan time.Time))).To(MatchError(context.Canceled))
			Expect(rendered).To(BeEmpty())
		})

		It("drives the default animation through a full pass", func() {
			frames := anim.FrameCount(8001, 1500, 20)
			driver = anim.NewDriver(frames, 25*time.Millisecond, true, record)
			ticks := make(chan time.Time, frames+1)
			for i := 0; i <= frames; i++ {
				ticks <- time.Time{}
			}
			close(ticks)

			Expect(driver.Run(context.Background(), ticks)).To(Succeed())
			Expect(rendered).To(HaveLen(327))
			Expect(rendered[325]).To(Equal(325))
			Expect(rendered[326]).To(Equal(0))
		})
	})

	It("names its phases", func() {
		Expect(anim.Idle.String()).To(Equal("idle"))
		Expect(anim.Looping.String()).To(Equal("looping"))
		Expect(anim.Phase(42).String()).To(Equal("unknown"))
	})
})
