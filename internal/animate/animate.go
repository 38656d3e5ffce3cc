// Package animate turns a requested knob rotation into a stream of frames.
//
// A single worker owns the timing. Requests are queued with latest-wins
// semantics: a new task replaces the one in flight and continues from the last
// emitted angle, so overlapping selections never race each other.
package animate

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"
)

// Plan describes a rotation expressed as fixed angular steps.
type Plan struct {
	Step       float64 // signed degrees per step
	Iterations int
	Duration   time.Duration
}

// PlanSteps splits totalDelta into steps of stepAngle degrees, one per
// stepDelay. The step takes the sign of totalDelta; the iteration count is
// |totalDelta/stepAngle| truncated.
func PlanSteps(totalDelta, stepAngle float64, stepDelay time.Duration) Plan {
	step := math.Abs(stepAngle)
	if step == 0 {
		return Plan{}
	}

	if totalDelta < 0 {
		step = -step
	}

	n := int(math.Abs(totalDelta / step))

	return Plan{
		Step:       step,
		Iterations: n,
		Duration:   time.Duration(n) * stepDelay,
	}
}

// Config tunes the animation speed and smoothness.
type Config struct {
	// StepAngle and StepDelay set the angular speed: StepAngle degrees per StepDelay.
	StepAngle float64
	StepDelay time.Duration

	// FrameInterval is how often frames are emitted while animating.
	FrameInterval time.Duration

	Easing Easing
}

// DefaultConfig rotates at 3° per 4ms (120° in 160ms) at ~60 frames per second.
func DefaultConfig() Config {
	return Config{
		StepAngle:     3,
		StepDelay:     4 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		Easing:        Linear,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.StepAngle == 0 {
		c.StepAngle = d.StepAngle
	}
	if c.StepDelay <= 0 {
		c.StepDelay = d.StepDelay
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = d.FrameInterval
	}
	if c.Easing == nil {
		c.Easing = d.Easing
	}
	return c
}

// Task asks the worker to move the knob from From to To (unwrapped degrees).
type Task struct {
	Seq      uint64
	From, To float64
}

// Frame is one animation step. Angle is unwrapped; Done marks the final frame
// of a task, whose Angle is exactly the task's To.
type Frame struct {
	Seq   uint64
	Angle float64
	Done  bool
}

// Animator runs rotation tasks on a single worker goroutine.
type Animator struct {
	cfg    Config
	apply  func(Frame)
	tasks  chan Task
	seq    atomic.Uint64
	logger *slog.Logger
}

// New creates an animator that reports frames to apply. apply is called from
// the worker goroutine started by Run.
func New(cfg Config, apply func(Frame), logger *slog.Logger) *Animator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Animator{
		cfg:    cfg.withDefaults(),
		apply:  apply,
		tasks:  make(chan Task, 1),
		logger: logger,
	}
}

// Config returns the effective configuration.
func (a *Animator) Config() Config { return a.cfg }

// Submit queues a rotation from one angle to another and returns the task.
// It never blocks: a task still waiting in the queue is replaced.
func (a *Animator) Submit(from, to float64) Task {
	t := Task{Seq: a.seq.Add(1), From: from, To: to}

	for {
		select {
		case a.tasks <- t:
			return t
		default:
		}

		select {
		case old := <-a.tasks:
			a.logger.Debug("rotation superseded before start", "seq", old.Seq)
		default:
		}
	}
}

// active is the task the worker is currently animating.
type active struct {
	Task
	started  time.Time
	duration time.Duration
}

// Run animates submitted tasks until ctx is cancelled.
func (a *Animator) Run(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.FrameInterval)
	ticker.Stop()
	defer ticker.Stop()

	var (
		cur   *active
		last  float64
		ticks <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return

		case t := <-a.tasks:
			if cur != nil {
				// supersede from wherever the knob is now
				a.logger.Debug("rotation superseded", "seq", cur.Seq, "by", t.Seq, "at", last)
				t.From = last
			}

			plan := PlanSteps(t.To-t.From, a.cfg.StepAngle, a.cfg.StepDelay)
			if plan.Duration <= 0 {
				last = a.finish(t)
				cur, ticks = nil, nil
				ticker.Stop()

				continue
			}

			cur = &active{Task: t, started: time.Now(), duration: plan.Duration}
			last = t.From
			ticker.Reset(a.cfg.FrameInterval)
			ticks = ticker.C

		case now := <-ticks:
			if cur == nil {
				continue
			}

			p := float64(now.Sub(cur.started)) / float64(cur.duration)
			if p >= 1 {
				last = a.finish(cur.Task)
				cur, ticks = nil, nil
				ticker.Stop()

				continue
			}

			last = cur.From + (cur.To-cur.From)*a.cfg.Easing(p)
			a.apply(Frame{Seq: cur.Seq, Angle: last})
		}
	}
}

func (a *Animator) finish(t Task) float64 {
	a.apply(Frame{Seq: t.Seq, Angle: t.To, Done: true})
	return t.To
}
