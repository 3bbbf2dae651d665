package rod

import (
	"context"
	"math/rand/v2"
	"time"
)

// StepAction is one kind of human-emulation action.
type StepAction string

// Step actions.
const (
	ActionWait      StepAction = "wait"
	ActionScroll    StepAction = "scroll"
	ActionScrollTop StepAction = "scroll_top"
	ActionMouseMove StepAction = "mouse_move"
)

// Step is one entry in the emulation sequence. The pause after each action
// is drawn uniformly from [WaitMin, WaitMax].
type Step struct {
	Action  StepAction
	Depth   float64 // scroll target as a fraction of page height
	WaitMin time.Duration
	WaitMax time.Duration
}

// DefaultChoreography is the scripted post-navigation sequence: settle,
// three smooth scrolls to increasing depths, back to top, two mouse moves.
// It exists purely to defeat behavioral bot detectors, not decoration.
func DefaultChoreography() []Step {
	return []Step{
		{Action: ActionWait, WaitMin: 5 * time.Second, WaitMax: 8 * time.Second},
		{Action: ActionScroll, Depth: 0.3, WaitMin: time.Second, WaitMax: 2500 * time.Millisecond},
		{Action: ActionScroll, Depth: 0.6, WaitMin: time.Second, WaitMax: 2500 * time.Millisecond},
		{Action: ActionScroll, Depth: 0.9, WaitMin: time.Second, WaitMax: 2500 * time.Millisecond},
		{Action: ActionScrollTop, WaitMin: 500 * time.Millisecond, WaitMax: time.Second},
		{Action: ActionMouseMove, WaitMin: 300 * time.Millisecond, WaitMax: 800 * time.Millisecond},
		{Action: ActionMouseMove, WaitMin: 300 * time.Millisecond, WaitMax: 800 * time.Millisecond},
	}
}

// Driver performs the page-level actions the choreography needs. The rod
// page implements it in production; tests substitute a recorder.
type Driver interface {
	ScrollTo(depth float64) error
	ScrollTop() error
	MouseMove(x, y float64) error
}

// viewport bounds for randomized mouse coordinates.
const (
	viewportWidth  = 1920
	viewportHeight = 1080
)

// RunChoreography interprets the step sequence against a driver. It stops on
// the first action error or context cancellation; callers own page cleanup.
func RunChoreography(ctx context.Context, drv Driver, steps []Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch step.Action {
		case ActionWait:
			// pause only
		case ActionScroll:
			if err := drv.ScrollTo(step.Depth); err != nil {
				return err
			}
		case ActionScrollTop:
			if err := drv.ScrollTop(); err != nil {
				return err
			}
		case ActionMouseMove:
			x := rand.Float64() * viewportWidth
			y := rand.Float64() * viewportHeight
			if err := drv.MouseMove(x, y); err != nil {
				return err
			}
		}

		if err := sleepRange(ctx, step.WaitMin, step.WaitMax); err != nil {
			return err
		}
	}
	return nil
}

// sleepRange sleeps a duration drawn uniformly from [min, max], honoring
// context cancellation.
func sleepRange(ctx context.Context, min, max time.Duration) error {
	d := min
	if max > min {
		d += time.Duration(rand.Int64N(int64(max - min)))
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
