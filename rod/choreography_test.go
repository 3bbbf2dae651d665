package rod_test

import (
	"context"
	"errors"
	"testing"

	"github.com/seihin/faqgen/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderDriver records actions and optionally fails a specific one.
type recorderDriver struct {
	actions []string
	failOn  string
}

func (d *recorderDriver) record(name string) error {
	d.actions = append(d.actions, name)
	if d.failOn == name {
		return errors.New("driver failure")
	}
	return nil
}

func (d *recorderDriver) ScrollTo(depth float64) error { return d.record("scroll") }
func (d *recorderDriver) ScrollTop() error             { return d.record("scroll_top") }
func (d *recorderDriver) MouseMove(x, y float64) error { return d.record("mouse_move") }

// instantSteps is the default sequence with all pauses zeroed.
func instantSteps() []rod.Step {
	steps := rod.DefaultChoreography()
	for i := range steps {
		steps[i].WaitMin = 0
		steps[i].WaitMax = 0
	}
	return steps
}

func TestRunChoreography(t *testing.T) {
	t.Parallel()

	t.Run("executes every step in order", func(t *testing.T) {
		t.Parallel()

		drv := &recorderDriver{}
		err := rod.RunChoreography(context.Background(), drv, instantSteps())

		require.NoError(t, err)
		assert.Equal(t, []string{
			"scroll", "scroll", "scroll",
			"scroll_top",
			"mouse_move", "mouse_move",
		}, drv.actions)
	})

	t.Run("stops on the first action error", func(t *testing.T) {
		t.Parallel()

		drv := &recorderDriver{failOn: "scroll_top"}
		err := rod.RunChoreography(context.Background(), drv, instantSteps())

		require.Error(t, err)
		assert.Equal(t, []string{"scroll", "scroll", "scroll", "scroll_top"}, drv.actions)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		drv := &recorderDriver{}
		err := rod.RunChoreography(ctx, drv, instantSteps())

		require.Error(t, err)
		assert.Empty(t, drv.actions)
	})

	t.Run("default choreography has three scrolls and two mouse moves", func(t *testing.T) {
		t.Parallel()

		counts := map[rod.StepAction]int{}
		for _, step := range rod.DefaultChoreography() {
			counts[step.Action]++
		}

		assert.Equal(t, 3, counts[rod.ActionScroll])
		assert.Equal(t, 2, counts[rod.ActionMouseMove])
		assert.Equal(t, 1, counts[rod.ActionScrollTop])
	})
}
