package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartichka.link/pkg/validation"
)

func stateWithValidIntro() *State {
	st := NewState()
	st.Card.Receiver = "Мария"
	st.Card.Sender = "Иван"
	st.Card.Title = "Честит празник"
	return st
}

func TestNewState(t *testing.T) {
	st := NewState()

	assert.Equal(t, StepIntro, st.Stepper.InitialStep)
	assert.Equal(t, StepIntro, st.Stepper.CurrentStep)
	assert.Equal(t, StepReview, st.Stepper.FinalStep)
	assert.Equal(t, TotalSteps, st.Stepper.Steps)
	assert.False(t, st.Stepper.IsSubmitting)
	assert.NotNil(t, st.Stepper.ValidationErrors)

	// Инвариантът важи от самото начало.
	assert.LessOrEqual(t, st.Stepper.InitialStep, st.Stepper.CurrentStep)
	assert.LessOrEqual(t, st.Stepper.CurrentStep, st.Stepper.FinalStep)
	assert.LessOrEqual(t, st.Stepper.FinalStep, st.Stepper.Steps)
}

func TestHandleStepEventNext(t *testing.T) {
	t.Run("advances on valid step", func(t *testing.T) {
		st := stateWithValidIntro()

		result, err := HandleStepEvent(st, EventNext, TotalSteps, StepIntro, nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, st.Stepper.CurrentStep)
	})

	t.Run("validation failure leaves currentStep unchanged", func(t *testing.T) {
		st := NewState() // празна чернова, стъпка 1 не минава

		result, err := HandleStepEvent(st, EventNext, TotalSteps, StepIntro, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, StepIntro, st.Stepper.CurrentStep)
		require.NotNil(t, result.ValidationResult)
		assert.Contains(t, result.ValidationResult.Errors, "receiver")
		assert.NotEmpty(t, result.ErrorMessage)
		// Грешките остават в състоянието за показване.
		assert.Contains(t, st.Stepper.ValidationErrors, "receiver")
	})

	t.Run("validates the current step, not the target", func(t *testing.T) {
		st := stateWithValidIntro()
		st.Stepper.CurrentStep = StepDesign // без избран шаблон

		result, err := HandleStepEvent(st, EventNext, TotalSteps, StepIntro, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, StepDesign, st.Stepper.CurrentStep)
	})

	t.Run("saturates at the final step even on repeated calls", func(t *testing.T) {
		st := stateWithValidIntro()
		st.Card.TemplateID = 1
		st.Stepper.CurrentStep = TotalSteps

		for i := 0; i < 3; i++ {
			result, err := HandleStepEvent(st, EventNext, TotalSteps, StepIntro, nil)
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, TotalSteps, st.Stepper.CurrentStep)
		}
	})
}

func TestHandleStepEventPrev(t *testing.T) {
	t.Run("moves back without validation", func(t *testing.T) {
		st := NewState() // черновата е празна, но prev не валидира
		st.Stepper.CurrentStep = 3

		result, err := HandleStepEvent(st, EventPrev, TotalSteps, StepIntro, nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, st.Stepper.CurrentStep)
	})

	t.Run("saturates at the initial step", func(t *testing.T) {
		st := NewState()

		for i := 0; i < 3; i++ {
			result, err := HandleStepEvent(st, EventPrev, TotalSteps, StepIntro, nil)
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, StepIntro, st.Stepper.CurrentStep)
		}
	})
}

func TestHandleStepEventSubmit(t *testing.T) {
	t.Run("validates without advancing", func(t *testing.T) {
		st := stateWithValidIntro()
		st.Card.TemplateID = 1
		st.Stepper.CurrentStep = StepReview

		result, err := HandleStepEvent(st, EventSubmit, TotalSteps, StepIntro, nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, StepReview, st.Stepper.CurrentStep)
	})

	t.Run("requested physical copy is re-validated", func(t *testing.T) {
		st := stateWithValidIntro()
		st.Stepper.CurrentStep = StepReview

		result, err := HandleStepEvent(st, EventSubmit, TotalSteps, StepIntro,
			&validation.PhysicalCopyData{Requested: true})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, st.Stepper.ValidationErrors, "address")
	})
}

func TestHandleStepEventUnknown(t *testing.T) {
	st := NewState()

	_, err := HandleStepEvent(st, "jump", TotalSteps, StepIntro, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStepEvent)
	assert.Contains(t, err.Error(), "jump")
	assert.Equal(t, StepIntro, st.Stepper.CurrentStep)
}

func TestStateReset(t *testing.T) {
	st := stateWithValidIntro()
	st.Card.TemplateID = 5
	st.Stepper.CurrentStep = 3
	st.Stepper.IsSubmitting = true
	st.Stepper.ValidationErrors["title"] = "x"

	st.Reset()

	assert.Equal(t, CardDraft{}, st.Card)
	assert.Equal(t, StepIntro, st.Stepper.CurrentStep)
	assert.False(t, st.Stepper.IsSubmitting)
	assert.Empty(t, st.Stepper.ValidationErrors)
}
