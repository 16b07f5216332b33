package wizard

import (
	"fmt"

	"kartichka.link/pkg/validation"
)

// Събития на stepper-а.
const (
	EventNext   = "next"
	EventPrev   = "prev"
	EventSubmit = "submit"
)

// ErrUnknownStepEvent се връща при непознато събитие. Това е нарушение на
// програмния контракт, не потребителска грешка.
type StepperError string

func (e StepperError) Error() string { return string(e) }

const ErrUnknownStepEvent StepperError = "непознато събитие на stepper"

// StepperEventResult е резултатът от една заявена транзиция.
type StepperEventResult struct {
	Success          bool                         `json:"success"`
	ValidationResult *validation.ValidationResult `json:"validationResult,omitempty"`
	ErrorMessage     string                       `json:"errorMessage,omitempty"`
}

// HandleStepEvent изпълнява транзиция върху състоянието на wizard-а.
//   - "next": валидира ТЕКУЩАТА стъпка; при успех премества напред,
//     без да надхвърля steps (насища, не превърта).
//   - "prev": без валидация; премества назад, без да слиза под initialStep.
//   - "submit": валидира текущата стъпка, но не мести — самото изпращане
//     е работа на Submission Handler-а.
//
// При неуспешна валидация CurrentStep остава непроменен, а грешките се
// записват в състоянието за показване от клиента.
func HandleStepEvent(st *State, event string, steps, initialStep int, physical *validation.PhysicalCopyData) (StepperEventResult, error) {
	switch event {
	case EventNext:
		result := validateCurrent(st, physical)
		if !result.Success {
			return failure(st, result), nil
		}
		st.Stepper.ValidationErrors = map[string]string{}
		if st.Stepper.CurrentStep != steps {
			st.Stepper.CurrentStep++
		}
		return StepperEventResult{Success: true}, nil

	case EventPrev:
		if st.Stepper.CurrentStep != initialStep {
			st.Stepper.CurrentStep--
		}
		return StepperEventResult{Success: true}, nil

	case EventSubmit:
		result := validateCurrent(st, physical)
		if !result.Success {
			return failure(st, result), nil
		}
		st.Stepper.ValidationErrors = map[string]string{}
		return StepperEventResult{Success: true}, nil

	default:
		return StepperEventResult{}, fmt.Errorf("%w: %s", ErrUnknownStepEvent, event)
	}
}

func validateCurrent(st *State, physical *validation.PhysicalCopyData) validation.ValidationResult {
	return validation.ValidateStep(st.Stepper.CurrentStep, validation.CardStepData{
		Receiver:    st.Card.Receiver,
		Sender:      st.Card.Sender,
		Title:       st.Card.Title,
		Description: st.Card.Description,
		TemplateID:  st.Card.TemplateID,
	}, physical)
}

func failure(st *State, result validation.ValidationResult) StepperEventResult {
	st.Stepper.ValidationErrors = result.Errors
	msg := result.ErrorMessage
	if msg == "" {
		msg = validation.FallbackErrorMessage
	}
	return StepperEventResult{
		Success:          false,
		ValidationResult: &result,
		ErrorMessage:     msg,
	}
}
