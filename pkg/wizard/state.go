package wizard

// CardDraft е черновата на картичката, докато потребителят минава през
// стъпките. Не се записва в базата — Submission Handler-ът създава
// финалния запис, а черновата се нулира.
type CardDraft struct {
	Title       string  `json:"title"`
	Sender      string  `json:"sender"`
	Receiver    string  `json:"receiver"`
	Description string  `json:"description"`
	TemplateID  int     `json:"templateId"`
	Slug        string  `json:"slug"`
	AudioURL    *string `json:"audioUrl"`
	CardUUID    string  `json:"cardUuid"`
}

// StepperState следи позицията и флаговете на wizard-а.
// Инвариант: InitialStep <= CurrentStep <= FinalStep <= Steps.
type StepperState struct {
	InitialStep      int               `json:"initialStep"`
	CurrentStep      int               `json:"currentStep"`
	FinalStep        int               `json:"finalStep"`
	Steps            int               `json:"steps"`
	IsSubmitting     bool              `json:"isSubmitting"`
	IsRendering      bool              `json:"isRendering"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

// State е пълното състояние на wizard-а за една сесия.
type State struct {
	Card    CardDraft    `json:"card"`
	Stepper StepperState `json:"stepper"`
}

// Стъпките на потока за създаване на картичка.
const (
	StepIntro  = 1
	StepDesign = 2
	StepRecord = 3
	StepReview = 4

	TotalSteps = 4
)

// NewState създава нулирано състояние, позиционирано на първата стъпка.
func NewState() *State {
	return &State{
		Stepper: StepperState{
			InitialStep:      StepIntro,
			CurrentStep:      StepIntro,
			FinalStep:        StepReview,
			Steps:            TotalSteps,
			ValidationErrors: map[string]string{},
		},
	}
}

// Reset връща състоянието към началните му стойности (успешно изпращане
// или изоставен поток).
func (s *State) Reset() {
	*s = *NewState()
}
