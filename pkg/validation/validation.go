package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationResult е резултатът от проверка на една стъпка.
// Errors съдържа по едно съобщение за всяко нарушено правило (поле -> текст),
// ErrorMessage е първото събрано съобщение.
type ValidationResult struct {
	Success      bool              `json:"success"`
	Errors       map[string]string `json:"errors,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
}

// FallbackErrorMessage се показва, когато няма конкретно съобщение за поле.
const FallbackErrorMessage = "Моля, попълнете всички задължителни полета правилно."

// IntroStepData са полетата от стъпка 1 (Интро).
type IntroStepData struct {
	Receiver    string `json:"receiver"`
	Sender      string `json:"sender"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DesignStepData са полетата от стъпка 2 (Дизайн).
type DesignStepData struct {
	TemplateID int `json:"templateId"`
}

// PhysicalCopyData са полетата за заявка на физическо копие (стъпка 4).
type PhysicalCopyData struct {
	Requested bool   `json:"requested"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Comment   string `json:"comment"`
}

// CardStepData обединява данните на чернова, нужни за ValidateStep.
type CardStepData struct {
	Receiver    string
	Sender      string
	Title       string
	Description string
	TemplateID  int
}

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

// collector трупа грешки по поле, пазейки първото съобщение стабилно
// в рамките на едно извикване.
type collector struct {
	errors map[string]string
	first  string
}

func (c *collector) add(field, message string) {
	if c.errors == nil {
		c.errors = map[string]string{}
	}
	if _, ok := c.errors[field]; ok {
		return
	}
	c.errors[field] = message
	if c.first == "" {
		c.first = message
	}
}

func (c *collector) result() ValidationResult {
	if len(c.errors) == 0 {
		return ValidationResult{Success: true}
	}
	msg := c.first
	if msg == "" {
		msg = FallbackErrorMessage
	}
	return ValidationResult{Success: false, Errors: c.errors, ErrorMessage: msg}
}

// ValidateIntroStep проверява стъпка 1: получател, подател и заглавие са
// задължителни, описанието е по избор.
func ValidateIntroStep(data IntroStepData) ValidationResult {
	var c collector

	receiver := strings.TrimSpace(data.Receiver)
	if receiver == "" {
		c.add("receiver", "Име на получателя е задължително")
	} else if utf8.RuneCountInString(receiver) > 100 {
		c.add("receiver", "Име на получателя не може да бъде повече от 100 символа")
	}

	sender := strings.TrimSpace(data.Sender)
	if sender == "" {
		c.add("sender", "Вашето име е задължително")
	} else if utf8.RuneCountInString(sender) > 100 {
		c.add("sender", "Вашето име не може да бъде повече от 100 символа")
	}

	title := strings.TrimSpace(data.Title)
	if title == "" {
		c.add("title", "Заглавие е задължително")
	} else if utf8.RuneCountInString(title) > 200 {
		c.add("title", "Заглавие не може да бъде повече от 200 символа")
	}

	if utf8.RuneCountInString(strings.TrimSpace(data.Description)) > 1024 {
		c.add("description", "Описанието не може да бъде повече от 1024 символа")
	}

	return c.result()
}

// ValidateDesignStep проверява стъпка 2: избран шаблон (положително ID).
func ValidateDesignStep(data DesignStepData) ValidationResult {
	var c collector
	if data.TemplateID <= 0 {
		c.add("templateId", "Моля, изберете шаблон за картичката")
	}
	return c.result()
}

// ValidateRecordStep проверява стъпка 3. Записът е по избор,
// така че стъпката винаги е валидна.
func ValidateRecordStep() ValidationResult {
	return ValidationResult{Success: true}
}

// ValidatePhysicalCopy проверява данните за физическо копие.
// Ако копие не е заявено, проверката минава без условия.
func ValidatePhysicalCopy(data PhysicalCopyData) ValidationResult {
	if !data.Requested {
		return ValidationResult{Success: true}
	}

	var c collector

	name := strings.TrimSpace(data.Name)
	if name == "" {
		c.add("name", "Име е задължително")
	} else if utf8.RuneCountInString(name) > 100 {
		c.add("name", "Име не може да бъде повече от 100 символа")
	}

	email := strings.TrimSpace(data.Email)
	if email == "" || !isEmail(email) {
		c.add("email", "Невалиден имейл адрес")
	} else if utf8.RuneCountInString(email) > 255 {
		c.add("email", "Имейл адресът не може да бъде повече от 255 символа")
	}

	phone := strings.TrimSpace(data.Phone)
	switch {
	case phone == "" || !phonePattern.MatchString(phone):
		c.add("phone", "Невалиден телефонен номер. Използвайте само цифри, +, -, () и интервали")
	case utf8.RuneCountInString(phone) < 5:
		c.add("phone", "Телефонният номер трябва да бъде поне 5 символа")
	case utf8.RuneCountInString(phone) > 20:
		c.add("phone", "Телефонният номер не може да бъде повече от 20 символа")
	}

	address := strings.TrimSpace(data.Address)
	if address == "" {
		c.add("address", "Адрес до офис на доставчик е задължителен")
	} else if utf8.RuneCountInString(address) > 200 {
		c.add("address", "Адресът не може да бъде повече от 200 символа")
	}

	if utf8.RuneCountInString(strings.TrimSpace(data.Comment)) > 500 {
		c.add("comment", "Коментарът не може да бъде повече от 500 символа")
	}

	return c.result()
}

// ValidateStep проверява конкретна стъпка по номер.
// Непознат номер на стъпка минава успешно — извикващите не бива да разчитат
// на това за отхвърляне на невалиден вход.
func ValidateStep(step int, card CardStepData, physical *PhysicalCopyData) ValidationResult {
	switch step {
	case 1:
		return ValidateIntroStep(IntroStepData{
			Receiver:    card.Receiver,
			Sender:      card.Sender,
			Title:       card.Title,
			Description: card.Description,
		})
	case 2:
		return ValidateDesignStep(DesignStepData{TemplateID: card.TemplateID})
	case 3:
		return ValidateRecordStep()
	case 4:
		if physical != nil && physical.Requested {
			return ValidatePhysicalCopy(*physical)
		}
		return ValidationResult{Success: true}
	default:
		return ValidationResult{Success: true}
	}
}

// GetFieldError връща съобщението за конкретно поле, ако има такова.
func GetFieldError(result ValidationResult, field string) string {
	return result.Errors[field]
}

// HasFieldError проверява дали полето има грешка.
func HasFieldError(result ValidationResult, field string) bool {
	_, ok := result.Errors[field]
	return ok
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// ParseAddress приема и "Name <a@b>", тук искаме само голия адрес.
	return err == nil && addr.Address == s && strings.Contains(s, ".")
}
