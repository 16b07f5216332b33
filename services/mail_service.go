// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"kartichka.link/configs"
	"kartichka.link/configs/configslog"
)

// CardNotification са полетата на известието към оператора и заявителя.
type CardNotification struct {
	To            string // адрес на заявителя на физическо копие
	RecipientName string // получателят на картичката
	SenderName    string
	Title         string
	Description   string
	CardURL       string // публичният линк към картичката

	// Данни за доставка
	Phone   string
	Address string
	Comment string
}

// IMailService е границата към доставчика на транзакционни имейли.
type IMailService interface {
	SendCardNotification(ctx context.Context, n CardNotification) (string, error)
}

// MailService рендерира тялото на писмото и го изпраща през Resend.
type MailService struct {
	client     *resend.Client
	engine     *html.Engine
	appEmail   string
	adminEmail string
}

// NewMailService създава MailService върху подадения template engine.
// Engine-ът трябва да е зареден (Load) преди първото изпращане.
func NewMailService(cfg *configs.AppConfig, engine *html.Engine) IMailService {
	return &MailService{
		client:     resend.NewClient(cfg.ResendAPIKey),
		engine:     engine,
		appEmail:   cfg.AppEmail,
		adminEmail: cfg.AdminEmail,
	}
}

// SendCardNotification рендерира шаблона на писмото и го изпраща.
// "From" адресът винаги е конфигурираният APP_EMAIL, а получателите са
// операторският адрес плюс номиналния "to". Грешка от доставчика се
// логва и се връща — извикващият решава дали тя е фатална.
func (s *MailService) SendCardNotification(ctx context.Context, n CardNotification) (string, error) {
	var body bytes.Buffer
	if err := s.engine.Render(&body, "emails/card_notification", fiber.Map{
		"RecipientName": n.RecipientName,
		"SenderName":    n.SenderName,
		"Title":         n.Title,
		"Description":   n.Description,
		"CardURL":       n.CardURL,
		"Phone":         n.Phone,
		"Address":       n.Address,
		"Comment":       n.Comment,
	}); err != nil {
		configslog.Log.Error("MailService: шаблонът на писмото не се рендерира",
			zap.Int("status", fiber.StatusInternalServerError), zap.Error(err))
		return "", fmt.Errorf("писмото не може да бъде рендерирано: %w", err)
	}

	to := make([]string, 0, 2)
	if s.adminEmail != "" {
		to = append(to, s.adminEmail)
	}
	if n.To != "" && n.To != s.adminEmail {
		to = append(to, n.To)
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.appEmail,
		To:      to,
		Subject: n.Title,
		Html:    body.String(),
	})
	if err != nil {
		configslog.Log.Error("MailService: доставчикът върна грешка",
			zap.Int("status", fiber.StatusInternalServerError), zap.Error(err))
		return "", err
	}

	return sent.Id, nil
}

// Проверка за съответствие с интерфейса
var _ IMailService = (*MailService)(nil)
