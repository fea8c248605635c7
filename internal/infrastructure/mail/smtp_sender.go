// Package mail envía los correos de verificación (código OTP) vía SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/auth"
	"github.com/tu-usuario/banco-alimentos-api/pkg/config"
)

var _ auth.MailSender = (*SMTPSender)(nil)

// SMTPSender implementa auth.MailSender sobre SMTP.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender construye el sender con la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendOTP envía el código de verificación al email del usuario.
func (s *SMTPSender) SendOTP(ctx context.Context, to, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("mail: from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail: to: %w", err)
	}
	msg.Subject("Código de verificación")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Tu código de verificación es: %s\n\nExpira en 10 minutos.", code))

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.User),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("mail: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: enviar: %w", err)
	}
	return nil
}
