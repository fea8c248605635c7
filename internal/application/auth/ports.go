package auth

import "context"

// MailSender puerto para el envío del código de verificación por email.
type MailSender interface {
	SendOTP(ctx context.Context, to, code string) error
}
