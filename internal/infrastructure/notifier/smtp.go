package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/inkwellbooks/bookshop-order-service/internal/config"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
)

// SMTPNotifier sends the order confirmation mail. Best-effort: the caller
// logs failures and moves on.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier {
	return &SMTPNotifier{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *SMTPNotifier) SendOrderConfirmation(_ context.Context, order *domain.Order) error {
	if order.ContactEmail == "" {
		return fmt.Errorf("order %s has no contact email", order.OrderNo)
	}

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	subject := fmt.Sprintf("Order %s confirmed", order.OrderNo)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nWe received your payment of %d for order %s. We'll let you know once it ships.\r\n",
		order.RecipientName, order.FinalAmount, order.OrderNo,
	)

	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + order.ContactEmail + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, s.from, []string{order.ContactEmail}, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
