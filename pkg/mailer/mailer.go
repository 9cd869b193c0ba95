package mailer

import (
	"fmt"
	"strings"
	"time"

	"shopkart/internal/data/entity"
	"shopkart/pkg/utils"

	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"
)

// Mailer sends transactional email. Constructed once at startup and handed to
// the services that need it; there is no lazily-memoized transport.
type Mailer interface {
	SendOTP(to, name, code string, expiry time.Duration) error
	SendOrderReceipt(to string, user *entity.User, order *entity.Order) error
}

type smtpMailer struct {
	cfg    utils.SMTPConfig
	dialer *mail.Dialer
	log    *zap.Logger
}

func NewSMTPMailer(cfg utils.SMTPConfig, log *zap.Logger) Mailer {
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	dialer.Timeout = 20 * time.Second
	// 465 is implicit TLS; 587/25 negotiate via STARTTLS
	dialer.SSL = cfg.Port == 465

	return &smtpMailer{
		cfg:    cfg,
		dialer: dialer,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendOTP(to, name, code string, expiry time.Duration) error {
	minutes := int(expiry.Minutes())

	subject := "Your ShopKart verification code"
	body := strings.Join([]string{
		fmt.Sprintf("Hi %s,", name),
		"",
		"Use this one-time code to finish creating your ShopKart account:",
		"",
		"    " + spaced(code),
		"",
		fmt.Sprintf("This code expires in %d minutes.", minutes),
		"",
		"If you didn't request this, you can safely ignore this email.",
	}, "\n")

	return m.send(to, subject, body)
}

func (m *smtpMailer) SendOrderReceipt(to string, user *entity.User, order *entity.Order) error {
	subject := fmt.Sprintf("Your ShopKart order %s has been placed", order.Code)

	lines := []string{
		"Order placed successfully!",
		fmt.Sprintf("Order ID: %s", order.Code),
		"",
		"Items:",
	}
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d  %.2f", item.Title, item.Qty, item.Price*float64(item.Qty)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Payment: %s", paymentLabel(order)),
		fmt.Sprintf("Total: %.2f", order.Total),
		"",
		fmt.Sprintf("Deliver to: %s", order.Address.Name),
		order.Address.Line1,
		fmt.Sprintf("%s, %s %s", order.Address.City, order.Address.State, order.Address.Zip),
		fmt.Sprintf("Phone: %s", order.Address.Phone),
	)

	return m.send(to, subject, strings.Join(lines, "\n"))
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func paymentLabel(order *entity.Order) string {
	if order.Mode == entity.PaymentModeUPI {
		upi := ""
		if order.UPIID != nil {
			upi = *order.UPIID
		}
		return fmt.Sprintf("UPI (%s)", upi)
	}
	return "Cash on Delivery"
}

// spaced renders the OTP digits with gaps for readability.
func spaced(code string) string {
	return strings.Join(strings.Split(code, ""), " ")
}
