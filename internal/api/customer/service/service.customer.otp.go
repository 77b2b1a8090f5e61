// Package customersvc - OtpMailer gửi mã OTP qua email bằng gomail.
// File: service.customer.otp.go - giữ tên cấu trúc cũ.
package customersvc

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"food_commerce/internal/global"
	"food_commerce/internal/logger"
)

// OtpMailer gửi email chứa mã OTP xác minh tài khoản.
type OtpMailer struct {
	dialer *gomail.Dialer
}

// NewOtpMailer tạo mailer từ cấu hình SMTP của server.
// SMTP_HOST rỗng nghĩa là môi trường dev không có mail server,
// mailer sẽ chỉ log thay vì gửi thật.
func NewOtpMailer() *OtpMailer {
	cfg := global.ServerConfig
	if cfg.SMTP_Host == "" {
		return &OtpMailer{}
	}
	return &OtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password),
	}
}

// SendOtp gửi mã OTP tới một địa chỉ email.
func (m *OtpMailer) SendOtp(toEmail string, otp int) error {
	if m.dialer == nil {
		logger.GetAppLogger().WithField("email", toEmail).Warnf("SMTP chưa cấu hình, bỏ qua gửi OTP %d", otp)
		return nil
	}

	cfg := global.ServerConfig
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", cfg.SMTP_FromEmail, cfg.SMTP_FromName)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Mã xác minh tài khoản")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Mã OTP của bạn là <b>%d</b>. Mã có hiệu lực trong 30 phút.</p>", otp,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("gửi email OTP tới %s thất bại: %w", toEmail, err)
	}
	return nil
}
