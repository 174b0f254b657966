package utils

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"github.com/Kariqs/bites-api/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var receiptTemplate = template.Must(template.ParseFS(templateFS, "templates/receipt.html"))

type EmailLine struct {
	Name     string
	Quantity int
	Amount   string
	Subtotal string
	AddOns   []EmailLine
}

type ReceiptEmailData struct {
	HotelName     string
	ReceiptID     string
	OrderID       string
	PaymentMethod string
	GeneratedAt   string
	Lines         []EmailLine
	Total         string
}

// NewReceiptEmailData flattens a receipt into the values the e-mail template prints.
func NewReceiptEmailData(receipt models.Receipt) ReceiptEmailData {
	data := ReceiptEmailData{
		HotelName:   receipt.HotelName,
		ReceiptID:   receipt.ID,
		GeneratedAt: receipt.GeneratedAt.Format("02 Jan 2006 15:04"),
	}
	if receipt.Order == nil {
		data.Total = FormatCurrency(0)
		return data
	}

	data.OrderID = receipt.Order.ID
	data.PaymentMethod = string(receipt.Order.PaymentMethod)
	data.Total = FormatCurrency(receipt.Order.Total)
	for _, item := range receipt.Order.Items {
		line := EmailLine{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Amount:   FormatCurrency(item.Product.Price * float64(item.Quantity)),
			Subtotal: FormatCurrency(item.Subtotal()),
		}
		for _, selected := range item.AddOns {
			line.AddOns = append(line.AddOns, EmailLine{
				Name:     selected.AddOn.Name,
				Quantity: selected.Quantity,
				Amount:   FormatCurrency(selected.AddOn.Price * float64(selected.Quantity)),
			})
		}
		data.Lines = append(data.Lines, line)
	}
	return data
}

func RenderReceiptEmail(receipt models.Receipt) (string, error) {
	var body bytes.Buffer
	if err := receiptTemplate.Execute(&body, NewReceiptEmailData(receipt)); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

// SendEmail delivers an HTML body through the SMTP server configured in the environment.
func SendEmail(emailTo string, emailSubject string, body string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailTo,
		emailSubject,
		body,
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
