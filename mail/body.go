package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/baskervilski/invoicer"
)

// Subject returns the email subject line for an invoice.
func Subject(inv *invoicer.Invoice) string {
	return fmt.Sprintf("Invoice %s - %s Services", inv.Number, inv.Period)
}

var bodyTemplate = template.Must(template.New("invoice_email").Parse(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2E86AB;">Invoice for {{.Period}} Services</h2>

        <p>Dear {{.ClientName}},</p>

        <p>I hope this email finds you well. Please find attached the invoice for the consulting services provided during <strong>{{.Period}}</strong>.</p>

        <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #2E86AB; margin: 20px 0;">
            <p style="margin: 0;"><strong>Invoice Details:</strong></p>
            <ul style="margin: 10px 0;">
                <li>Invoice Number: <strong>{{.Number}}</strong></li>
                <li>Total Amount Due: <strong>{{.Total}}</strong></li>
                <li>Payment Terms: Net 30 days</li>
            </ul>
        </div>

        <p>The invoice includes detailed information about the days worked, hours, and rates. Please reference the invoice number when making payment.</p>

        <p>If you have any questions about this invoice, please don't hesitate to reach out.</p>

        <p>Thank you for your continued business.</p>

        <p>Best regards,<br>
        <strong>{{.CompanyName}}</strong><br>
        {{.CompanyEmail}}<br>
        {{.CompanyPhone}}</p>
    </div>
</body>
</html>
`))

// InvoiceBody builds the HTML email body for an invoice.
func InvoiceBody(inv *invoicer.Invoice) (string, error) {
	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, map[string]string{
		"ClientName":   inv.Client.Name,
		"Number":       inv.Number,
		"Total":        inv.Total().Round().String(),
		"Period":       inv.Period.String(),
		"CompanyName":  inv.Company.Name,
		"CompanyEmail": inv.Company.Email,
		"CompanyPhone": inv.Company.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("mail: rendering body: %w", err)
	}
	return buf.String(), nil
}
