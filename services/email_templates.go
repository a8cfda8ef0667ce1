package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Anderson413366/anderson-cleaning-sub001/models"
)

// Notification is a rendered email pair ready for dispatch
type Notification struct {
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Form field values reach these templates already escaped by the sanitizer,
// so they are injected as-is rather than escaped a second time.
var templateFuncs = template.FuncMap{
	"safe": func(s string) template.HTML { return template.HTML(s) },
}

var leadEmailTemplate = template.Must(template.New("lead").Funcs(templateFuncs).Parse(`
<h2>{{.Heading}}</h2>
<table cellpadding="6" cellspacing="0" border="0">
{{range .Rows}}<tr><td><strong>{{.Label}}:</strong></td><td>{{safe .Value}}</td></tr>
{{end}}</table>
<p style="color:#888;font-size:12px">Submitted from {{safe .SourcePage}} ({{.IPAddress}})</p>
`))

type emailRow struct {
	Label string
	Value string
}

type emailData struct {
	Heading    string
	Rows       []emailRow
	SourcePage string
	IPAddress  string
}

// renderLeadEmail produces the HTML and plaintext bodies for a lead email
func renderLeadEmail(data emailData) (html, text string, err error) {
	var buf bytes.Buffer
	if err := leadEmailTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}

	var textBuf bytes.Buffer
	fmt.Fprintf(&textBuf, "%s\n\n", data.Heading)
	for _, row := range data.Rows {
		fmt.Fprintf(&textBuf, "%s: %s\n", row.Label, row.Value)
	}
	if data.SourcePage != "" {
		fmt.Fprintf(&textBuf, "\nSubmitted from %s (%s)\n", data.SourcePage, data.IPAddress)
	}

	return buf.String(), textBuf.String(), nil
}

// RenderQuickQuoteEmail renders the notification for a quick-quote lead
func RenderQuickQuoteEmail(form *models.QuickQuoteForm, meta models.RequestMeta) (Notification, error) {
	rows := []emailRow{
		{"Name", form.Name},
		{"Email", form.Email},
		{"Phone", form.Phone},
		{"Facility Type", form.FacilityType},
	}
	if form.Company != "" {
		rows = append(rows, emailRow{"Company", form.Company})
	}

	html, text, err := renderLeadEmail(emailData{
		Heading:    "New Quick Quote Lead",
		Rows:       rows,
		SourcePage: meta.SourcePage,
		IPAddress:  meta.IPAddress,
	})
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		Subject: fmt.Sprintf("Quick Quote Lead: %s", form.Name),
		HTML:    html,
		Text:    text,
		ReplyTo: form.Email,
	}, nil
}

// RenderContactEmail renders the notification for a contact form message
func RenderContactEmail(form *models.ContactForm, meta models.RequestMeta) (Notification, error) {
	rows := []emailRow{
		{"Name", form.Name},
		{"Email", form.Email},
		{"Phone", form.Phone},
	}
	if form.Company != "" {
		rows = append(rows, emailRow{"Company", form.Company})
	}
	rows = append(rows, emailRow{"Message", form.Message})

	html, text, err := renderLeadEmail(emailData{
		Heading:    "New Contact Form Message",
		Rows:       rows,
		SourcePage: meta.SourcePage,
		IPAddress:  meta.IPAddress,
	})
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		Subject: fmt.Sprintf("Contact Form: %s", form.Name),
		HTML:    html,
		Text:    text,
		ReplyTo: form.Email,
	}, nil
}

// RenderQuoteEmail renders the notification for a full quote request
func RenderQuoteEmail(form *models.QuoteForm, meta models.RequestMeta) (Notification, error) {
	rows := []emailRow{
		{"Name", form.FullName},
		{"Company", form.Company},
		{"Email", form.Email},
		{"Phone", form.Phone},
		{"Address", fmt.Sprintf("%s, %s %s", form.Address, form.City, form.ZipCode)},
		{"Facility Type", form.FacilityType},
		{"Cleaning Frequency", form.CleaningFrequency},
	}
	if form.SquareFootage > 0 {
		rows = append(rows, emailRow{"Square Footage", fmt.Sprintf("%d", form.SquareFootage)})
	}
	if form.SpecialRequests != "" {
		rows = append(rows, emailRow{"Special Requests", form.SpecialRequests})
	}

	html, text, err := renderLeadEmail(emailData{
		Heading:    "New Quote Request",
		Rows:       rows,
		SourcePage: meta.SourcePage,
		IPAddress:  meta.IPAddress,
	})
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		Subject: fmt.Sprintf("Quote Request: %s", form.FullName),
		HTML:    html,
		Text:    text,
		ReplyTo: form.Email,
	}, nil
}
