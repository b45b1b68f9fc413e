package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	defaultResendBaseURL = "https://api.resend.com"

	resendTimeout = 10 * time.Second
)

var briefEmailTemplate = template.Must(template.New("brief").Funcs(template.FuncMap{"join": strings.Join}).Parse(`<h2>New consultation request</h2>
<table>
<tr><td><b>Name</b></td><td>{{.FullName}}</td></tr>
<tr><td><b>Organization</b></td><td>{{.Organization}}</td></tr>
<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
<tr><td><b>Project location</b></td><td>{{.ProjectLocation}}</td></tr>
<tr><td><b>Primary interest</b></td><td>{{.PrimaryInterest}}</td></tr>
<tr><td><b>Existing systems</b></td><td>{{join .ExistingSystems ", "}}</td></tr>
<tr><td><b>Nepal Directive 2081</b></td><td>{{if .NepalDirective2081}}yes{{else}}no{{end}}</td></tr>
<tr><td><b>HL7 FHIR</b></td><td>{{if .HL7FHIR}}yes{{else}}no{{end}}</td></tr>
</table>
<h3>Technical brief</h3>
<p>{{.TechnicalBrief}}</p>
<p><small>Brief {{.ID}} received {{.CreatedAt.Format "2006-01-02T15:04:05Z07:00"}}</small></p>
`))

// ResendNotifier e-mails each new brief through the Resend API
type ResendNotifier struct {
	config ResendConfig
	client *resty.Client

	// 2 requests/second with burst capacity of 2, the API's default quota
	limiter *rate.Limiter
}

func NewResendNotifier(cfg ResendConfig) *ResendNotifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultResendBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(resendTimeout).
		SetAuthToken(cfg.APIKey)

	return &ResendNotifier{
		config:  cfg,
		client:  client,
		limiter: rate.NewLimiter(2, 2),
	}
}

func (n *ResendNotifier) NotifyBriefCreated(ctx context.Context, brief *briefs.Brief) error {
	html, err := renderBriefEmail(brief)
	if err != nil {
		return err
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	var result resendResponse

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(resendEmail{
			From:    n.config.From,
			To:      []string{n.config.To},
			Subject: "New Consultation Request: " + brief.Organization,
			HTML:    html,
		}).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	return nil
}

func renderBriefEmail(brief *briefs.Brief) (string, error) {
	var buf bytes.Buffer

	if err := briefEmailTemplate.Execute(&buf, brief); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}

	return buf.String(), nil
}
