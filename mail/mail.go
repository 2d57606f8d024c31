// Package mail dispatches rendered invoices by email through the Microsoft
// Graph API. OAuth2 token acquisition and transport security are delegated to
// golang.org/x/oauth2; this package only builds the message payload and
// surfaces the API's success or failure signal unchanged. There is no retry.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/baskervilski/invoicer"
)

const defaultGraphURL = "https://graph.microsoft.com/v1.0"

// ErrNotConfigured is returned when the Graph credentials are absent or still
// sample placeholders. Missing mail configuration never fails the rest of the
// application; callers check Configured before offering to send.
var ErrNotConfigured = errors.New("mail: Microsoft Graph credentials not configured")

// DispatchError is the collaborator's failure signal, surfaced as-is.
type DispatchError struct {
	StatusCode int
	Body       string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("mail: send failed with status %d: %s", e.StatusCode, e.Body)
}

// Message is one outgoing invoice email.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentPath string // optional PDF attachment
}

// Sender submits messages through the Graph sendMail endpoint using the
// client-credentials flow.
type Sender struct {
	settings invoicer.MailSettings

	// overridable in tests
	tokenURL string
	graphURL string
}

// NewSender builds a sender from the application configuration. It never
// fails: an unconfigured sender reports Configured() == false and returns
// ErrNotConfigured from Send.
func NewSender(cfg invoicer.Config) *Sender {
	return &Sender{
		settings: cfg.Mail,
		tokenURL: fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.Mail.TenantID),
		graphURL: defaultGraphURL,
	}
}

// Configured reports whether the sender has full credentials.
func (s *Sender) Configured() bool { return s.settings.Configured() }

// Send submits the message. A 202 from Graph is success; any other status is
// a DispatchError. The access token is acquired (or refreshed) on demand by
// the underlying token source.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	payload, err := s.buildPayload(msg)
	if err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mail: encoding message: %w", err)
	}

	cc := clientcredentials.Config{
		ClientID:     s.settings.ClientID,
		ClientSecret: s.settings.ClientSecret,
		TokenURL:     s.tokenURL,
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}
	client := cc.Client(ctx)

	endpoint := fmt.Sprintf("%s/users/%s/sendMail", s.graphURL, url.PathEscape(s.settings.Sender))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mail: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("sending invoice email", "to", msg.To, "subject", msg.Subject)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: sending: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &DispatchError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}
	return nil
}

// graph message payload, shaped as the sendMail endpoint expects it

type graphPayload struct {
	Message graphMessage `json:"message"`
}

type graphMessage struct {
	Subject      string            `json:"subject"`
	Body         graphBody         `json:"body"`
	ToRecipients []graphRecipient  `json:"toRecipients"`
	Attachments  []graphAttachment `json:"attachments,omitempty"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphRecipient struct {
	EmailAddress graphAddress `json:"emailAddress"`
}

type graphAddress struct {
	Address string `json:"address"`
}

type graphAttachment struct {
	ODataType    string `json:"@odata.type"`
	Name         string `json:"name"`
	ContentType  string `json:"contentType"`
	ContentBytes string `json:"contentBytes"`
}

func (s *Sender) buildPayload(msg Message) (*graphPayload, error) {
	p := &graphPayload{
		Message: graphMessage{
			Subject:      msg.Subject,
			Body:         graphBody{ContentType: "HTML", Content: msg.HTMLBody},
			ToRecipients: []graphRecipient{{EmailAddress: graphAddress{Address: msg.To}}},
		},
	}
	if msg.AttachmentPath != "" {
		att, err := fileAttachment(msg.AttachmentPath)
		if err != nil {
			return nil, err
		}
		p.Message.Attachments = []graphAttachment{att}
	}
	return p, nil
}

func fileAttachment(path string) (graphAttachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return graphAttachment{}, fmt.Errorf("mail: reading attachment: %w", err)
	}
	return graphAttachment{
		ODataType:    "#microsoft.graph.fileAttachment",
		Name:         filepath.Base(path),
		ContentType:  contentTypeFor(path),
		ContentBytes: base64.StdEncoding.EncodeToString(content),
	}, nil
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".html":
		return "text/html"
	default:
		return "application/octet-stream"
	}
}
