package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baskervilski/invoicer"
)

func configuredSender(t *testing.T, status int, got *graphPayload) *Sender {
	t.Helper()

	token := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(token.Close)

	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.WriteHeader(status)
		if status != http.StatusAccepted {
			w.Write([]byte(`{"error":{"message":"denied"}}`))
		}
	}))
	t.Cleanup(graph.Close)

	s := NewSender(invoicer.Config{Mail: invoicer.MailSettings{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TenantID:     "tenant-id",
		Sender:       "me@example.com",
	}})
	s.tokenURL = token.URL
	s.graphURL = graph.URL
	return s
}

func TestSend(t *testing.T) {
	attachment := filepath.Join(t.TempDir(), "Invoice_INV-202410-ACM.pdf")
	require.NoError(t, os.WriteFile(attachment, []byte("%PDF-1.4 fake"), 0o644))

	var got graphPayload
	s := configuredSender(t, http.StatusAccepted, &got)

	err := s.Send(context.Background(), Message{
		To:             "billing@acme.example",
		Subject:        "Invoice INV-202410-ACM - Acme Corporation Services",
		HTMLBody:       "<html><body>hello</body></html>",
		AttachmentPath: attachment,
	})
	require.NoError(t, err)

	assert.Equal(t, "Invoice INV-202410-ACM - Acme Corporation Services", got.Message.Subject)
	assert.Equal(t, "HTML", got.Message.Body.ContentType)
	require.Len(t, got.Message.ToRecipients, 1)
	assert.Equal(t, "billing@acme.example", got.Message.ToRecipients[0].EmailAddress.Address)

	require.Len(t, got.Message.Attachments, 1)
	att := got.Message.Attachments[0]
	assert.Equal(t, "#microsoft.graph.fileAttachment", att.ODataType)
	assert.Equal(t, "Invoice_INV-202410-ACM.pdf", att.Name)
	assert.Equal(t, "application/pdf", att.ContentType)
	decoded, err := base64.StdEncoding.DecodeString(att.ContentBytes)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(decoded))
}

func TestSendWithoutAttachment(t *testing.T) {
	var got graphPayload
	s := configuredSender(t, http.StatusAccepted, &got)

	err := s.Send(context.Background(), Message{
		To:       "billing@acme.example",
		Subject:  "Invoice",
		HTMLBody: "<p>hi</p>",
	})
	require.NoError(t, err)
	assert.Empty(t, got.Message.Attachments)
}

func TestSendFailure(t *testing.T) {
	s := configuredSender(t, http.StatusForbidden, nil)

	err := s.Send(context.Background(), Message{To: "x@y.example", Subject: "s", HTMLBody: "b"})
	var derr *DispatchError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, http.StatusForbidden, derr.StatusCode)
	assert.Contains(t, derr.Body, "denied")
}

func TestSendNotConfigured(t *testing.T) {
	s := NewSender(invoicer.Config{})
	assert.False(t, s.Configured())
	assert.ErrorIs(t, s.Send(context.Background(), Message{To: "x@y.example"}), ErrNotConfigured)
}

func TestSendMissingAttachment(t *testing.T) {
	s := configuredSender(t, http.StatusAccepted, nil)
	err := s.Send(context.Background(), Message{
		To:             "x@y.example",
		AttachmentPath: filepath.Join(t.TempDir(), "nope.pdf"),
	})
	assert.Error(t, err)
}

func TestSubjectAndBody(t *testing.T) {
	inv := &invoicer.Invoice{
		Number:  "INV-202410-ACM",
		Date:    invoicer.NewDate(2024, time.October, 31),
		Period:  invoicer.Period{Year: 2024, Month: time.October},
		Company: invoicer.CompanyInfo{Name: "Example Consulting", Email: "me@example.com"},
		Client:  invoicer.ClientRecord{Name: "Acme Corporation", Email: "billing@acme.example"},
	}

	assert.Equal(t, "Invoice INV-202410-ACM - October 2024 Services", Subject(inv))

	body, err := InvoiceBody(inv)
	require.NoError(t, err)
	assert.Contains(t, body, "INV-202410-ACM")
	assert.Contains(t, body, "Acme Corporation")
	assert.Contains(t, body, "October 2024")
}
