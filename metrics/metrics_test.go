package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pure-golang/mailchannels/mail"
	"github.com/pure-golang/mailchannels/mail/mailchannels"
)

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Port: 9090}.Enabled())
}

func TestNewHttpServer(t *testing.T) {
	server := NewHttpServer(Config{Host: "127.0.0.1", Port: 8080, HttpServerReadTimeout: 15})

	assert.Equal(t, "127.0.0.1:8080", server.Addr)
	assert.Equal(t, 15*time.Second, server.ReadTimeout)
}

func TestMetrics_CloseWithoutStart(t *testing.T) {
	m := New(Config{Host: "127.0.0.1", Port: 9090})

	assert.NoError(t, m.Close())
}

func TestMetrics_ExposesSendMetrics(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}

	m := New(Config{Host: "127.0.0.1", Port: 0, HttpServerReadTimeout: 5})
	require.NoError(t, m.Start())
	defer m.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer api.Close()

	sender := mailchannels.NewSender(mailchannels.Config{Endpoint: api.URL}, &mailchannels.SenderOptions{HTTPClient: api.Client()})
	err := sender.Send(context.Background(), mail.Email{
		Envelope: mail.Envelope{
			From:    mail.Address("x@y.com"),
			To:      mail.Address("a@b.com"),
			Subject: "Hi",
		},
		Text: "Body",
	})
	require.NoError(t, err)

	scrape := httptest.NewServer(NewHttpServer(Config{}).Handler)
	defer scrape.Close()

	resp, err := http.Get(scrape.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "mailchannels_send_count")
	assert.Contains(t, string(body), `status="delivered"`)
}
