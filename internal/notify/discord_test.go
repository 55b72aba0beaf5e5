package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert() *PriceAlert {
	return &PriceAlert{
		AnalysisID: "a1b2c3",
		ItemName:   "Nike Air Max 90",
		Brand:      "Nike",
		OldPrice:   50,
		NewPrice:   61.5,
		ChangePct:  23.0,
		Demand:     "High",
		Trend:      "Rising",
		ImageURL:   "https://i.ebayimg.com/images/g/test/s-l500.jpg",
	}
}

func TestDiscordSendPriceAlert(t *testing.T) {
	t.Parallel()

	var got discordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendPriceAlert(context.Background(), testAlert()))

	require.Len(t, got.Embeds, 1)
	embed := got.Embeds[0]
	assert.Equal(t, "Price Move: Nike Air Max 90", embed.Title)
	assert.Equal(t, colorGreen, embed.Color)
	assert.Contains(t, embed.Description, "up 23.0%")
	require.Len(t, embed.Fields, 6)
	assert.Equal(t, "$50.00", embed.Fields[0].Value)
	assert.Equal(t, "$61.50", embed.Fields[1].Value)
	assert.Equal(t, "+23.0%", embed.Fields[2].Value)
	require.NotNil(t, embed.Thumbnail)
}

func TestDiscordSendPriceAlertDrop(t *testing.T) {
	t.Parallel()

	var got discordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	alert := testAlert()
	alert.NewPrice = 40
	alert.ChangePct = -20.0
	alert.ImageURL = ""

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendPriceAlert(context.Background(), alert))

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, colorOrange, got.Embeds[0].Color)
	assert.Contains(t, got.Embeds[0].Description, "down 20.0%")
	assert.Equal(t, "-20.0%", got.Embeds[0].Fields[2].Value)
	assert.Nil(t, got.Embeds[0].Thumbnail)
}

func TestDiscordSendBatchAlert(t *testing.T) {
	t.Parallel()

	var got discordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	alerts := make([]PriceAlert, 12)
	for i := range alerts {
		a := testAlert()
		a.ItemName = fmt.Sprintf("Item %d", i)
		alerts[i] = *a
	}

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendBatchAlert(context.Background(), alerts))

	// 10 embeds plus the overflow footer
	require.Len(t, got.Embeds, 11)
	assert.Contains(t, got.Embeds[10].Title, "2 more price moves")
}

func TestDiscordErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: "429"},
		{name: "server error", status: http.StatusInternalServerError, wantErr: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendPriceAlert(context.Background(), testAlert())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
