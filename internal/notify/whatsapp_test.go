package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		number, message string
		want            error
	}{
		{" 628123456789 ", " Terima kasih ", nil},
		{"", "hai", ErrEmptyMessage},
		{"628123", "   ", ErrEmptyMessage},
		{"08123456789", "hai", ErrInvalidNumber},
		{"62812-345", "hai", ErrInvalidNumber},
	}
	for _, tt := range tests {
		m, err := Validate(tt.number, tt.message)
		if tt.want == nil {
			require.NoError(t, err)
			assert.Equal(t, Message{Number: "628123456789", Message: "Terima kasih"}, m)
			continue
		}
		assert.ErrorIs(t, err, tt.want, tt.number)
	}
}

func TestSendForwardsUpstreamReply(t *testing.T) {
	var received Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"status":true,"queued":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	defer c.Close()

	reply, err := c.Send(context.Background(), Message{Number: "62811", Message: "Nota TX-A1B2C3D4"})
	require.NoError(t, err)
	assert.Equal(t, Message{Number: "62811", Message: "Nota TX-A1B2C3D4"}, received)
	assert.Equal(t, http.StatusAccepted, reply.StatusCode)
	assert.Equal(t, "application/json", reply.ContentType)
	assert.JSONEq(t, `{"status":true,"queued":1}`, string(reply.Body))
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, 50*time.Millisecond)
	defer c.Close()

	_, err := c.Send(context.Background(), Message{Number: "62811", Message: "hai"})
	assert.Error(t, err)
}
