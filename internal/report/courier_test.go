package report

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierDisabled(t *testing.T) {
	t.Parallel()

	c := NewCourier("", time.Second)
	assert.False(t, c.Enabled())
	assert.Error(t, c.Send(context.Background(), testReading(t, "Ada")))

	var nilCourier *Courier
	assert.False(t, nilCourier.Enabled())
}

func TestCourierSend(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewCourier(srv.URL, 2*time.Second)
	defer c.client.CloseIdleConnections()
	require.True(t, c.Enabled())

	reading := testReading(t, "Ada")
	require.NoError(t, c.Send(context.Background(), reading))

	// The wire payload carries the contract field names.
	assert.Equal(t, "Ada", got["playerName"])
	assert.Equal(t, reading.OutcomeTitle, got["outcomeTitle"])
	assert.Len(t, got["outcomePoemLines"], 4)
	assert.NotEmpty(t, got["perQuestionAnswers"])
	analysis, ok := got["analysis"].(map[string]interface{})
	require.True(t, ok, "analysis must be an object")
	for _, field := range []string{
		"trustLevel", "attachment", "emotionalTone", "comfortInSilence",
		"importance", "rawMemory", "emotionWord", "unspokenThought", "hiddenValues",
	} {
		assert.Contains(t, analysis, field)
	}
}

func TestCourierEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCourier(srv.URL, 2*time.Second)
	defer c.client.CloseIdleConnections()

	err := c.Send(context.Background(), testReading(t, "Ada"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestCourierRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect and
		// cancel the request context; otherwise srv.Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewCourier(srv.URL, 5*time.Second)
	defer c.client.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, c.Send(ctx, testReading(t, "Ada")))
}

func TestSendStateGating(t *testing.T) {
	t.Parallel()

	assert.True(t, SendIdle.CanSend())
	assert.True(t, SendFailed.CanSend(), "a failure re-enables the affordance")
	assert.False(t, SendPending.CanSend(), "no concurrent sends")
	assert.False(t, SendSucceeded.CanSend(), "success disables sending for good")

	assert.Equal(t, "sent", SendSucceeded.String())
	assert.Equal(t, "failed", SendFailed.String())
}
