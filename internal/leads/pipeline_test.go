package leads

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Exercises the full delivery chain: webhook down, retries exhausted,
// lead captured in the CSV backup, WhatsApp link still produced.
func TestPipelineWebhookDownLandsInCSV(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	forwarder, err := NewWebhookForwarder(srv.URL, 5*time.Second, 3, time.Millisecond)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "leads.csv")
	backup, err := NewCSVBackup(path)
	require.NoError(t, err)

	svc, err := NewService(forwarder, backup, "84901234567", nil, nil)
	require.NoError(t, err)

	result, err := svc.Submit(context.Background(), sampleLead())
	require.NoError(t, err)
	require.Equal(t, StatusWebhookErrorCSVBackup, result.Status)
	require.Contains(t, result.WhatsAppURL, "wa.me/84901234567")
	require.EqualValues(t, 3, calls.Load())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "maya@greencafe.example", rows[1][4])
}

func TestPipelineWebhookRecoversMidRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	forwarder, err := NewWebhookForwarder(srv.URL, 5*time.Second, 3, time.Millisecond)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "leads.csv")
	backup, err := NewCSVBackup(path)
	require.NoError(t, err)

	svc, err := NewService(forwarder, backup, "84901234567", nil, nil)
	require.NoError(t, err)

	result, err := svc.Submit(context.Background(), sampleLead())
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, result.Status)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "backup written despite webhook success")
}
