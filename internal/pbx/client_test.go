package pbx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSystemStatus_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/SystemStatus", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "hunter2", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Version": "18.0.7.100",
			"MaxSimCalls": "16SC",
			"ExtensionCount": 23,
			"BackupConfigured": true,
			"FirewallEnabled": false,
			"Phones": [
				{"Model": "Yealink T54W", "Firmware": "96.86.0.23", "Mac": "00:15:65:aa:bb:cc"}
			]
		}`))
	}))
	defer server.Close()

	info, err := NewClient().FetchSystemStatus(context.Background(), server.URL, "admin", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "18.0.7.100", info.Version)
	assert.Equal(t, "16SC", info.LicenseSize)
	assert.Equal(t, 23, info.UserCount)
	assert.Equal(t, statusEnabled, info.BackupStatus)
	assert.Equal(t, statusDisabled, info.FirewallStatus)
	require.Len(t, info.Hardware, 1)
	assert.Equal(t, "Yealink T54W", info.Hardware[0].Model)
}

func TestFetchSystemStatus_TrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/SystemStatus", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewClient().FetchSystemStatus(context.Background(), server.URL+"/", "admin", "pw")

	assert.NoError(t, err)
}

func TestFetchSystemStatus_DefaultsForMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ExtensionCount": 5}`))
	}))
	defer server.Close()

	info, err := NewClient().FetchSystemStatus(context.Background(), server.URL, "admin", "pw")

	require.NoError(t, err)
	assert.Equal(t, defaultVersion, info.Version)
	assert.Equal(t, defaultLicenseSize, info.LicenseSize)
	assert.NotNil(t, info.Hardware, "hardware should marshal as [] not null")
}

func TestFetchSystemStatus_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient().FetchSystemStatus(context.Background(), server.URL, "admin", "wrong")

	assert.Error(t, err)
}

func TestFetchSystemStatus_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewClient().FetchSystemStatus(context.Background(), server.URL, "admin", "pw")

	assert.Error(t, err)
}

func TestSimulate_Invariants(t *testing.T) {
	for i := 0; i < 50; i++ {
		info := Simulate()

		assert.NotEmpty(t, info.Version)
		assert.Contains(t, simulatedLicenseSizes, info.LicenseSize)
		assert.GreaterOrEqual(t, info.UserCount, 5)
		assert.Contains(t, []string{statusEnabled, statusDisabled}, info.BackupStatus)
		assert.Equal(t, statusEnabled, info.FirewallStatus)

		require.Len(t, info.Hardware, 2)
		for _, phone := range info.Hardware {
			assert.NotEmpty(t, phone.Model)
			assert.NotEmpty(t, phone.Firmware)
			assert.Len(t, phone.MAC, 17)
		}
	}
}
