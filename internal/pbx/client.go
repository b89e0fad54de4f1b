package pbx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// a status probe that takes longer than this is treated as failed and the
// caller falls back to simulation
const fetchTimeout = 10 * time.Second

// Client queries a customer's phone system over its HTTP status API.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// creates a status client. Outbound probes are throttled so a dashboard
// refresh storm cannot hammer customer PBXes.
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: fetchTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// FetchSystemStatus queries <systemURL>/api/SystemStatus with HTTP basic
// auth and maps the response into a SystemInfo.
func (c *Client) FetchSystemStatus(ctx context.Context, systemURL, username, password string) (*SystemInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("probe throttled: %w", err)
	}

	endpoint := strings.TrimSuffix(systemURL, "/") + "/api/SystemStatus"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}

	req.SetBasicAuth(username, password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query system status: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("system status returned %d", resp.StatusCode)
	}

	var status systemStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode system status: %w", err)
	}

	return mapStatus(&status), nil
}

func mapStatus(status *systemStatus) *SystemInfo {
	info := &SystemInfo{
		Version:        status.Version,
		LicenseSize:    status.MaxSimCalls,
		UserCount:      status.ExtensionCount,
		BackupStatus:   statusDisabled,
		FirewallStatus: statusDisabled,
		Hardware:       []Phone{},
	}

	if info.Version == "" {
		info.Version = defaultVersion
	}

	if info.LicenseSize == "" {
		info.LicenseSize = defaultLicenseSize
	}

	if status.BackupConfigured {
		info.BackupStatus = statusEnabled
	}

	if status.FirewallEnabled {
		info.FirewallStatus = statusEnabled
	}

	for _, p := range status.Phones {
		info.Hardware = append(info.Hardware, Phone{
			Model:    p.Model,
			Firmware: p.Firmware,
			MAC:      p.MAC,
		})
	}

	return info
}
