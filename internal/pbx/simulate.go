package pbx

import (
	"fmt"
	"math/rand/v2"
)

var simulatedLicenseSizes = []string{"4SC", "8SC", "16SC", "32SC"}

// Simulate produces a plausible status report for demos and for deployments
// whose PBX cannot be reached. The shape matches a live fetch; callers mark
// the response as simulated.
func Simulate() *SystemInfo {
	backup := statusDisabled
	if rand.Float64() > 0.3 {
		backup = statusEnabled
	}

	return &SystemInfo{
		Version:        "18.0.9.312",
		LicenseSize:    simulatedLicenseSizes[rand.IntN(len(simulatedLicenseSizes))],
		UserCount:      rand.IntN(50) + 5,
		BackupStatus:   backup,
		FirewallStatus: statusEnabled,
		Hardware: []Phone{
			{Model: "Yealink T54W", Firmware: "96.86.0.23", MAC: "00:15:65:" + randomMACTail()},
			{Model: "Fanvil X7", Firmware: "2.4.12", MAC: "00:0B:82:" + randomMACTail()},
		},
	}
}

func randomMACTail() string {
	return fmt.Sprintf("%02x:%02x:%02x", rand.IntN(256), rand.IntN(256), rand.IntN(256))
}
