package pbx

// SystemInfo is the normalized status report for a deployed phone system,
// shaped for the dashboard regardless of whether it came from a live query
// or the simulator.
type SystemInfo struct {
	Version        string  `json:"version"`
	LicenseSize    string  `json:"licenseSize"`
	UserCount      int     `json:"userCount"`
	BackupStatus   string  `json:"backupStatus"`
	FirewallStatus string  `json:"firewallStatus"`
	Hardware       []Phone `json:"hardware"`
}

// Phone is a provisioned handset reported by the system.
type Phone struct {
	Model    string `json:"model"`
	Firmware string `json:"firmware"`
	MAC      string `json:"mac"`
}

// systemStatus mirrors the relevant fields of the 3CX /api/SystemStatus
// response.
type systemStatus struct {
	Version          string        `json:"Version"`
	MaxSimCalls      string        `json:"MaxSimCalls"`
	ExtensionCount   int           `json:"ExtensionCount"`
	BackupConfigured bool          `json:"BackupConfigured"`
	FirewallEnabled  bool          `json:"FirewallEnabled"`
	Phones           []statusPhone `json:"Phones"`
}

type statusPhone struct {
	Model    string `json:"Model"`
	Firmware string `json:"Firmware"`
	MAC      string `json:"Mac"`
}

const (
	statusEnabled  = "✅ Enabled"
	statusDisabled = "⚠️ Disabled"

	// defaults when the upstream omits fields, matching what 3CX v18
	// installs report
	defaultVersion     = "18.0.5.418"
	defaultLicenseSize = "8SC"
)
