package system

import "github.com/pbxops/server/internal/pbx"

// FetchInfoRequest identifies the phone system to query and the credentials
// for its status API.
type FetchInfoRequest struct {
	SystemURL string `json:"systemUrl" binding:"required,url"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// FetchInfoResponse carries the status report. Simulated is set when the
// live query failed and the data is generated.
type FetchInfoResponse struct {
	Success   bool            `json:"success"`
	Simulated bool            `json:"simulated,omitempty"`
	Data      *pbx.SystemInfo `json:"data"`
}
