package wazuh

import "encoding/json"

// Wire schemas for the three Wazuh API responses this bridge consumes.
// Fields are extracted through typed structs so a missing field fails with a
// named MissingFieldError instead of a silent zero value.

// authResponse is the body of GET /security/user/authenticate.
type authResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

// agentsResponse is the body of GET /agents. AffectedItems is kept raw so the
// records reach the caller byte-for-byte: order as received, keys unreordered,
// non-ASCII untouched.
type agentsResponse struct {
	Data struct {
		AffectedItems json.RawMessage `json:"affected_items"`
	} `json:"data"`
}

// summaryResponse is the body of GET /agents/summary/status. Data is the raw
// counter mapping (e.g. {"active": 5, "disconnected": 1}).
type summaryResponse struct {
	Data json.RawMessage `json:"data"`
}
