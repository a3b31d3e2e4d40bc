package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

var geoClient = &http.Client{Timeout: 5 * time.Second}

// GetIPLocation resolves a rough "City, Country" label for an IP address.
// Used to annotate login-attempt audit rows; any failure degrades to
// "Unknown" rather than surfacing an error.
func GetIPLocation(ipAddress string) string {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return "Unknown"
	}
	if ip.IsLoopback() || ip.IsPrivate() {
		return "Local"
	}

	resp, err := geoClient.Get(fmt.Sprintf("http://ip-api.com/json/%s", ipAddress))
	if err != nil {
		return "Unknown"
	}
	defer resp.Body.Close()

	var result struct {
		Country string `json:"country"`
		City    string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "Unknown"
	}

	if result.City != "" && result.Country != "" {
		return fmt.Sprintf("%s, %s", result.City, result.Country)
	}
	return "Unknown"
}
