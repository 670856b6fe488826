// Package lib: functions for the conversion itself (segmenting, CSV, DB) and small URI helpers.
package lib

import (
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"net/url"
	"path/filepath"
	"strings"
)

// GetSchema returns "s3", "az" etc. from the URI. Empty string for a local path.
func GetSchema(uri string) string {
	if uri == common.STDIO || strings.HasPrefix(uri, string(filepath.Separator)) || !strings.Contains(uri, "://") {
		return ""
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "" // Return empty string if parsing fails
	}
	return u.Scheme
}

// GetContainerAndKey splits 's3://bucket/path/to/key' into 'bucket' and 'path/to/key'
func GetContainerAndKey(uri string) (string, string) {
	u, err := url.Parse(uri)
	if err != nil {
		h.Log("ERROR", "GetContainerAndKey - Error parsing URI: "+uri)
		return "", ""
	}
	return u.Host, strings.TrimPrefix(u.Path, "/")
}
