package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
)

// IsNotFound reports whether err denotes a resource that does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *scaleway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "404") {
		return true
	}
	return false
}
