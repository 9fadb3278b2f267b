package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
)

// HandleLicenseIssue returns a handler that requests a key from the license
// collaborator. Validity is in days; 9999 means perpetual.
func HandleLicenseIssue(app *pocketbase.PocketBase, issuer services.LicenseIssuer) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if issuer == nil {
			return e.String(http.StatusServiceUnavailable, "License issuing is not configured")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form")
		}

		identity := strings.TrimSpace(e.Request.FormValue("identity"))
		validityDays, err := strconv.Atoi(e.Request.FormValue("validity_days"))
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid validity days")
		}

		key, err := services.IssueLicense(issuer, identity, validityDays)
		switch {
		case errors.Is(err, services.ErrInvalidLicenseRequest):
			return e.String(http.StatusBadRequest, "Invalid license request")
		case err != nil:
			log.Printf("license: issuer failed for %q: %v", identity, err)
			return e.String(http.StatusBadGateway, "License issuing failed")
		}

		return e.JSON(http.StatusOK, map[string]string{"key": key})
	}
}
