package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// SetToast announces a toast notification to the client through the
// HX-Trigger response header. An already-set HX-Trigger value is preserved:
// the toast event is merged into the existing JSON object. A short-lived
// flash cookie carries the same payload across plain 302 redirects, where
// HTMX never sees the trigger header.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}

	triggers := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &triggers); err != nil {
			log.Printf("toast: replacing non-JSON HX-Trigger value: %v", err)
			triggers = map[string]any{}
		}
	}
	triggers["showToast"] = payload

	data, err := json.Marshal(triggers)
	if err != nil {
		log.Printf("toast: could not marshal HX-Trigger: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	if cookieVal, err := json.Marshal(payload); err == nil {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "flash_toast",
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // read by the client toast script
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ErrorToast reports a failure as a toast without letting HTMX swap the
// error text into the report. HX-Reswap: none discards the body client-side
// while the trigger header still fires the toast.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
