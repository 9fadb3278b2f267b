package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleGroupToggleSecurity returns a handler that flips a group's
// security-cost flag and re-renders the report fragment. The report is fully
// recomputed from the mutated snapshot; there is no incremental update path.
func HandleGroupToggleSecurity(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		groupID := e.Request.PathValue("groupId")

		group, err := app.FindRecordById("work_groups", groupID)
		if err != nil {
			return e.String(http.StatusNotFound, "Group not found")
		}
		if group.GetString("document") != documentID {
			return e.String(http.StatusNotFound, "Group not in this document")
		}

		group.Set("is_security_cost", !group.GetBool("is_security_cost"))
		if err := app.Save(group); err != nil {
			log.Printf("group_toggle: could not save group %s: %v", groupID, err)
			return e.String(http.StatusInternalServerError, "Failed to update group")
		}

		if group.GetBool("is_security_cost") {
			SetToast(e, "success", "Group marked as security costs")
		} else {
			SetToast(e, "success", "Group security-cost flag cleared")
		}
		return renderReportFragment(e, app, documentID)
	}
}
