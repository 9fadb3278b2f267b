package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
)

// snapshotTimeout caps the whole capture-and-assemble step; the capture
// latency grows with rendered content size, so the bound is generous.
const snapshotTimeout = 60 * time.Second

// uploadedSurface adapts a client-captured PNG to the capture collaborator.
// The browser renders and snapshots the report; the server only does the
// page-break arithmetic and assembly.
type uploadedSurface struct {
	png    []byte
	width  float64
	height float64
}

func (u uploadedSurface) CaptureSurface(ctx context.Context) (services.RasterImage, error) {
	if err := ctx.Err(); err != nil {
		return services.RasterImage{}, err
	}
	return services.RasterImage{PNG: u.png, Width: u.width, Height: u.height}, nil
}

// HandleExportSnapshot returns a handler that paginates an uploaded capture
// of the rendered report into the updated-bill PDF artifact. One export runs
// at a time; a re-entrant request gets 409.
func HandleExportSnapshot(app *pocketbase.PocketBase, exporter *services.BillExporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("documents", documentID); err != nil {
			return e.String(http.StatusNotFound, "Document not found")
		}

		if err := e.Request.ParseMultipartForm(32 << 20); err != nil {
			return e.String(http.StatusBadRequest, "Invalid multipart form")
		}

		width, err := strconv.ParseFloat(e.Request.FormValue("width"), 64)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid surface width")
		}
		height, err := strconv.ParseFloat(e.Request.FormValue("height"), 64)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid surface height")
		}

		file, _, err := e.Request.FormFile("surface")
		if err != nil {
			return e.String(http.StatusBadRequest, "Missing surface image")
		}
		defer file.Close()

		pngBytes, err := io.ReadAll(file)
		if err != nil {
			return e.String(http.StatusBadRequest, "Could not read surface image")
		}

		ctx, cancel := context.WithTimeout(e.Request.Context(), snapshotTimeout)
		defer cancel()

		pdfBytes, filename, err := exporter.Export(ctx, uploadedSurface{
			png:    pngBytes,
			width:  width,
			height: height,
		})
		switch {
		case errors.Is(err, services.ErrExportInFlight):
			return e.String(http.StatusConflict, "An export is already running; retry when it finishes")
		case err != nil:
			log.Printf("export_snapshot: %v", err)
			return e.String(http.StatusInternalServerError, "Export failed; no file was written")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
