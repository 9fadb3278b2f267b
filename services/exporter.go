package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

// A4 page geometry in millimeters, the unit the page builder works in.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// ErrExportInFlight is returned when an export is requested while a previous
// one is still running. Exports are single-shot; the user retries manually.
var ErrExportInFlight = errors.New("export already in flight")

// ErrExportFailed wraps any capture or encode failure. The export is atomic:
// on failure no partial artifact is produced.
var ErrExportFailed = errors.New("export failed")

// RasterImage is a captured rendering of the report surface. Width and Height
// are the surface's own pixel dimensions, not the page's.
type RasterImage struct {
	PNG    []byte
	Width  float64
	Height float64
}

// SurfaceCapturer produces the rendered surface to paginate. How the raster
// is obtained (browser capture, headless render) is outside this package.
type SurfaceCapturer interface {
	CaptureSurface(ctx context.Context) (RasterImage, error)
}

// BillExporter turns a captured surface into a paginated PDF artifact. It
// allows one export at a time per instance.
type BillExporter struct {
	inFlight atomic.Bool
}

// ArtifactName returns the export file name for the given day.
func ArtifactName(t time.Time) string {
	return fmt.Sprintf("Computo_Metrico_Aggiornato_%s.pdf", t.Format("2006-01-02"))
}

// Export captures the surface, slices it into A4 pages and assembles the PDF.
// The capture step has latency proportional to the rendered content, so the
// caller bounds it with the context deadline. On any failure the in-flight
// flag resets and no bytes are returned.
func (x *BillExporter) Export(ctx context.Context, capturer SurfaceCapturer) ([]byte, string, error) {
	if !x.inFlight.CompareAndSwap(false, true) {
		return nil, "", ErrExportInFlight
	}
	defer x.inFlight.Store(false)

	taskID := uuid.NewString()
	log.Printf("export %s: capturing surface", taskID)

	img, err := capturer.CaptureSurface(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: capture surface: %v", ErrExportFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	pages, err := Paginate(img.Width, img.Height, PageWidthMM, PageHeightMM)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	pdfBytes, err := buildPageSequence(img, pages)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	name := ArtifactName(time.Now())
	log.Printf("export %s: wrote %d pages (%s)", taskID, len(pages), name)
	return pdfBytes, name, nil
}

// buildPageSequence places the full scaled image on every page at that page's
// vertical offset. Clipping at the page edge exposes one band per page, so no
// content row is duplicated or skipped.
func buildPageSequence(img RasterImage, pages []PageSlice) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: PageWidthMM, Ht: PageHeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("surface", opts, bytes.NewReader(img.PNG))

	for _, page := range pages {
		pdf.AddPage()
		// Height 0 keeps the source aspect ratio at full page width.
		pdf.ImageOptions("surface", 0, page.OffsetY, page.Width, 0, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
