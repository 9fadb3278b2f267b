package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"
)

// testRaster encodes a small solid PNG with the given logical dimensions.
func testRaster(t *testing.T, width, height float64) RasterImage {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return RasterImage{PNG: buf.Bytes(), Width: width, Height: height}
}

type stubCapturer struct {
	img     RasterImage
	err     error
	release chan struct{} // when set, CaptureSurface blocks until closed
}

func (s *stubCapturer) CaptureSurface(ctx context.Context) (RasterImage, error) {
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return RasterImage{}, ctx.Err()
		}
	}
	if s.err != nil {
		return RasterImage{}, s.err
	}
	return s.img, nil
}

func TestBillExporter_Export(t *testing.T) {
	var exporter BillExporter
	capturer := &stubCapturer{img: testRaster(t, 210, 930)}

	pdfBytes, name, err := exporter.Export(context.Background(), capturer)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("Export() returned empty bytes")
	}
	if string(pdfBytes[:5]) != "%PDF-" {
		t.Errorf("artifact does not start with PDF header, got %q", string(pdfBytes[:5]))
	}
	if !strings.HasPrefix(name, "Computo_Metrico_Aggiornato_") || !strings.HasSuffix(name, ".pdf") {
		t.Errorf("artifact name = %q, want Computo_Metrico_Aggiornato_<date>.pdf", name)
	}
}

func TestBillExporter_CaptureFailureIsAtomic(t *testing.T) {
	var exporter BillExporter
	capturer := &stubCapturer{err: errors.New("surface gone")}

	pdfBytes, _, err := exporter.Export(context.Background(), capturer)
	if !errors.Is(err, ErrExportFailed) {
		t.Fatalf("Export() error = %v, want ErrExportFailed", err)
	}
	if pdfBytes != nil {
		t.Error("no partial artifact may be produced on failure")
	}

	// The guard must reset so a manual retry can run.
	capturer.err = nil
	capturer.img = testRaster(t, 210, 297)
	if _, _, err := exporter.Export(context.Background(), capturer); err != nil {
		t.Errorf("retry after failure: Export() error = %v", err)
	}
}

func TestBillExporter_RejectsReentrantExport(t *testing.T) {
	var exporter BillExporter
	release := make(chan struct{})
	blocked := &stubCapturer{img: testRaster(t, 210, 297), release: release}

	done := make(chan error, 1)
	go func() {
		_, _, err := exporter.Export(context.Background(), blocked)
		done <- err
	}()

	// Wait for the first export to take the guard.
	deadline := time.After(2 * time.Second)
	for !exporter.inFlight.Load() {
		select {
		case <-deadline:
			t.Fatal("first export never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, _, err := exporter.Export(context.Background(), &stubCapturer{}); !errors.Is(err, ErrExportInFlight) {
		t.Errorf("second export error = %v, want ErrExportInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Errorf("first export error = %v", err)
	}
}

func TestBillExporter_ContextCancellation(t *testing.T) {
	var exporter BillExporter
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	release := make(chan struct{})
	defer close(release)
	capturer := &stubCapturer{img: testRaster(t, 210, 297), release: release}

	_, _, err := exporter.Export(ctx, capturer)
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("Export() error = %v, want ErrExportFailed on cancelled context", err)
	}
}

func TestArtifactName(t *testing.T) {
	at := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	if got, want := ArtifactName(at), "Computo_Metrico_Aggiornato_2026-09-01.pdf"; got != want {
		t.Errorf("ArtifactName() = %q, want %q", got, want)
	}
}
