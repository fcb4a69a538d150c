// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paginate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/pdfsmith/internal/engine"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

// stampOp records one InsertText call on a fake document.
type stampOp struct {
	page int
	x, y float64
	text string
	size float64
}

// fakeDoc implements engine.Document, recording stamps and saves.
type fakeDoc struct {
	dims      []engine.Dim
	stamps    []stampOp
	savedPath string
	savedWith types.SaveProfile
	saveErr   error
	insertErr error
	closed    bool
}

func (d *fakeDoc) PageCount() int { return len(d.dims) }

func (d *fakeDoc) PageDim(i int) (engine.Dim, error) {
	if i < 0 || i >= len(d.dims) {
		return engine.Dim{}, errors.New("page out of range")
	}
	return d.dims[i], nil
}

func (d *fakeDoc) InsertText(i int, x, y float64, text string, size float64) error {
	if d.insertErr != nil {
		return d.insertErr
	}
	d.stamps = append(d.stamps, stampOp{page: i, x: x, y: y, text: text, size: size})
	return nil
}

func (d *fakeDoc) SaveAs(path string, profile types.SaveProfile) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.savedPath = path
	d.savedWith = profile
	return nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

// fakeEngine resolves documents by base filename.
type fakeEngine struct {
	docs    map[string]*fakeDoc
	openErr map[string]bool
}

func (e *fakeEngine) Open(path string) (engine.Document, error) {
	base := filepath.Base(path)
	if e.openErr[base] {
		return nil, &engine.OpenError{Path: path, Err: errors.New("corrupt file")}
	}
	d, ok := e.docs[base]
	if !ok {
		return nil, &engine.OpenError{Path: path, Err: os.ErrNotExist}
	}
	return d, nil
}

func (e *fakeEngine) NewMerge() engine.MergeDocument { return nil }

// pages makes n letter-ish pages (600x800).
func pages(n int) []engine.Dim {
	dims := make([]engine.Dim, n)
	for i := range dims {
		dims[i] = engine.Dim{Width: 600, Height: 800}
	}
	return dims
}

// labels extracts the stamped label texts in call order.
func labels(d *fakeDoc) []string {
	out := make([]string, len(d.stamps))
	for i, s := range d.stamps {
		out[i] = s.text
	}
	return out
}

func TestStampPageNumber_AnchorPlacement(t *testing.T) {
	tests := []struct {
		anchor types.Anchor
		wantX  float64
		wantY  float64
	}{
		{types.BottomRight, 550, 750},
		{types.TopCenter, 300, 50},
		{types.Anchor("sideways"), 550, 750},
	}
	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			doc := &fakeDoc{dims: pages(1)}
			if err := StampPageNumber(doc, 0, 4, 12, 50, tt.anchor); err != nil {
				t.Fatal(err)
			}
			s := doc.stamps[0]
			if s.x != tt.wantX || s.y != tt.wantY {
				t.Errorf("stamp at (%v, %v), want (%v, %v)", s.x, s.y, tt.wantX, tt.wantY)
			}
			if s.text != "4" {
				t.Errorf("label = %q, want %q", s.text, "4")
			}
		})
	}
}

func TestFile_SequentialLabels(t *testing.T) {
	doc := &fakeDoc{dims: pages(4)}
	eng := &fakeEngine{docs: map[string]*fakeDoc{"in.pdf": doc}}

	outPath := filepath.Join(t.TempDir(), "in_numbered.pdf")
	n, err := File(eng, "in.pdf", outPath, Options{StartPage: 7})
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("pages stamped = %d, want 4", n)
	}

	want := []string{"7", "8", "9", "10"}
	got := labels(doc)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("page %d label = %q, want %q", i, got[i], want[i])
		}
		if doc.stamps[i].page != i {
			t.Errorf("stamp %d targeted page %d, want %d", i, doc.stamps[i].page, i)
		}
	}

	if doc.savedPath != outPath {
		t.Errorf("saved to %q", doc.savedPath)
	}
	if !doc.closed {
		t.Error("input handle should be closed after a successful run")
	}
}

func TestFile_ProfilePropagated(t *testing.T) {
	doc := &fakeDoc{dims: pages(1)}
	eng := &fakeEngine{docs: map[string]*fakeDoc{"in.pdf": doc}}

	if _, err := File(eng, "in.pdf", filepath.Join(t.TempDir(), "x.pdf"), Options{Profile: types.ProfileStandard}); err != nil {
		t.Fatal(err)
	}
	if doc.savedWith != types.ProfileStandard {
		t.Errorf("saved with %v, want standard profile", doc.savedWith)
	}
}

func TestFile_OpenError(t *testing.T) {
	eng := &fakeEngine{docs: map[string]*fakeDoc{}}

	_, err := File(eng, "missing.pdf", filepath.Join(t.TempDir(), "x.pdf"), Options{})
	var openErr *engine.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected OpenError, got %v", err)
	}
}

func TestFile_SaveErrorStillCloses(t *testing.T) {
	doc := &fakeDoc{dims: pages(2), saveErr: &engine.SaveError{Path: "x.pdf", Err: errors.New("disk full")}}
	eng := &fakeEngine{docs: map[string]*fakeDoc{"in.pdf": doc}}

	_, err := File(eng, "in.pdf", filepath.Join(t.TempDir(), "x.pdf"), Options{})
	var saveErr *engine.SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("expected SaveError, got %v", err)
	}
	if !doc.closed {
		t.Error("input handle should be closed after a failed save")
	}
}

// batchDir creates a real directory with empty placeholder PDFs so that
// file discovery works; the fake engine supplies the page counts.
func batchDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("%PDF"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBatch_ContinuousNumbering(t *testing.T) {
	dir := batchDir(t, "a.pdf", "b.pdf", "c.pdf")
	docs := map[string]*fakeDoc{
		"a.pdf": {dims: pages(2)},
		"b.pdf": {dims: pages(3)},
		"c.pdf": {dims: pages(1)},
	}
	eng := &fakeEngine{docs: docs}

	var log bytes.Buffer
	stats := Batch(eng, dir, t.TempDir(), Options{StartPage: 1, Continuous: true}, &log)

	if stats.Processed != 3 || stats.Failed != 0 {
		t.Fatalf("processed=%d failed=%d, want 3/0", stats.Processed, stats.Failed)
	}
	if stats.TotalPages != 6 {
		t.Errorf("total pages = %d, want 6", stats.TotalPages)
	}

	wantRanges := []struct{ start, end int }{{1, 2}, {3, 5}, {6, 6}}
	for i, r := range wantRanges {
		rec := stats.Files[i]
		if rec.StartPage != r.start || rec.EndPage != r.end {
			t.Errorf("file %d range = %d-%d, want %d-%d", i, rec.StartPage, rec.EndPage, r.start, r.end)
		}
	}

	if got := labels(docs["b.pdf"]); got[0] != "3" || got[2] != "5" {
		t.Errorf("b.pdf labels = %v, want 3..5", got)
	}
	if got := labels(docs["c.pdf"]); got[0] != "6" {
		t.Errorf("c.pdf labels = %v, want [6]", got)
	}
}

func TestBatch_RestartNumbering(t *testing.T) {
	dir := batchDir(t, "a.pdf", "b.pdf")
	docs := map[string]*fakeDoc{
		"a.pdf": {dims: pages(2)},
		"b.pdf": {dims: pages(3)},
	}
	eng := &fakeEngine{docs: docs}

	var log bytes.Buffer
	stats := Batch(eng, dir, t.TempDir(), Options{StartPage: 5, Continuous: false}, &log)

	for i, rec := range stats.Files {
		if rec.StartPage != 5 {
			t.Errorf("file %d start = %d, want 5", i, rec.StartPage)
		}
	}
	if got := labels(docs["b.pdf"]); got[0] != "5" {
		t.Errorf("b.pdf first label = %q, want 5 (numbering restarts per file)", got[0])
	}
}

func TestBatch_FailedFileDoesNotAdvanceCounter(t *testing.T) {
	dir := batchDir(t, "a.pdf", "b.pdf", "c.pdf")
	docs := map[string]*fakeDoc{
		"a.pdf": {dims: pages(2)},
		"c.pdf": {dims: pages(1)},
	}
	eng := &fakeEngine{
		docs:    docs,
		openErr: map[string]bool{"b.pdf": true},
	}

	var log bytes.Buffer
	stats := Batch(eng, dir, t.TempDir(), Options{StartPage: 1, Continuous: true}, &log)

	if stats.Processed != 2 || stats.Failed != 1 {
		t.Fatalf("processed=%d failed=%d, want 2/1", stats.Processed, stats.Failed)
	}
	// c starts right after a's range: b's pages were never consumed.
	if got := labels(docs["c.pdf"]); got[0] != "3" {
		t.Errorf("c.pdf first label = %q, want 3", got[0])
	}
	if !strings.Contains(log.String(), "failed") {
		t.Error("log should mention the failed file")
	}
}

func TestBatch_EmptyDirectory(t *testing.T) {
	var log bytes.Buffer
	stats := Batch(&fakeEngine{}, t.TempDir(), t.TempDir(), Options{}, &log)

	if stats.Total() != 0 {
		t.Errorf("total = %d, want 0", stats.Total())
	}
	if stats.Message == "" {
		t.Error("empty input should set a status message, not error")
	}
	if !strings.Contains(log.String(), "no PDF files found") {
		t.Errorf("log = %q", log.String())
	}
}

func TestBatch_OutputNaming(t *testing.T) {
	dir := batchDir(t, "report.pdf")
	doc := &fakeDoc{dims: pages(1)}
	eng := &fakeEngine{docs: map[string]*fakeDoc{"report.pdf": doc}}

	outDir := t.TempDir()
	var log bytes.Buffer
	stats := Batch(eng, dir, outDir, Options{}, &log)

	want := filepath.Join(outDir, "report_numbered.pdf")
	if stats.Files[0].OutputPath != want {
		t.Errorf("output path = %s, want %s", stats.Files[0].OutputPath, want)
	}
	if doc.savedPath != want {
		t.Errorf("saved path = %s, want %s", doc.savedPath, want)
	}
}

func TestBatch_ProcessesSortedOrder(t *testing.T) {
	dir := batchDir(t, "file2.pdf", "file10.pdf")
	docs := map[string]*fakeDoc{
		"file2.pdf":  {dims: pages(1)},
		"file10.pdf": {dims: pages(1)},
	}
	eng := &fakeEngine{docs: docs}

	var log bytes.Buffer
	stats := Batch(eng, dir, t.TempDir(), Options{StartPage: 1, Continuous: true}, &log)

	// Lexicographic order puts file10 first, so it takes page 1.
	if filepath.Base(stats.Files[0].InputPath) != "file10.pdf" {
		t.Errorf("first processed = %s, want file10.pdf", stats.Files[0].InputPath)
	}
	if got := labels(docs["file10.pdf"]); got[0] != "1" {
		t.Errorf("file10.pdf label = %q, want 1", got[0])
	}
	if got := labels(docs["file2.pdf"]); got[0] != "2" {
		t.Errorf("file2.pdf label = %q, want 2", got[0])
	}
}
