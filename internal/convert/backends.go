// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfsmith/internal/container"
)

const imagePdf2docx = "pdf2docx:latest"

// PdftotextConverter extracts plain text with the pdftotext binary.
type PdftotextConverter struct {
	bin string
}

// NewPdftotextConverter returns a text converter using pdftotext from PATH.
func NewPdftotextConverter() *PdftotextConverter {
	return &PdftotextConverter{bin: "pdftotext"}
}

func (c *PdftotextConverter) Convert(pdfPath, outPath string) error {
	cmd := exec.Command(c.bin, "-layout", pdfPath, outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pdftotext on %s: %s: %w",
			pdfPath, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

func (c *PdftotextConverter) Ext() string { return ".txt" }

// Pdf2docxConverter converts PDFs to Word documents by running the pdf2docx
// container image with the input and output directories bind-mounted. It
// depends on a container.Runtime (docker or podman) injected at
// construction time.
type Pdf2docxConverter struct {
	runtime container.Runtime
}

// NewPdf2docxConverter creates a converter that uses the given container
// runtime to run the pdf2docx image. It verifies that the image exists
// locally before returning.
func NewPdf2docxConverter(rt container.Runtime) (*Pdf2docxConverter, error) {
	if err := rt.ImageExists(imagePdf2docx); err != nil {
		return nil, fmt.Errorf("pdf2docx image not available in %s: %w", rt.Name(), err)
	}
	return &Pdf2docxConverter{runtime: rt}, nil
}

func (c *Pdf2docxConverter) Convert(pdfPath, outPath string) error {
	inDir, err := filepath.Abs(filepath.Dir(pdfPath))
	if err != nil {
		return fmt.Errorf("resolving input directory: %w", err)
	}
	outDir, err := filepath.Abs(filepath.Dir(outPath))
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	mounts := map[string]string{inDir: "/in"}
	outMount := "/out"
	if outDir == inDir {
		outMount = "/in"
	} else {
		mounts[outDir] = "/out"
	}

	err = c.runtime.RunMounted(imagePdf2docx, mounts,
		"convert",
		"/in/"+filepath.Base(pdfPath),
		outMount+"/"+filepath.Base(outPath),
	)
	if err != nil {
		return fmt.Errorf("converting %s with pdf2docx: %w", pdfPath, err)
	}
	return nil
}

func (c *Pdf2docxConverter) Ext() string { return ".docx" }
