package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrRenderFailed marks renderer-process failures, distinct from validation
// and storage errors.
var ErrRenderFailed = errors.New("receipt rendering failed")

// Renderer drives an external process that draws a field map onto a PDF
// template. Invocation: <cmd...> TEMPLATE OUTPUT JSON. The renderer works on
// files, so every invocation gets its own scratch directory and removes it on
// every exit path; concurrent requests never share an artifact.
type Renderer struct {
	// Cmd is the renderer command line prefix, e.g. "python3 modify_pdf.py".
	Cmd string
	// Template is the path of the receipt template PDF.
	Template string
}

// Render produces the receipt PDF bytes for a projected field map.
func (r *Renderer) Render(ctx context.Context, fields map[string]string) ([]byte, error) {
	argv := strings.Fields(r.Cmd)
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: no renderer command configured", ErrRenderFailed)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	scratch, err := os.MkdirTemp("", "receipt-"+uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	defer os.RemoveAll(scratch)

	outPath := filepath.Join(scratch, "receipt.pdf")
	argv = append(argv, r.Template, outPath, string(payload))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrRenderFailed, err, strings.TrimSpace(string(out)))
	}

	pdf, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: renderer produced no output: %v", ErrRenderFailed, err)
	}
	return pdf, nil
}
