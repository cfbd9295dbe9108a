package receipts_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankit/temple-ledger-go/receipts"
)

// writeScript drops an executable shell script standing in for the external
// renderer. Argv matches the real contract: TEMPLATE OUTPUT JSON.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renderer.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake template"), 0o644))
	return path
}

func scratchDirs(t *testing.T) map[string]bool {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "receipt-*"))
	require.NoError(t, err)
	out := make(map[string]bool, len(matches))
	for _, m := range matches {
		out[m] = true
	}
	return out
}

func TestRenderer_Success(t *testing.T) {
	r := &receipts.Renderer{
		Cmd:      writeScript(t, `cp "$1" "$2"`),
		Template: writeTemplate(t),
	}

	before := scratchDirs(t)
	pdf, err := r.Render(context.Background(), map[string]string{"donor": "A"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake template"), pdf)

	for dir := range scratchDirs(t) {
		assert.True(t, before[dir], "scratch dir %s left behind", dir)
	}
}

func TestRenderer_ProcessFailure(t *testing.T) {
	r := &receipts.Renderer{
		Cmd:      writeScript(t, `echo "boom" >&2; exit 3`),
		Template: writeTemplate(t),
	}

	before := scratchDirs(t)
	_, err := r.Render(context.Background(), map[string]string{})
	require.ErrorIs(t, err, receipts.ErrRenderFailed)
	assert.Contains(t, err.Error(), "boom")

	for dir := range scratchDirs(t) {
		assert.True(t, before[dir], "scratch dir %s left behind after failure", dir)
	}
}

func TestRenderer_NoOutputProduced(t *testing.T) {
	r := &receipts.Renderer{
		Cmd:      writeScript(t, `exit 0`),
		Template: writeTemplate(t),
	}

	before := scratchDirs(t)
	_, err := r.Render(context.Background(), map[string]string{})
	require.ErrorIs(t, err, receipts.ErrRenderFailed)

	for dir := range scratchDirs(t) {
		assert.True(t, before[dir], "scratch dir %s left behind after read failure", dir)
	}
}

func TestRenderer_ReceivesProjectedFields(t *testing.T) {
	// renderer echoes its JSON argument into the output file
	r := &receipts.Renderer{
		Cmd:      writeScript(t, `printf '%s' "$3" > "$2"`),
		Template: writeTemplate(t),
	}

	pdf, err := r.Render(context.Background(), map[string]string{"donor": "A", "totalAmount": "Rs.1000.00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"donor":"A","totalAmount":"Rs.1000.00"}`, string(pdf))
}

func TestRenderer_NoCommandConfigured(t *testing.T) {
	r := &receipts.Renderer{Cmd: "", Template: "template.pdf"}
	_, err := r.Render(context.Background(), map[string]string{})
	assert.ErrorIs(t, err, receipts.ErrRenderFailed)
}
