package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.t")
	source := "print \"Hello, World!\\n\";\n"
	assert.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	src, err := New().Load(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, path, src.Filename)
	assert.Equal(t, source, string(src.Contents))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "missing.t"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.t")
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Load(ctx, "irrelevant.t")
	assert.Error(t, err)
}

func TestLoadBytes(t *testing.T) {
	src, err := New().LoadBytes(context.Background(), "<stdin>", []byte("putc 'x';"))
	assert.NoError(t, err)
	assert.Equal(t, "<stdin>", src.Filename)
	assert.Equal(t, "putc 'x';", string(src.Contents))
}
