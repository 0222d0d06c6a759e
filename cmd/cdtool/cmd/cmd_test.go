package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/cdstream/pkg/api"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/config"
	"github.com/ssargent/cdstream/pkg/di"
	"github.com/ssargent/cdstream/pkg/itemstore"
)

type cli struct {
	dir  string
	base []string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	SetContainer(di.NewContainer())
	dir := t.TempDir()
	return &cli{
		dir: dir,
		base: []string{
			"--config", filepath.Join(dir, "config.yaml"),
			"--data-dir", filepath.Join(dir, "data"),
			"--log-level", "error",
		},
	}
}

func (c *cli) path(name string) string { return filepath.Join(c.dir, name) }

func (c *cli) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(append([]string{}, args...), c.base...))
	err := root.Execute()
	return out.String(), err
}

func (c *cli) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := c.run(t, args...)
	require.NoError(t, err, "cdtool %s", strings.Join(args, " "))
	return out
}

// buildSample writes a stream with a paragraph, a 2x2 table and an
// attached file, and returns its path.
func (c *cli) buildSample(t *testing.T) string {
	t.Helper()
	require.NoError(t, os.WriteFile(c.path("totals.csv"), []byte("a,b\nc,d\n"), 0600))
	require.NoError(t, os.WriteFile(c.path("notes.txt"), []byte("attached notes"), 0600))

	body := c.path("body.cd")
	c.mustRun(t, "build",
		"--text", "Hello",
		"--csv", c.path("totals.csv"),
		"--file", c.path("notes.txt"),
		"-o", body)
	return body
}

func TestInitCommand(t *testing.T) {
	c := newCLI(t)
	configPath := c.path("config.yaml")

	out := c.mustRun(t, "init", "--print-key")
	assert.Contains(t, out, "API Key:")
	assert.DirExists(t, c.path("data"))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, c.path("data"), cfg.DataDir)
	assert.Len(t, cfg.Security.APIKey, 64)
	assert.Contains(t, out, cfg.Security.APIKey)

	t.Run("existing config is kept", func(t *testing.T) {
		out := c.mustRun(t, "init")
		assert.Contains(t, out, "already exists")

		again, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, cfg.Security.APIKey, again.Security.APIKey)
	})

	t.Run("force regenerates the key", func(t *testing.T) {
		c.mustRun(t, "init", "--force")
		again, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.NotEqual(t, cfg.Security.APIKey, again.Security.APIKey)
	})
}

func TestInspectCommands(t *testing.T) {
	c := newCLI(t)
	body := c.buildSample(t)

	t.Run("dump", func(t *testing.T) {
		out := c.mustRun(t, "dump", body)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Greater(t, len(lines), 1)
		assert.True(t, strings.HasPrefix(lines[0], "OFFSET"))
		assert.Contains(t, lines[1], "CDPARAGRAPH")
		assert.Contains(t, out, "CDTABLECELL")
		assert.Contains(t, out, "CDFILEHEADER")
	})

	t.Run("dump summary", func(t *testing.T) {
		out := c.mustRun(t, "dump", "--summary", body)
		assert.Contains(t, out, "kind: composite")
		assert.Contains(t, out, "tables: 1")
		assert.Contains(t, out, "resources: 1")
	})

	t.Run("text", func(t *testing.T) {
		out := c.mustRun(t, "text", body)
		assert.Equal(t, "Hello\na\tb\nc\td\n", out)
	})

	t.Run("tables", func(t *testing.T) {
		out := c.mustRun(t, "tables", body)
		assert.Contains(t, out, "table 0")
		assert.Contains(t, out, "row 1")
		assert.Contains(t, out, "[0,1] b")
		assert.Contains(t, out, "[1,1] d")
	})

	t.Run("resources", func(t *testing.T) {
		outDir := c.path("extracted")
		out := c.mustRun(t, "resources", body, "--out", outDir)
		assert.Contains(t, out, "notes.txt")

		data, err := os.ReadFile(filepath.Join(outDir, "notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, "attached notes", string(data))
	})

	t.Run("catalog", func(t *testing.T) {
		out := c.mustRun(t, "catalog")
		assert.Contains(t, out, "CDTEXT")
		assert.Contains(t, out, "CDTABLEBEGIN")
	})

	t.Run("truncated stream", func(t *testing.T) {
		data, err := os.ReadFile(body)
		require.NoError(t, err)
		bad := c.path("bad.cd")
		require.NoError(t, os.WriteFile(bad, data[:len(data)-3], 0600))

		_, err = c.run(t, "dump", bad)
		assert.True(t, errors.Is(err, cd.ErrTruncatedRecord), "got %v", err)
	})

	t.Run("tables of a kind without tables", func(t *testing.T) {
		_, err := c.run(t, "tables", "--kind", "action", body)
		assert.Error(t, err)
	})
}

func TestBuildCommand(t *testing.T) {
	c := newCLI(t)

	t.Run("missing input", func(t *testing.T) {
		_, err := c.run(t, "build", "--file", c.path("missing.bin"), "-o", c.path("out.cd"))
		assert.Error(t, err)
	})

	t.Run("failed build leaves no output", func(t *testing.T) {
		out := c.path("partial.cd")
		// enough text to flush the writer before the attachment fails
		_, err := c.run(t, "build",
			"--text", strings.Repeat("x", 20000),
			"--file", c.path("missing.bin"),
			"-o", out)
		require.Error(t, err)
		assert.NoFileExists(t, out)
	})

	t.Run("unsupported image", func(t *testing.T) {
		require.NoError(t, os.WriteFile(c.path("pic.tiff"), []byte{1, 2, 3}, 0600))
		_, err := c.run(t, "build", "--image", c.path("pic.tiff"), "-o", c.path("out.cd"))
		assert.Error(t, err)
	})

	t.Run("image with unknown dimensions", func(t *testing.T) {
		require.NoError(t, os.WriteFile(c.path("pic.svg"), []byte("<svg/>"), 0600))
		c.mustRun(t, "build", "--image", c.path("pic.svg"), "--caption", "Logo", "-o", c.path("img.cd"))

		out := c.mustRun(t, "resources", c.path("img.cd"))
		assert.Contains(t, out, "image-")
		assert.Contains(t, out, ".svg")
	})

	t.Run("only composite streams", func(t *testing.T) {
		_, err := c.run(t, "build", "--kind", "query", "--text", "x")
		assert.True(t, errors.Is(err, cd.ErrUsage), "got %v", err)
	})

	t.Run("stdout", func(t *testing.T) {
		out := c.mustRun(t, "build", "--text", "Hi")
		// starts with the paragraph record
		assert.Equal(t, []byte{0x81, 0x02}, []byte(out)[:2])
	})
}

func TestStoreCommands(t *testing.T) {
	c := newCLI(t)
	body := c.buildSample(t)

	id := strings.TrimSpace(c.mustRun(t, "put", body, "--name", "Body"))
	_, err := itemstore.ParseID(id)
	require.NoError(t, err)

	out := c.mustRun(t, "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Body")
	assert.Contains(t, out, "composite")

	copyPath := c.path("copy.cd")
	c.mustRun(t, "get", id, "-o", copyPath)
	want, err := os.ReadFile(body)
	require.NoError(t, err)
	got, err := os.ReadFile(copyPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	out = c.mustRun(t, "delete", id)
	assert.Contains(t, out, id)

	_, err = c.run(t, "get", id)
	assert.True(t, errors.Is(err, itemstore.ErrNotFound), "got %v", err)

	t.Run("malformed stream is rejected", func(t *testing.T) {
		bad := c.path("bad.cd")
		require.NoError(t, os.WriteFile(bad, []byte{0x85, 0xFF, 0x40, 0x00, 1, 2}, 0600))
		_, err := c.run(t, "put", bad)
		assert.True(t, errors.Is(err, cd.ErrTruncatedRecord), "got %v", err)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := c.run(t, "delete", "not-an-id")
		assert.True(t, errors.Is(err, itemstore.ErrNotFound), "got %v", err)
	})
}

type fakeStarter struct {
	cfg    api.ServerConfig
	called bool
}

func (f *fakeStarter) StartServer(ctx context.Context, store api.ItemStore, cfg api.ServerConfig, log logrus.FieldLogger) error {
	f.called = true
	f.cfg = cfg
	_, err := store.List()
	return err
}

type fakeFactory struct{ starter *fakeStarter }

func (f fakeFactory) CreateServerStarter() api.ServerStarter { return f.starter }

func TestServeCommand(t *testing.T) {
	c := newCLI(t)
	c.mustRun(t, "init")
	cfg, err := config.LoadConfig(c.path("config.yaml"))
	require.NoError(t, err)

	starter := &fakeStarter{}
	container.SetServerFactory(fakeFactory{starter: starter})

	c.mustRun(t, "serve", "--port", "9123", "--kind", "query")
	require.True(t, starter.called)
	assert.Equal(t, 9123, starter.cfg.Port)
	assert.Equal(t, "127.0.0.1", starter.cfg.Bind)
	assert.Equal(t, cfg.Security.APIKey, starter.cfg.APIKey)
	assert.Equal(t, cd.KindQuery, starter.cfg.ItemKind)

	t.Run("temporary key without config", func(t *testing.T) {
		c := newCLI(t)
		starter := &fakeStarter{}
		container.SetServerFactory(fakeFactory{starter: starter})

		c.mustRun(t, "serve")
		assert.Len(t, starter.cfg.APIKey, 64)
	})
}
