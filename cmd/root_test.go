package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/pdfchat/internal/chat"
	"github.com/zhubert/pdfchat/internal/config"
	"github.com/zhubert/pdfchat/internal/document"
	"github.com/zhubert/pdfchat/internal/logger"
	"github.com/zhubert/pdfchat/internal/upload"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestBackendAndTimeoutFlagsExist(t *testing.T) {
	for _, name := range []string{"backend", "timeout"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"ask", "upload", "demo", "logs"} {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "unknown")
	assert.Equal(t, "pdfchat 1.2.3\n", versionTemplate())

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Contains(t, versionTemplate(), "commit: abc123")
}

func TestApplyFlags(t *testing.T) {
	origURL, origTimeout := backendURL, timeout
	defer func() { backendURL, timeout = origURL, origTimeout }()

	cfg := config.New()
	backendURL = "https://pdf.example.com"
	timeout = "45"
	require.NoError(t, applyFlags(cfg))
	assert.Equal(t, "https://pdf.example.com", cfg.GetBackendURL())
	assert.Equal(t, 45*time.Second, cfg.GetTimeout())

	backendURL = "ftp://nope"
	assert.Error(t, applyFlags(config.New()))

	backendURL = ""
	timeout = "soon"
	assert.Error(t, applyFlags(config.New()))
}

type stubBackend struct {
	answer    string
	err       error
	uploaded  []document.Document
	uploadErr error
}

func (s *stubBackend) Ask(ctx context.Context, question string) (string, error) {
	return s.answer, s.err
}

func (s *stubBackend) Upload(ctx context.Context, doc document.Document) error {
	s.uploaded = append(s.uploaded, doc)
	return s.uploadErr
}

func TestRunAsk(t *testing.T) {
	tests := []struct {
		name    string
		backend *stubBackend
		want    string
		wantErr bool
	}{
		{"answer", &stubBackend{answer: "Page 3 covers revenue."}, "Page 3 covers revenue.", false},
		{"error", &stubBackend{err: errors.New("connection refused")}, chat.FallbackReply, true},
		{"empty answer", &stubBackend{}, chat.FallbackReply, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runAsk(context.Background(), &out, tt.backend, "what is on page 3?")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestNewClient_AppliesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := config.New()
	require.NoError(t, cfg.SetBackendURL(srv.URL))
	cfg.SetTimeout(time.Second)

	var out bytes.Buffer
	start := time.Now()
	err := runAsk(context.Background(), &out, newClient(cfg), "slow?")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.Contains(t, out.String(), chat.FallbackReply)
}

func TestRunAsk_BlankQuestion(t *testing.T) {
	var out bytes.Buffer
	err := runAsk(context.Background(), &out, &stubBackend{answer: "x"}, "   ")
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunUpload(t *testing.T) {
	sb := &stubBackend{}
	var out bytes.Buffer
	path := writeTemp(t, "report.pdf", "%PDF-1.4")

	require.NoError(t, runUpload(context.Background(), &out, sb, path))
	assert.Equal(t, "uploaded report.pdf (0 pages)\n", out.String())
	require.Len(t, sb.uploaded, 1)
	assert.Equal(t, document.PDFMediaType, sb.uploaded[0].MediaType)
}

func TestRunUpload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		backend *stubBackend
		want    string
	}{
		{
			name:    "not a pdf",
			path:    func(t *testing.T) string { return writeTemp(t, "notes.txt", "hello") },
			backend: &stubBackend{},
			want:    upload.InvalidTypeMessage,
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone.pdf") },
			backend: &stubBackend{},
			want:    upload.FailedMessage,
		},
		{
			name:    "backend down",
			path:    func(t *testing.T) string { return writeTemp(t, "a.pdf", "%PDF-1.4") },
			backend: &stubBackend{uploadErr: errors.New("dial tcp: refused")},
			want:    upload.ConnectionMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runUpload(context.Background(), &out, tt.backend, tt.path(t))
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.want), "got %q", err.Error())
			assert.Empty(t, out.String())
		})
	}
}

func TestRequestContext(t *testing.T) {
	ctx, cancel := requestContext(context.Background(), time.Second)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)

	ctx2, cancel2 := requestContext(context.Background(), 0)
	defer cancel2()
	_, ok = ctx2.Deadline()
	assert.False(t, ok)
}
