package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smazurov/recordscreen/internal/api/models"
	"github.com/smazurov/recordscreen/internal/events"
	"github.com/smazurov/recordscreen/internal/recorder"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestAPIToOptionsPreservesPointerSemantics(t *testing.T) {
	in := models.RecordingOptionsData{
		LogLevel:    "error",
		InputFormat: strPtr(""),
		Resolution:  "1440x900",
		FPS:         intPtr(0),
		VideoFilter: "hflip",
		VideoCodec:  "libx264",
		Rotate:      90,
		Hostname:    strPtr("cam.local"),
		Port:        intPtr(554),
	}

	opts := apiToOptions(in)

	if opts.InputFormat == nil || *opts.InputFormat != "" {
		t.Errorf("InputFormat = %v, want explicit empty string", opts.InputFormat)
	}
	if opts.FPS == nil || *opts.FPS != 0 {
		t.Errorf("FPS = %v, want explicit 0", opts.FPS)
	}
	if opts.PixelFormat != nil {
		t.Errorf("PixelFormat = %v, want nil for absent field", opts.PixelFormat)
	}
	if opts.Resolution != "1440x900" || opts.VideoFilter != "hflip" || opts.Rotate != 90 {
		t.Errorf("plain fields not carried over: %+v", opts)
	}
	if opts.Hostname == nil || *opts.Hostname != "cam.local" {
		t.Errorf("Hostname = %v, want cam.local", opts.Hostname)
	}
	if opts.Port == nil || *opts.Port != 554 {
		t.Errorf("Port = %v, want 554", opts.Port)
	}
}

func newTestServer(t *testing.T, username, password string) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := recorder.NewManager(events.New(), logger)
	return NewServer(&Options{
		AuthUsername: username,
		AuthPassword: password,
		Manager:      manager,
	})
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestHealthSkipsAuth(t *testing.T) {
	server := newTestServer(t, "admin", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	server.GetMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRecordingsRequireAuth(t *testing.T) {
	server := newTestServer(t, "admin", "secret")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no credentials", "", http.StatusUnauthorized},
		{"wrong scheme", "Bearer abc", http.StatusUnauthorized},
		{"bad credentials", basicAuth("admin", "wrong"), http.StatusUnauthorized},
		{"good credentials", basicAuth("admin", "secret"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/recordings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			server.GetMux().ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestListRecordingsEmpty(t *testing.T) {
	server := newTestServer(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/api/recordings", nil)
	rec := httptest.NewRecorder()
	server.GetMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body models.RecordingListData
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 0 || len(body.Recordings) != 0 {
		t.Errorf("expected empty list, got %+v", body)
	}
}

func TestGetUnknownRecording(t *testing.T) {
	server := newTestServer(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/api/recordings/no-such-id", nil)
	rec := httptest.NewRecorder()
	server.GetMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCancelUnknownRecording(t *testing.T) {
	server := newTestServer(t, "", "")

	req := httptest.NewRequest(http.MethodDelete, "/api/recordings/no-such-id", nil)
	rec := httptest.NewRecorder()
	server.GetMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestStartRecordingRejectsEmptyOutputPath(t *testing.T) {
	server := newTestServer(t, "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/recordings",
		strings.NewReader(`{"output_path": ""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.GetMux().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
