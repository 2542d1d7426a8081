package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/timebloom/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) { return tempDir, nil }

	wantDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := TrayAppConfigDir()
	if err != nil {
		t.Fatalf("TrayAppConfigDir: %v", err)
	}
	if dir != wantDefault {
		t.Errorf("dir = %s, want %s", dir, wantDefault)
	}

	// a custom lockfile_dir in the tray app's settings takes over
	if err := os.MkdirAll(wantDefault, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/timebloom/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(wantDefault, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = TrayAppConfigDir()
	if err != nil {
		t.Fatalf("TrayAppConfigDir: %v", err)
	}
	if dir != customDir {
		t.Errorf("dir = %s, want %s", dir, customDir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "timebloom-tray"}, nil
	}

	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing lockfile")
	}

	badContents := []struct {
		name    string
		content string
	}{
		{"two parts", "8080|12345"},
		{"garbage", "invalid"},
		{"empty secret", "8080|12345|"},
		{"empty port", "|12345|secret123"},
		{"port out of range", "99999|12345|secret123"},
		{"bad pid", "8080|abc|secret123"},
	}
	for _, tt := range badContents {
		writeLockfile(tt.content)
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	writeLockfile("8080|12345|secret123")

	findProcessFunc = func(pid int) (ps.Process, error) { return nil, nil }
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing process")
	}

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "other-app"}, nil
	}
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for wrong executable")
	}

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "timebloom-tray"}, nil
	}
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	if err != nil {
		t.Fatalf("findAndValidateTrayProcess: %v", err)
	}
	if port != "8080" || secret != "secret123" {
		t.Errorf("port, secret = %s, %s", port, secret)
	}
}

func TestSendNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Timebloom-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]

	if err := sendNotification(port, "test-secret", WebhookPayload{Text: "water your plants"}); err != nil {
		t.Errorf("sendNotification: %v", err)
	}
	if err := sendNotification(port, "wrong-secret", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	if err := sendNotification(port, "test-secret", WebhookPayload{Text: "fail"}); err == nil {
		t.Error("expected error for server failure")
	}
}
