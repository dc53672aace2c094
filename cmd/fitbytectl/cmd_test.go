package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestDB(t *testing.T) []string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test")
	t.Setenv("BCRYPT_COST", "4")
	return []string{"--driver", "sqlite", "--dsn", filepath.Join(t.TempDir(), "cli.db")}
}

func run(t *testing.T, global []string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(append([]string{}, global...), args...))
	repo, svc, cfg = nil, nil, nil
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedAndUsers(t *testing.T) {
	global := setupTestDB(t)

	out, err := run(t, global, "seed")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !strings.Contains(out, "Created user testuser") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = run(t, global, "seed")
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("expected idempotent seed, got %q", out)
	}

	out, err = run(t, global, "users")
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}
	if !strings.Contains(out, "testuser") || !strings.Contains(out, "test@fitbyte.com") {
		t.Errorf("users output missing seeded user: %q", out)
	}
}

func TestMigrateReportsVersion(t *testing.T) {
	global := setupTestDB(t)

	out, err := run(t, global, "migrate")
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out, "schema at version 1") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = run(t, global, "migrate")
	if err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if !strings.Contains(out, "up to date") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	global := setupTestDB(t)
	t.Cleanup(func() { resetConfirm = false })

	if _, err := run(t, global, "seed"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := run(t, global, "reset"); err == nil {
		t.Fatal("expected reset without --yes to fail")
	}
	if _, err := run(t, global, "reset", "--yes"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	out, err := run(t, global, "users")
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}
	if !strings.Contains(out, "No users found") {
		t.Errorf("expected empty database after reset, got %q", out)
	}
}

func TestExport(t *testing.T) {
	global := setupTestDB(t)
	t.Cleanup(func() { exportUser, exportFormat, exportOutput = "", "json", "" })

	if _, err := run(t, global, "seed"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	out, err := run(t, global, "export", "--user", "testuser")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var data struct {
		Version string `json:"version"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, out)
	}
	if data.User.Username != "testuser" || data.Version == "" {
		t.Errorf("unexpected export: %+v", data)
	}

	path := filepath.Join(t.TempDir(), "out.xml")
	if _, err := run(t, global, "export", "--user", "test@fitbyte.com", "-f", "xml", "-o", path); err != nil {
		t.Fatalf("xml export failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !strings.Contains(string(b), "<fitbyte") {
		t.Errorf("xml export missing root: %s", b)
	}

	if _, err := run(t, global, "export", "--user", "nobody", "-f", "json", "-o", ""); err == nil {
		t.Error("expected error for unknown user")
	}
	if _, err := run(t, global, "export", "--user", "testuser", "-f", "csv"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight long = %q", got)
	}
}
