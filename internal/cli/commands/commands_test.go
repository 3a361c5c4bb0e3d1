package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iutkarshydv/aivia/internal/config"
)

func TestRolesCmdListsCatalog(t *testing.T) {
	var buf bytes.Buffer
	cmd := RolesCmd()
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "backend") {
		t.Fatalf("expected backend role in output: %s", out)
	}
	if got := len(strings.Split(strings.TrimSpace(out), "\n")); got != 6 {
		t.Fatalf("expected 6 roles, got %d lines", got)
	}
}

func TestCheckCmdAcceptsValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	cmd := CheckCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ok: resume.pdf") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestCheckCmdRejectsWrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.exe")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := CheckCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected rejection")
	}
}

func TestInitCmdWritesConfig(t *testing.T) {
	root := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cmd := InitCmd()
	cmd.SetOut(new(bytes.Buffer))
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, config.AiviaDir, "config.toml")); err != nil {
		t.Fatal(err)
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := VersionCmd()
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "aivia") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
