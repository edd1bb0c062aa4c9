package archiver

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"HealthyHabits/internal/models"
)

func TestWriteDemoExamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.csv")

	// Written on every run: a second write must leave the same content.
	for i := 0; i < 2; i++ {
		if err := WriteDemoExamples(path); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "condition" || rows[0][1] != "diet" || rows[0][2] != "exercise" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[2][0] != "Sleep Apnea" || rows[3][2] != "Low-impact cardio, consult physician" {
		t.Fatalf("unexpected rows %v", rows[1:])
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".demo_examples_*"))
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
}

func TestWriteProfiles(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	profiles := []models.Profile{
		{ID: 2, Name: "Meera, Jr.", Age: 30, Gender: "Female", Conditions: []string{"Thyroid", "Sleep Apnea"}, Goal: "Better Sleep", CreatedAt: created},
		{ID: 1, Name: "Ravi", Age: 64, Gender: "Male", Conditions: []string{}, Goal: "Healthy Habits", CreatedAt: created},
	}

	var buf bytes.Buffer
	if err := WriteProfiles(&buf, profiles); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"2", "Meera, Jr.", "30", "Female", "Thyroid,Sleep Apnea", "Better Sleep", "2026-01-02T03:04:05Z"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Fatalf("column %d: expected %q, got %q", i, v, rows[1][i])
		}
	}
	if rows[2][4] != "" {
		t.Fatalf("expected empty conditions, got %q", rows[2][4])
	}
}

func TestDemoExamplesReturnsCopy(t *testing.T) {
	ex := DemoExamples()
	ex[0].Condition = "changed"
	if demoExamples[0].Condition != "Thyroid" {
		t.Fatal("DemoExamples leaked the table")
	}
}

func TestWriteDemoExamplesIsWorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), "demo.csv")
	if err := WriteDemoExamples(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0644 {
		t.Fatalf("expected mode 0644, got %v", mode)
	}
}
