package archiver

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"HealthyHabits/internal/models"
)

// DemoExample is one row of the static reference table shipped with the app.
// It is illustrative only and not derived from stored profiles.
type DemoExample struct {
	Condition string
	Diet      string
	Exercise  string
}

var demoExamples = []DemoExample{
	{"Thyroid", "Include selenium-containing foods, avoid processed sugar", "30 min walk, strength 2x/week"},
	{"Sleep Apnea", "Avoid caffeine late, light dinner", "Breathing exercises, positional sleep"},
	{"Heart Risk", "Low saturated fats, high fiber", "Low-impact cardio, consult physician"},
}

var profileHeader = []string{"id", "name", "age", "gender", "conditions", "goal", "created_at"}

func DemoExamples() []DemoExample {
	return append([]DemoExample(nil), demoExamples...)
}

// WriteDemoExamples overwrites path with the reference table. The file is
// written to a temp file first and renamed into place.
func WriteDemoExamples(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("WriteDemoExamples(): failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".demo_examples_*.csv")
	if err != nil {
		return fmt.Errorf("WriteDemoExamples(): failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	w.Write([]string{"condition", "diet", "exercise"})
	for _, ex := range demoExamples {
		w.Write([]string{ex.Condition, ex.Diet, ex.Exercise})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("WriteDemoExamples(): failed to write rows: %w", err)
	}
	// CreateTemp는 0600으로 생성하므로 일반 파일 권한으로 변경
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("WriteDemoExamples(): failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("WriteDemoExamples(): failed to close temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// WriteProfiles writes profiles as CSV in the order given. Conditions use the
// same comma-joined form as the database column.
func WriteProfiles(out io.Writer, profiles []models.Profile) error {
	w := csv.NewWriter(out)
	if err := w.Write(profileHeader); err != nil {
		return err
	}
	for _, p := range profiles {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.Itoa(p.Age),
			p.Gender,
			strings.Join(p.Conditions, ","),
			p.Goal,
			p.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
