package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bmicalc/internal/output"
	"bmicalc/pkg/api"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestSingleText(t *testing.T) {
	code, out, errOut := run(t, "--weight", "70", "--height", "175")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := output.TSVHeader + "\ninput\t70\t175\t22.86\tHealthy\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestSingleJSON(t *testing.T) {
	code, out, _ := run(t, "-w", "100", "-H", "170", "-o", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var got []api.ResultV1
	if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 1 {
		t.Fatalf("decode: %v %q", err, out)
	}
	if got[0].BMIText != "34.60" || got[0].Category != "Obese" || got[0].Illustration != "assets/Obese.png" {
		t.Fatalf("unexpected %+v", got[0])
	}
}

func TestSingleInvalidRendersNothing(t *testing.T) {
	for _, args := range [][]string{
		{"-w", "0", "-H", "170"},
		{"-w", "abc", "-H", "170"},
		{"-w", "70", "-H", "-5", "-o", "json"},
	} {
		code, out, errOut := run(t, args...)
		if code != 1 {
			t.Errorf("%v: exit %d, want 1", args, code)
		}
		if out != "" {
			t.Errorf("%v: stdout should be empty, got %q", args, out)
		}
		if !strings.Contains(errOut, "Please enter valid weight and height.") {
			t.Errorf("%v: notice missing from stderr %q", args, errOut)
		}
	}
}

func TestInvalidExitCodeFlag(t *testing.T) {
	code, _, errOut := run(t, "-w", "0", "-H", "170", "--invalid-exit-code", "0", "-q")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.Contains(errOut, "WARN") {
		t.Fatalf("quiet should drop warnings: %q", errOut)
	}
}

func TestLegacyBands(t *testing.T) {
	// 24.95 sits in the legacy gap
	_, std, _ := run(t, "-w", "24.95", "-H", "100", "--no-header")
	_, leg, _ := run(t, "-w", "24.95", "-H", "100", "--no-header", "--bands", "legacy")
	if !strings.HasSuffix(std, "\tHealthy\n") || !strings.HasSuffix(leg, "\tObese\n") {
		t.Fatalf("standard=%q legacy=%q", std, leg)
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestBatch(t *testing.T) {
	fn := writeFile(t, "m.tsv", "# people\nzed 70 175\namy 45 160\nbob abc 170\n")
	code, out, errOut := run(t, fn, "--sort", "-o", "jsonl")
	if code != 1 {
		t.Fatalf("exit %d, want 1 for an invalid row", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.Contains(lines[0], `"id":"amy"`) || !strings.Contains(lines[1], `"error":"invalid_input"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(errOut, "WARN: "+fn+":4 bob: weight: invalid_input") {
		t.Fatalf("missing row warning: %q", errOut)
	}
}

func TestBatchMetricsFile(t *testing.T) {
	fn := writeFile(t, "m.tsv", "70 175\n100 170\n0 170\n")
	prom := filepath.Join(t.TempDir(), "bmi.prom")
	code, _, _ := run(t, "-i", fn, "--metrics-file", prom, "--invalid-exit-code", "4")
	if code != 4 {
		t.Fatalf("exit %d, want 4", code)
	}
	b, err := os.ReadFile(prom)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`bmi_results_total{category="Healthy"} 1`,
		`bmi_results_total{category="Obese"} 1`,
		"bmi_invalid_inputs_total 1",
	} {
		if !strings.Contains(string(b), want) {
			t.Errorf("metrics missing %q:\n%s", want, b)
		}
	}
}

func TestUsageAndErrors(t *testing.T) {
	code, out, _ := run(t)
	if code != 0 || !strings.Contains(out, "body mass index calculator") {
		t.Fatalf("no-arg help: exit %d out %q", code, out)
	}
	code, out, _ = run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "bmi version ") {
		t.Fatalf("version: exit %d out %q", code, out)
	}
	code, out, errOut := run(t, "--weight", "70")
	if code != ExitUsage || out != "" || !strings.Contains(errOut, "error: --weight and --height must be supplied together") {
		t.Fatalf("usage error: exit %d out %q err %q", code, out, errOut)
	}
	code, _, errOut = run(t, filepath.Join(t.TempDir(), "missing.tsv"))
	if code != ExitUsage || !strings.Contains(errOut, "error:") {
		t.Fatalf("missing file: exit %d err %q", code, errOut)
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("BMI_OUTPUT", "jsonl")
	code, out, _ := run(t, "-w", "45", "-H", "160")
	if code != 0 || !strings.Contains(out, `"category":"Underweight"`) {
		t.Fatalf("exit %d out %q", code, out)
	}
	t.Setenv("BMI_PRETTY", "maybe")
	if code, _, _ := run(t, "-w", "45", "-H", "160"); code != ExitUsage {
		t.Fatalf("bad env should be a usage error, got %d", code)
	}
}

func TestCancelled(t *testing.T) {
	fn := writeFile(t, "m.tsv", "70 175\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := RunContext(ctx, []string{fn}, &out, &errBuf); code != ExitCancelled {
		t.Fatalf("exit %d, want %d", code, ExitCancelled)
	}
}

func TestExamples(t *testing.T) {
	code, out, _ := run(t, "--examples")
	if code != 0 || !strings.HasPrefix(out, "bmi quickstart") || !strings.Contains(out, "--help") {
		t.Fatalf("exit %d out %q", code, out)
	}
}
