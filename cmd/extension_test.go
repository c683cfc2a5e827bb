package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// dripctl-hello prints the environment it received.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvStore, EnvStore, EnvCurrency, EnvCurrency, EnvLogLevel, EnvLogLevel)

	helloCmdPath := filepath.Join(tempDir, "dripctl-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write dripctl-hello source: %v", err)
	}

	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile dripctl-hello: %v", err)
	}
	log.Printf("Compiled dripctl-hello to %s", helloCmdPath)

	binaryPath := filepath.Join(tempDir, "dripctl")
	cmd = exec.Command("go", "build", "-o", binaryPath, "../dripctl")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile dripctl binary: %v", err)
	}

	expectedStore := "sqlite:" + filepath.Join(tempDir, "drip.db")
	args := []string{
		"-store", expectedStore,
		"-currency", "EUR",
		"-log-level", "debug",
		"hello",
		"world",
	}

	dripCmd := exec.Command(binaryPath, args...)
	dripCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	dripCmd.Stdout = &stdout
	dripCmd.Stderr = &stderr

	if err := dripCmd.Run(); err != nil {
		t.Fatalf("dripctl command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvStore + "=" + expectedStore,
		EnvCurrency + "=EUR",
		EnvLogLevel + "=debug",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("does-not-exist", nil); found || code != 0 {
		t.Errorf("RunExtension() = (%v, %d), want (false, 0)", found, code)
	}
}
