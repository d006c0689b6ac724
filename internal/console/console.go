// Package console implements the pipeline's console protocol: banner
// headers, ✓/✗ progress lines, and warnings. Output goes to stdout by
// default and can be redirected for tests.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
)

// SetOutput redirects console output. Defaults to os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Banner prints a section header framed by 80-character rules.
func Banner(text string) {
	mu.Lock()
	defer mu.Unlock()
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", rule, text, rule)
}

// OK prints a success line prefixed with ✓.
func OK(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "✓ "+format+"\n", args...)
}

// Fail prints a failure line prefixed with ✗.
func Fail(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "✗ "+format+"\n", args...)
}

// Warn prints a warning line.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "⚠ "+format+"\n", args...)
}

// Printf prints a plain line.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format+"\n", args...)
}
