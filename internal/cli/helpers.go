package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ritualforge/ritual/internal/daemon"
)

// openDaemon loads the on-disk config and brings up the embedded engine.
// Every command that touches state goes through here so flags and config
// resolve the same way as the server.
func openDaemon() (*daemon.Daemon, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return daemon.New(cfg)
}

// newLineScanner creates a line scanner from a reader.
func newLineScanner(r io.Reader) *bufio.Scanner {
	return bufio.NewScanner(r)
}

// yesNo renders a checkbox marker for table output.
func yesNo(b bool) string {
	if b {
		return "x"
	}
	return " "
}

// joinInts renders a duration-option list like "2, 5, 10".
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
