//go:build darwin

package sample

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"syscall"

	"go.uber.org/zap"
)

// SubprocessSampler spawns a privileged powermetrics process and turns its
// null-byte-delimited stream of plist-xml documents into Samples (spec
// §4.1). Grounded on context-labs-mactop's powermetrics invocation and
// scanner split function, generalized from a raw map decode into the typed
// PowerMetricsDoc.
type SubprocessSampler struct {
	IntervalMS int
	Log        *zap.SugaredLogger
}

// Run starts powermetrics and blocks until ctx is canceled or the child
// exits. A child exit while ctx is still active is a fatal source failure:
// Run returns a non-nil error and the caller is expected to terminate the
// program.
func (s SubprocessSampler) Run(ctx context.Context, cb Callback) error {
	cmd := exec.CommandContext(ctx, "powermetrics",
		"--samplers", "cpu_power,gpu_power,ane_power,network,disk",
		"-f", "plist",
		"-i", strconv.Itoa(s.IntervalMS),
	)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("sample: powermetrics stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("sample: start powermetrics: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	scanner.Split(splitOnNUL)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for scanner.Scan() {
			doc, err := ParsePowerMetricsDoc(scanner.Bytes())
			if err != nil {
				if s.Log != nil {
					s.Log.Warnw("skipping unparseable powermetrics document", "error", err)
				}
				continue
			}
			cb(Sample{Timestamp: NowSeconds(), Raw: doc})
		}
	}()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		_ = cmd.Wait()
		return nil
	case <-done:
		werr := cmd.Wait()
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("sample: powermetrics exited unexpectedly: %w", werr)
	}
}

// splitOnNUL is a bufio.SplitFunc that treats the null byte powermetrics
// uses to separate plist-xml documents as the token delimiter.
func splitOnNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
