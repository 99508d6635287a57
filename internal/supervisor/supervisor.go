// Package supervisor spawns the configured downloader, captures its
// output, and owns the "current child" handle cancellation needs
// (spec §4.8). Process-group signaling is validated against
// golang.org/x/sys/unix, the same platform package the teacher depends
// on for its own syscall-level plumbing.
package supervisor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/radio4000/r4fs/internal/rerr"
)

// Result is the outcome of one subprocess run.
type Result struct {
	Outcome  Outcome
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supervisor spawns at most one subprocess at a time and remembers it
// so Stop can reach in and cancel it from another goroutine.
type Supervisor struct {
	Logger *slog.Logger

	mu      sync.Mutex
	cmd     *exec.Cmd
	stopped bool
}

func (s *Supervisor) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Run spawns name with args, in its own process group, and blocks
// until it exits or ctx is cancelled. A spawn failure because the
// binary is missing is reported as rerr.DownloaderMissing, distinct
// from a per-track failure (spec §4.8).
func (s *Supervisor) Run(ctx context.Context, name string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, rerr.New(rerr.TrackFailed, "supervisor.Run", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, rerr.New(rerr.TrackFailed, "supervisor.Run", err)
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Result{}, rerr.New(rerr.DownloaderMissing, "supervisor.Run", err)
		}
		return Result{}, rerr.New(rerr.DownloaderMissing, "supervisor.Run", err)
	}

	s.mu.Lock()
	s.cmd = cmd
	s.stopped = false
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.cmd = nil
		s.mu.Unlock()
	}()

	var outcome Outcome
	var stdoutBuf, stderrBuf strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)
	go drain(stdoutPipe, &stdoutBuf, &outcome, &wg)
	go drain(stderrPipe, &stderrBuf, &outcome, &wg)
	wg.Wait()

	waitErr := cmd.Wait()
	exitCode := 0
	if waitErr != nil {
		if ctx.Err() != nil || s.wasStopped() {
			s.logger().Info("supervisor: subprocess cancelled", "name", name)
			return Result{}, rerr.New(rerr.Cancelled, "supervisor.Run", waitErr)
		}
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return Result{Outcome: outcome, ExitCode: exitCode, Stdout: stdoutBuf.String(), Stderr: stderrBuf.String()}, nil
}

func drain(r io.Reader, buf *strings.Builder, outcome *Outcome, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteString("\n")
		scanLine(line, outcome)
	}
}

// Stop cancels the currently running child, if any, following the
// SIGTERM-then-SIGKILL process-group escalation of spec §4.8.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	cmd := s.cmd
	if cmd != nil {
		s.stopped = true
	}
	s.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return
	}

	pid := cmd.Process.Pid
	signalGroup(pid, unix.SIGTERM)
	time.Sleep(500 * time.Millisecond)

	s.mu.Lock()
	stillRunning := s.cmd != nil
	s.mu.Unlock()
	if stillRunning {
		signalGroup(pid, unix.SIGKILL)
	}
}

func (s *Supervisor) wasStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// signalGroup sends sig to pid's process group, falling back to the
// leader alone if group signaling is rejected (spec §4.8 step 2/4).
func signalGroup(pid int, sig unix.Signal) {
	if err := unix.Kill(-pid, sig); err != nil {
		_ = unix.Kill(pid, sig)
	}
}
