//starts the engine process, speaks UCI over stdin/stdout, and exposes a simple BestMove method.

package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

type UCIEngine struct {
	cmd   *exec.Cmd
	in    *bufio.Writer
	out   *bufio.Scanner
	mu    sync.Mutex
	ready bool
}

func NewUCIEngine(path string) (*UCIEngine, error) {
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	e := &UCIEngine{
		cmd: cmd,
		in:  bufio.NewWriter(stdin),
		out: bufio.NewScanner(stdout),
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	// Handshake: "uci" -> wait for "uciok"; also "isready" -> "readyok"
	if err := e.send("uci"); err != nil {
		return nil, err
	}
	if err := e.waitFor("uciok"); err != nil {
		return nil, err
	}
	if err := e.send("isready"); err != nil {
		return nil, err
	}
	if err := e.waitFor("readyok"); err != nil {
		return nil, err
	}
	e.ready = true
	return e, nil
}

// waitFor consumes output until the exact token line appears. EOF before the
// token means whatever is running at the engine path does not speak UCI, so
// it surfaces here instead of as a confusing failure on the first query.
func (e *UCIEngine) waitFor(token string) error {
	for e.out.Scan() {
		if e.out.Text() == token {
			return nil
		}
	}
	if err := e.out.Err(); err != nil {
		return fmt.Errorf("waiting for %q: %w", token, err)
	}
	return fmt.Errorf("engine closed output before %q", token)
}

func (e *UCIEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_ = e.send("quit")
	return e.cmd.Wait()
}

func (e *UCIEngine) NewGame() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return errors.New("engine not ready")
	}
	if err := e.send("ucinewgame"); err != nil {
		return err
	}
	if err := e.send("isready"); err != nil {
		return err
	}
	return e.waitFor("readyok")
}

// SetStrength caps the engine at a target rating via UCI_LimitStrength and
// UCI_Elo. Engine options are process-wide state: with two engine players of
// different strengths sharing one process this must be re-sent immediately
// before every query, and only works because play is strictly sequential.
func (e *UCIEngine) SetStrength(elo Elo) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return errors.New("engine not ready")
	}
	if err := e.send("setoption name UCI_LimitStrength value true"); err != nil {
		return err
	}
	return e.send(fmt.Sprintf("setoption name UCI_Elo value %d", elo))
}

// BestMove asks for the best move in the given position within a fixed
// movetime budget and returns it in UCI notation.
func (e *UCIEngine) BestMove(ctx context.Context, fen string, moveTimeMS int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return "", errors.New("engine not ready")
	}
	if moveTimeMS <= 0 {
		moveTimeMS = 100
	}

	// Load position
	if err := e.send(fmt.Sprintf("position fen %s", fen)); err != nil {
		return "", err
	}
	if err := e.send(fmt.Sprintf("go movetime %d", moveTimeMS)); err != nil {
		return "", err
	}

	var best string

	// Read until "bestmove ..." or context cancels
	readDone := make(chan error, 1)
	go func() {
		for e.out.Scan() {
			line := e.out.Text()
			if strings.HasPrefix(line, "bestmove ") {
				fields := strings.Fields(line)
				if len(fields) >= 2 {
					best = fields[1]
				}
				break
			}
		}
		readDone <- e.out.Err()
	}()

	var err error
	select {
	case <-ctx.Done():
		_ = e.send("stop")
		select {
		case err = <-readDone:
		case <-time.After(500 * time.Millisecond):
			err = ctx.Err()
		}
	case err = <-readDone:
	}
	if err != nil && err != bufio.ErrBufferFull {
		return "", err
	}
	if best == "" || best == "(none)" {
		return "", fmt.Errorf("engine returned no best move for %q", fen)
	}

	return best, nil
}

func (e *UCIEngine) send(cmd string) error {
	_, err := fmt.Fprintln(e.in, cmd)
	if err != nil {
		return err
	}
	return e.in.Flush()
}
