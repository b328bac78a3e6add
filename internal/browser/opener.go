// Package browser opens URLs with the host's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Opener opens a URL. Implementations are fire-and-forget: they must not
// block on the launched application.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// Nop ignores every request.
var Nop Opener = OpenerFunc(func(string) error { return nil })

// System launches the platform's default URL handler.
type System struct {
	// GOOS selects the launcher; empty means runtime.GOOS.
	GOOS string
	// start runs the command; nil means (*exec.Cmd).Start.
	start func(cmd *exec.Cmd) error
}

// Command builds the launcher command for url.
func (s System) Command(url string) *exec.Cmd {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// Open starts the launcher and reaps it in the background.
func (s System) Open(url string) error {
	cmd := s.Command(url)
	start := s.start
	if start == nil {
		start = func(c *exec.Cmd) error {
			if err := c.Start(); err != nil {
				return err
			}
			go func() { _ = c.Wait() }()
			return nil
		}
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

// Recorder remembers every URL it was asked to open.
type Recorder struct {
	mu   sync.Mutex
	urls []string
	Err  error
}

func (r *Recorder) Open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return r.Err
}

// URLs returns a copy of the recorded URLs.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}
