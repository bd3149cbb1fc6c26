package rod

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// chrome is one launched Chrome process together with its CDP connection.
// Its fields other than browser and proc are guarded by Fetcher.mu.
type chrome struct {
	browser *rod.Browser
	proc    *launcher.Launcher

	// active counts renders that still hold pages in this process.
	active int
	// retired is set once a newer process has replaced this one; the
	// process is shut down when its last render finishes.
	retired bool
}

// launchChrome starts a headless Chrome tuned for unattended rendering.
func launchChrome() (*chrome, error) {
	proc := launcher.New().
		Headless(true).
		Leakless(true).
		Set("disable-dev-shm-usage").
		Set("disable-renderer-backgrounding").
		Set("disable-background-timer-throttling")

	controlURL, err := proc.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		proc.Kill()
		return nil, fmt.Errorf("connecting to chrome: %w", err)
	}
	return &chrome{browser: browser, proc: proc}, nil
}

// shutdown closes the connection and kills the process.
func (c *chrome) shutdown() error {
	err := c.browser.Close()
	c.proc.Kill()
	return err
}

func (c *chrome) pid() int {
	return c.proc.PID()
}
