package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// Printer writes status lines. Colors are dropped when Plain is set.
type Printer struct {
	Out   io.Writer
	Plain bool
}

// Stdout prints to os.Stdout with colors.
func Stdout() *Printer {
	return &Printer{Out: os.Stdout}
}

func (p *Printer) color(c string) string {
	if p.Plain {
		return ""
	}
	return c
}

func (p *Printer) Header(msg string) {
	fmt.Fprintf(p.Out, "\n%s%s%s\n", p.color(ColorBold), msg, p.color(ColorReset))
}

func (p *Printer) Success(label, detail string) {
	p.status("✔", ColorGreen, label, detail)
}

func (p *Printer) Error(label, detail string) {
	p.status("✘", ColorRed, label, detail)
}

func (p *Printer) Warning(label, detail string) {
	p.status("!", ColorYellow, label, detail)
}

func (p *Printer) status(mark, c, label, detail string) {
	fmt.Fprintf(p.Out, "  %s%s%s %-15s %s%s%s\n", p.color(c), mark, p.color(ColorReset), label, p.color(c), detail, p.color(ColorReset))
}

// Spinner represents a loading indicator
type Spinner struct {
	out      io.Writer
	msg      string
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// StartSpinner starts a new spinner with the given message
func (p *Printer) StartSpinner(msg string) *Spinner {
	s := &Spinner{
		out:      p.Out,
		msg:      msg,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	if p.Plain {
		close(s.doneChan)
		return s
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.doneChan)
	chars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	i := 0
	for {
		fmt.Fprintf(s.out, "\r%s%s%s %s", ColorCyan, chars[i], ColorReset, s.msg)
		i = (i + 1) % len(chars)
		select {
		case <-s.stopChan:
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.msg)+10))
			return
		case <-ticker.C:
		}
	}
}

// Stop stops the spinner and clears the line. Safe to call multiple times.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.doneChan // Wait for goroutine to finish
}

// RunSpinner executes the given action while showing a spinner.
func (p *Printer) RunSpinner(msg string, action func() error) error {
	s := p.StartSpinner(msg)
	defer s.Stop()
	return action()
}
