package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// finalizer restores the terminal; tcell.Screen satisfies it
type finalizer interface {
	Fini()
}

// crashGuard restores the terminal and exits when any goroutine panics
// A deferred recover only sees panics of its own goroutine, so every goroutine defers guard
type crashGuard struct {
	screen finalizer
	out    io.Writer
	exit   func(code int)
	once   sync.Once
}

func newCrashGuard(screen finalizer) *crashGuard {
	return &crashGuard{screen: screen, out: os.Stderr, exit: os.Exit}
}

// guard must be deferred directly, recover only works one frame up
func (c *crashGuard) guard() {
	if r := recover(); r != nil {
		c.handle(r, debug.Stack())
	}
}

// handle reports the first crash only; a second panicking goroutine waits on once and exits with it
func (c *crashGuard) handle(r any, stack []byte) {
	c.once.Do(func() {
		c.screen.Fini()
		fmt.Fprintf(c.out, "\n\x1b[31mCTHULHU-STRIKE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(c.out, "Stack Trace:\n%s\n", stack)
	})
	c.exit(1)
}

// Go runs fn on the errgroup with the guard installed
func (c *crashGuard) Go(g interface{ Go(func() error) }, fn func() error) {
	g.Go(func() error {
		defer c.guard()
		return fn()
	})
}
