// Command stackprobe exercises the stack allocator end to end: it
// creates a stack, walks it downward one page at a time so every step
// past the committed region faults and grows the stack, and reports
// each growth until the configured depth (or the ceiling) is reached.
//
// Useful for eyeballing the platform's growth behavior:
//
//	stackprobe -max 1048576 -size 1 -depth 65536
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jamesxia20181001/prs/fault"
	"github.com/jamesxia20181001/prs/internal/vmem"
	"github.com/jamesxia20181001/prs/stack"
)

func main() {
	maxSize := flag.Uint64("max", stack.DefaultMaxSize, "stack ceiling in bytes (page multiple)")
	initSize := flag.Uint64("size", 1, "requested initial stack size in bytes")
	depth := flag.Uint64("depth", 64*1024, "depth in bytes to probe below the stack top")
	verbose := flag.Bool("v", false, "log every page touched, not just growth")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	p := message.NewPrinter(language.English)

	if err := run(log, p, uintptr(*maxSize), uintptr(*initSize), uintptr(*depth), *verbose); err != nil {
		log.Error("probe failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, p *message.Printer, maxSize, initSize, depth uintptr, verbose bool) error {
	ps := vmem.PageSize()
	log.Info("probing", "page_size", ps, "max_size", maxSize, "initial_size", initSize)

	a := stack.New(maxSize)
	s, err := fault.New(a, initSize)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer s.Close()

	p.Printf("stack top %#x, committed %d bytes\n", s.Top(), s.Size())

	grows := 0
	for off := ps; off <= depth; off += ps {
		addr := s.Top() - off
		if !s.Contains(addr) {
			p.Printf("reached the bottom of the reservation at depth %d bytes\n", off-ps)
			break
		}

		before := s.Size()
		err := s.Handle(func() {
			*(*byte)(unsafe.Pointer(addr)) = 0xdb
		})
		if errors.Is(err, stack.ErrSizeLimit) {
			p.Printf("stack exhausted at depth %d bytes (committed %d of %d)\n",
				off, s.Size(), maxSize)
			return nil
		}
		if err != nil {
			return fmt.Errorf("grow at depth %d: %w", off, err)
		}

		if s.Size() != before {
			grows++
			log.Info("stack grown",
				"depth", off,
				"old_size", before,
				"new_size", s.Size(),
				"pages", s.Size()/ps)
		} else if verbose {
			log.Debug("touched", "depth", off, "committed", s.Size())
		}
	}

	p.Printf("done: %d growth steps, %d bytes committed of a %d byte ceiling\n",
		grows, s.Size(), maxSize)
	return nil
}
