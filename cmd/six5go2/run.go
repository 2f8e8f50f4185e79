// run.go - runs one ROM to a stop condition and reports the outcome

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/intuitionamiga/six5go2"
	"github.com/pkg/errors"
)

type runResult struct {
	file         string
	pc           uint16
	cycles       uint64
	instructions uint64
	reason       string
	err          error
}

func (r runResult) ok() bool {
	return r.err == nil
}

func (r runResult) String() string {
	status := "PASS"
	detail := r.reason
	if r.err != nil {
		status = "FAIL"
		detail = r.err.Error()
	}
	return fmt.Sprintf("%s %s: PC=$%04X cycles=%d instructions=%d: %s",
		status, r.file, r.pc, r.cycles, r.instructions, detail)
}

// errTrapped marks an instruction that jumped or branched to itself
// without any stop condition holding.
var errTrapped = errors.New("trapped")

func newRunner(opts *options, file string) (*six5go2.CPU6502Runner, error) {
	runner := six5go2.NewCPU6502Runner(nil, six5go2.CPU6502Config{
		LoadAddr:   opts.loadAddr,
		Entry:      opts.entry,
		DisableBCD: opts.noBCD,
		MaxCycles:  opts.maxCycles,
	})

	if opts.image {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "read image")
		}
		if err := runner.LoadImage(data, opts.loadAddr); err != nil {
			return nil, err
		}
		if opts.entry != 0 {
			runner.SetVector(six5go2.RESET_VECTOR, opts.entry)
		}
	} else if err := runner.LoadProgram(file); err != nil {
		return nil, err
	}

	if opts.hasReset {
		runner.SetVector(six5go2.RESET_VECTOR, opts.reset)
	}
	return runner, nil
}

// stopFunc combines -until conditions with self-jump trap detection.
// trapped is set when the trap fired without a condition holding.
func stopFunc(opts *options, runner *six5go2.CPU6502Runner, trapped *bool) func(six5go2.ConditionTarget) bool {
	conditions := six5go2.AnyCondition(opts.until)
	lastPC := runner.PC()
	first := true
	return func(target six5go2.ConditionTarget) bool {
		if len(opts.until) > 0 && conditions(target) {
			return true
		}
		pc := runner.PC()
		if opts.trap && !first && pc == lastPC {
			*trapped = true
			return true
		}
		first = false
		lastPC = pc
		return false
	}
}

func openTrace(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create trace")
	}
	return f, f.Close, nil
}

func runOne(ctx context.Context, opts *options, file string, stdout io.Writer) (result runResult) {
	result.file = file
	runner, err := newRunner(opts, file)
	if err != nil {
		result.err = err
		return result
	}
	defer func() {
		result.pc = runner.PC()
		result.cycles = runner.Cycles()
		result.instructions = runner.Instructions()
	}()

	var tracer *six5go2.Tracer6502
	if opts.trace != "" {
		w, closeTrace, err := openTrace(opts.trace, stdout)
		if err != nil {
			result.err = err
			return result
		}
		defer closeTrace()

		var traceOptions []six5go2.TraceOption6502
		if opts.busTrace {
			traceOptions = append(traceOptions, six5go2.WithBusTrace())
		}
		if opts.disasm {
			traceOptions = append(traceOptions, six5go2.WithDisassembly())
		}
		tracer = six5go2.NewTracer6502(w, traceOptions...)
	}

	// The reset sequence is re-run below with the tracer and script
	// attached so their view starts at the first instruction.
	if tracer != nil {
		runner.SetTracer(tracer)
	}
	if opts.script != "" {
		host, err := loadScript(opts.script, runner, stdout)
		if err != nil {
			result.err = err
			return result
		}
		defer host.Close()
	}
	trapped := false
	err = runner.Reset()
	if err == nil {
		stop := stopFunc(opts, runner, &trapped)
		if opts.step {
			err = runMonitor(ctx, runner, stop, os.Stdin, stdout)
		} else {
			err = runner.RunUntil(ctx, stop)
		}
	}

	if tracer != nil && tracer.Err() != nil && err == nil {
		err = errors.Wrap(tracer.Err(), "write trace")
	}

	switch {
	case err == nil && trapped:
		result.err = errors.Wrapf(errTrapped, "at $%04X", runner.PC())
	case err == nil:
		result.reason = describeStop(opts, runner)
	case errors.Cause(err) == six5go2.ErrStopped:
		result.reason = strings.TrimSuffix(err.Error(), ": "+six5go2.ErrStopped.Error())
	default:
		result.err = err
	}
	return result
}

func describeStop(opts *options, target six5go2.ConditionTarget) string {
	for _, cond := range opts.until {
		if cond.Eval(target) {
			return "reached " + cond.String()
		}
	}
	return "stopped"
}
