// script.go - Lua hooks for test harnesses (gopher-lua)

package main

import (
	"fmt"
	"io"

	"github.com/intuitionamiga/six5go2"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

/*
A script runs once at load time and may define two callbacks:

	on_sync(pc)           called at every instruction boundary
	on_write(addr, value) called after every bus write

Globals available to the script:

	peek(addr)        RAM byte, no I/O side effects
	poke(addr, value) write RAM
	reg(name)         register value (A, X, Y, SP, P, PC), nil if unknown
	set_reg(name, v)  write a register, false if the name is unknown
	cycles()          clock cycles since reset
	stop(msg)         end the run successfully once the callback returns
	print(...)        goes to the runner's output

A Lua error inside a callback aborts the run with that error.
*/

type scriptHost struct {
	L      *lua.LState
	runner *six5go2.CPU6502Runner
	out    io.Writer

	onSync  *lua.LFunction
	onWrite *lua.LFunction

	stopped bool
	stopMsg string
}

func loadScript(path string, runner *six5go2.CPU6502Runner, out io.Writer) (*scriptHost, error) {
	host := &scriptHost{
		L:      lua.NewState(),
		runner: runner,
		out:    out,
	}
	host.register()

	if err := host.L.DoFile(path); err != nil {
		host.Close()
		return nil, errors.Wrapf(err, "load script %s", path)
	}

	if fn, ok := host.L.GetGlobal("on_sync").(*lua.LFunction); ok {
		host.onSync = fn
		runner.OnSync(host.callSync)
	}
	if fn, ok := host.L.GetGlobal("on_write").(*lua.LFunction); ok {
		host.onWrite = fn
		runner.OnWrite(host.callWrite)
	}
	return host, nil
}

func (h *scriptHost) register() {
	h.L.SetGlobal("peek", h.L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		L.Push(lua.LNumber(h.runner.Peek(uint16(addr))))
		return 1
	}))
	h.L.SetGlobal("poke", h.L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		value := L.CheckInt(2)
		h.runner.Bus().Poke(uint16(addr), byte(value))
		return 0
	}))
	h.L.SetGlobal("reg", h.L.NewFunction(func(L *lua.LState) int {
		v, ok := h.runner.GetRegister(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(v))
		return 1
	}))
	h.L.SetGlobal("set_reg", h.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		value := L.CheckInt(2)
		L.Push(lua.LBool(h.runner.CPU().SetRegister(name, uint64(value))))
		return 1
	}))
	h.L.SetGlobal("cycles", h.L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(h.runner.Cycles()))
		return 1
	}))
	h.L.SetGlobal("stop", h.L.NewFunction(func(L *lua.LState) int {
		h.stopped = true
		h.stopMsg = L.OptString(1, "script stop")
		return 0
	}))
	h.L.SetGlobal("print", h.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		for i := 1; i <= top; i++ {
			if i > 1 {
				fmt.Fprint(h.out, "\t")
			}
			fmt.Fprint(h.out, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(h.out)
		return 0
	}))
}

func (h *scriptHost) call(fn *lua.LFunction, name string, args ...lua.LValue) error {
	if err := h.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...); err != nil {
		return errors.Wrap(err, name)
	}
	if h.stopped {
		return errors.Wrap(six5go2.ErrStopped, h.stopMsg)
	}
	return nil
}

func (h *scriptHost) callSync(pc uint16) error {
	return h.call(h.onSync, "on_sync", lua.LNumber(pc))
}

func (h *scriptHost) callWrite(addr uint16, value byte) error {
	return h.call(h.onWrite, "on_write", lua.LNumber(addr), lua.LNumber(value))
}

func (h *scriptHost) Close() {
	h.L.Close()
}
