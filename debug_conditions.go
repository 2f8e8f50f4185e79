// debug_conditions.go - stop-condition parser and evaluator for the 6502 runner

package six5go2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type ConditionOp int

const (
	CondOpEqual ConditionOp = iota
	CondOpNotEqual
	CondOpLess
	CondOpGreater
	CondOpLessEqual
	CondOpGreaterEqual
)

type ConditionSource int

const (
	CondSourceRegister ConditionSource = iota
	CondSourceMemory
	CondSourceCycles
	CondSourceInstructions
)

// Condition is one comparison evaluated at an instruction boundary.
type Condition struct {
	Source  ConditionSource
	RegName string
	MemAddr uint16
	Op      ConditionOp
	Value   uint64
}

// ConditionTarget is what a condition inspects.
type ConditionTarget interface {
	GetRegister(name string) (uint64, bool)
	Peek(addr uint16) byte
	Cycles() uint64
	Instructions() uint64
}

// ParseAddress accepts $hex, 0xhex, #decimal or bare hex.
func ParseAddress(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// #decimal
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 10, 64)
		return v, err == nil
	}

	// $hex
	if strings.HasPrefix(s, "$") {
		v, err := strconv.ParseUint(s[1:], 16, 64)
		return v, err == nil
	}

	// 0x or 0X hex
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	}

	v, err := strconv.ParseUint(s, 16, 64)
	return v, err == nil
}

// ParseCondition parses a condition string.
// Formats:
//
//	pc==$3469       - register PC, op ==, value 0x3469
//	[$0210]==$FF    - memory at 0x0210, op ==, value 0xFF
//	cycles>=#100000 - clock edges since reset
//	instructions>10 - instructions since reset
func ParseCondition(text string) (*Condition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("empty condition")
	}

	var opStr string
	var opIdx int
	for _, candidate := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		idx := strings.Index(text, candidate)
		if idx >= 0 {
			opStr = candidate
			opIdx = idx
			break
		}
	}
	if opStr == "" {
		return nil, errors.Errorf("no operator in %q (use ==, !=, <, >, <=, >=)", text)
	}

	var op ConditionOp
	switch opStr {
	case "==":
		op = CondOpEqual
	case "!=":
		op = CondOpNotEqual
	case "<":
		op = CondOpLess
	case ">":
		op = CondOpGreater
	case "<=":
		op = CondOpLessEqual
	case ">=":
		op = CondOpGreaterEqual
	}

	lhs := strings.TrimSpace(text[:opIdx])
	rhs := strings.TrimSpace(text[opIdx+len(opStr):])

	value, ok := ParseAddress(rhs)
	if !ok {
		return nil, errors.Errorf("invalid value: %s", rhs)
	}

	if strings.HasPrefix(lhs, "[") && strings.HasSuffix(lhs, "]") {
		addrStr := lhs[1 : len(lhs)-1]
		addr, ok := ParseAddress(addrStr)
		if !ok || addr > 0xFFFF {
			return nil, errors.Errorf("invalid memory address: %s", addrStr)
		}
		return &Condition{Source: CondSourceMemory, MemAddr: uint16(addr), Op: op, Value: value}, nil
	}

	switch strings.ToLower(lhs) {
	case "cycles":
		return &Condition{Source: CondSourceCycles, Op: op, Value: value}, nil
	case "instructions":
		return &Condition{Source: CondSourceInstructions, Op: op, Value: value}, nil
	}

	name := strings.ToUpper(lhs)
	if _, ok := (&CPU_6502{}).GetRegister(name); !ok {
		return nil, errors.Errorf("unknown register: %s", lhs)
	}
	return &Condition{Source: CondSourceRegister, RegName: name, Op: op, Value: value}, nil
}

// Eval reports whether the condition holds. A nil condition always holds.
func (cond *Condition) Eval(target ConditionTarget) bool {
	if cond == nil {
		return true
	}

	var actual uint64
	switch cond.Source {
	case CondSourceRegister:
		val, ok := target.GetRegister(cond.RegName)
		if !ok {
			return false
		}
		actual = val
	case CondSourceMemory:
		actual = uint64(target.Peek(cond.MemAddr))
	case CondSourceCycles:
		actual = target.Cycles()
	case CondSourceInstructions:
		actual = target.Instructions()
	}

	return compareValues(actual, cond.Op, cond.Value)
}

func compareValues(actual uint64, op ConditionOp, expected uint64) bool {
	switch op {
	case CondOpEqual:
		return actual == expected
	case CondOpNotEqual:
		return actual != expected
	case CondOpLess:
		return actual < expected
	case CondOpGreater:
		return actual > expected
	case CondOpLessEqual:
		return actual <= expected
	case CondOpGreaterEqual:
		return actual >= expected
	}
	return false
}

func (op ConditionOp) String() string {
	switch op {
	case CondOpEqual:
		return "=="
	case CondOpNotEqual:
		return "!="
	case CondOpLess:
		return "<"
	case CondOpGreater:
		return ">"
	case CondOpLessEqual:
		return "<="
	case CondOpGreaterEqual:
		return ">="
	}
	return "?"
}

// String returns a form ParseCondition accepts.
func (cond *Condition) String() string {
	if cond == nil {
		return ""
	}

	var lhs string
	switch cond.Source {
	case CondSourceRegister:
		lhs = cond.RegName
	case CondSourceMemory:
		lhs = fmt.Sprintf("[$%04X]", cond.MemAddr)
	case CondSourceCycles:
		lhs = "cycles"
	case CondSourceInstructions:
		lhs = "instructions"
	}
	return fmt.Sprintf("%s%s$%X", lhs, cond.Op, cond.Value)
}

// AnyCondition returns a stop function that fires when any of conds holds.
func AnyCondition(conds []*Condition) func(target ConditionTarget) bool {
	return func(target ConditionTarget) bool {
		for _, cond := range conds {
			if cond.Eval(target) {
				return true
			}
		}
		return false
	}
}
