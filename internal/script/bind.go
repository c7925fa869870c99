package script

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scratchpad/internal/engine"
	"github.com/dshills/scratchpad/internal/expr"
)

// PadModule exposes a pad to Lua scripts.
type PadModule struct {
	pad *engine.Pad
}

// Bind installs the pad API into the state: the global eval(src) function and
// a "pad" table of edit operations backed by the given pad.
func (s *State) Bind(pad *engine.Pad) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	m := &PadModule{pad: pad}
	m.register(s.L)
	return nil
}

// register wires the module functions into the Lua state.
func (m *PadModule) register(L *lua.LState) {
	L.SetGlobal("eval", L.NewFunction(m.eval))

	mod := L.NewTable()
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "append", L.NewFunction(m.append))
	L.SetField(mod, "delete", L.NewFunction(m.delete))
	L.SetField(mod, "replace", L.NewFunction(m.replace))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "len", L.NewFunction(m.padLen))

	L.SetGlobal("pad", mod)
}

// eval(src) -> number
// Returns nil plus a message when src does not parse.
func (m *PadModule) eval(L *lua.LState) int {
	src := L.CheckString(1)

	tree, err := expr.Parse(src)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(lua.LNumber(expr.Evaluate(tree)))
	return 1
}

// insert(offset, text)
func (m *PadModule) insert(L *lua.LState) int {
	offset := L.CheckInt64(1)
	text := L.CheckString(2)

	if err := m.pad.Insert(engine.ByteOffset(offset), text); err != nil {
		L.RaiseError("insert: %v", err)
		return 0
	}
	return 0
}

// append(text)
func (m *PadModule) append(L *lua.LState) int {
	text := L.CheckString(1)

	if err := m.pad.Append(text); err != nil {
		L.RaiseError("append: %v", err)
		return 0
	}
	return 0
}

// delete(start, end)
func (m *PadModule) delete(L *lua.LState) int {
	start := L.CheckInt64(1)
	end := L.CheckInt64(2)

	if err := m.pad.Delete(engine.ByteOffset(start), engine.ByteOffset(end)); err != nil {
		L.RaiseError("delete: %v", err)
		return 0
	}
	return 0
}

// replace(start, end, text)
func (m *PadModule) replace(L *lua.LState) int {
	start := L.CheckInt64(1)
	end := L.CheckInt64(2)
	text := L.CheckString(3)

	if err := m.pad.Replace(engine.ByteOffset(start), engine.ByteOffset(end), text); err != nil {
		L.RaiseError("replace: %v", err)
		return 0
	}
	return 0
}

// undo() -> bool
// Returns false plus a message when the history is empty.
func (m *PadModule) undo(L *lua.LState) int {
	err := m.pad.Undo()
	if errors.Is(err, engine.ErrNothingToUndo) {
		L.Push(lua.LFalse)
		L.Push(lua.LString("nothing to undo"))
		return 2
	}
	if err != nil {
		L.RaiseError("undo: %v", err)
		return 0
	}

	L.Push(lua.LTrue)
	return 1
}

// text() -> string
func (m *PadModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.pad.Text()))
	return 1
}

// len() -> number
func (m *PadModule) padLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.pad.Len()))
	return 1
}
