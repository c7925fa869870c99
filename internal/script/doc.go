// Package script embeds a sandboxed Lua interpreter for driving a pad.
//
// A State owns one gopher-lua LState with only the safe standard libraries
// open (base, table, string, math). Bind installs two entry points for
// scripts:
//
//   - eval(src): parses and evaluates an arithmetic expression, returning a
//     number, or nil and a message when the source does not parse.
//   - pad: a table of edit operations (insert, append, delete, replace, undo,
//     text, len) backed by an engine.Pad. Edits made from Lua go through the
//     pad's command history, so pad.undo() reverses them like any other edit.
//
// Example:
//
//	s := script.NewState()
//	defer s.Close()
//
//	p := engine.New()
//	if err := s.Bind(p); err != nil {
//	    // handle error
//	}
//
//	err := s.DoString(`
//	    pad.append("(3 + 5) * 2")
//	    local v = eval(pad.text())
//	    pad.append(" = " .. v)
//	`)
//
// LStates are not goroutine-safe. A State serializes Go-side access with a
// mutex, but a single State must not execute Lua from multiple goroutines.
package script
