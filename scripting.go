// scripting.go - Lua scripting hook for unmapped accesses (C4.4.1)

package psxbus

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Global function names a guest script may define to observe accesses
// that miss every backing store and device range.
const (
	unknownReadGlobal  = "UnknownMemoryRead"
	unknownWriteGlobal = "UnknownMemoryWrite"
)

// LuaScriptHook implements ScriptHook against an embedded gopher-lua
// state. A script opts in by defining UnknownMemoryRead(addr, width) ->
// value (or nil to decline) and/or UnknownMemoryWrite(addr, width,
// value). Either global may be absent; each is checked independently on
// every call.
type LuaScriptHook struct {
	state *lua.LState

	readBroken  bool
	writeBroken bool
}

// NewLuaScriptHook wraps an already-configured *lua.LState. The caller
// owns the state's lifetime (Close it when done); this type only reads
// from it.
func NewLuaScriptHook(state *lua.LState) *LuaScriptHook {
	return &LuaScriptHook{state: state}
}

// OnUnknownRead calls the guest's UnknownMemoryRead global, if defined
// and not yet disarmed. A Lua-side error during the call disarms the
// global permanently for this hook instance (a script bug should not
// keep paying its cost on every subsequent unmapped read), mirroring the
// original implementation's one-shot unbind.
func (h *LuaScriptHook) OnUnknownRead(addr uint32, width int) (uint32, bool) {
	if h.readBroken {
		return 0, false
	}
	fn := h.state.GetGlobal(unknownReadGlobal)
	if fn == lua.LNil {
		return 0, false
	}
	err := h.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(addr), lua.LNumber(width))
	if err != nil {
		fmt.Printf("psxbus: UnknownMemoryRead error, disarming: %v\n", err)
		h.readBroken = true
		h.state.SetGlobal(unknownReadGlobal, lua.LNil)
		return 0, false
	}
	ret := h.state.Get(-1)
	h.state.Pop(1)
	if num, ok := ret.(lua.LNumber); ok {
		return uint32(int64(num)), true
	}
	return 0, false
}

// OnUnknownWrite calls the guest's UnknownMemoryWrite global the same
// way OnUnknownRead does, disarming it on error.
func (h *LuaScriptHook) OnUnknownWrite(addr uint32, width int, value uint32) {
	if h.writeBroken {
		return
	}
	fn := h.state.GetGlobal(unknownWriteGlobal)
	if fn == lua.LNil {
		return
	}
	err := h.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(addr), lua.LNumber(width), lua.LNumber(value))
	if err != nil {
		fmt.Printf("psxbus: UnknownMemoryWrite error, disarming: %v\n", err)
		h.writeBroken = true
		h.state.SetGlobal(unknownWriteGlobal, lua.LNil)
	}
}
