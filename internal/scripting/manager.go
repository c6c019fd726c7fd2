package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ReactionHook is the Lua global React calls.
const ReactionHook = "on_read_changed"

// ReactionInfo is the snapshot passed to on_read_changed when the
// presentation read label changes.
type ReactionInfo struct {
	Label         string
	PreviousLabel string
	Score         float64
	DisplayScore  int
	PassChance    float64
	Exposed       bool
	Outfit        string
}

// Manager owns one sandboxed LState holding the reaction scripts.
//
// Manager is safe for concurrent use; the LState itself is single-threaded
// and calls are serialized.
type Manager struct {
	mu        sync.Mutex
	state     *lua.LState
	instLimit int
	logger    *zap.Logger
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: logger must be non-nil.
func NewManager(logger *zap.Logger, instLimit int) *Manager {
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{logger: logger, instLimit: instLimit}
}

// LoadGlobal creates a fresh VM, registers the engine modules, then executes
// every *.lua file in scriptDir in lexicographic order. A previously loaded
// VM is replaced only when the new one loads cleanly.
//
// Precondition: scriptDir must be a readable directory.
func (m *Manager) LoadGlobal(scriptDir string) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState(m.instLimit)
	m.RegisterModules(L)
	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	old := m.state
	m.state = L
	m.mu.Unlock()
	if old != nil {
		old.Close()
	}
	m.logger.Debug("scripts loaded", zap.String("dir", scriptDir), zap.Int("files", len(luaFiles)))
	return nil
}

// CallHook calls the named Lua global with a fresh instruction budget.
// Returns (LNil, nil) if no scripts are loaded or the hook is not defined.
// Lua runtime errors are logged at Warn level and never propagated.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.call(hook, args...), nil
}

// React calls on_read_changed(info) and returns its string result. Anything
// other than a string, including a missing hook or a runtime error, yields "".
func (m *Manager) React(info ReactionInfo) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return "", nil
	}
	L := m.state
	tbl := L.NewTable()
	L.SetField(tbl, "label", lua.LString(info.Label))
	L.SetField(tbl, "previous_label", lua.LString(info.PreviousLabel))
	L.SetField(tbl, "score", lua.LNumber(info.Score))
	L.SetField(tbl, "display_score", lua.LNumber(info.DisplayScore))
	L.SetField(tbl, "pass_chance", lua.LNumber(info.PassChance))
	L.SetField(tbl, "exposed", lua.LBool(info.Exposed))
	L.SetField(tbl, "outfit", lua.LString(info.Outfit))

	if s, ok := m.call(ReactionHook, tbl).(lua.LString); ok {
		return string(s), nil
	}
	return "", nil
}

// call runs hook on the loaded VM. The caller holds m.mu.
func (m *Manager) call(hook string, args ...lua.LValue) lua.LValue {
	L := m.state
	if L == nil {
		m.logger.Info("scripting: no scripts loaded", zap.String("hook", hook))
		return lua.LNil
	}
	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil
	}

	cancel := Budget(L, m.instLimit)
	defer cancel()
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error", zap.String("hook", hook), zap.Error(err))
		return lua.LNil
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret
}

// Close releases the VM. Subsequent hook calls are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}
