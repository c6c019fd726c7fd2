package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the engine table into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine.log.{debug,info,warn,error} are defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	logTbl := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	}
	for name, fn := range levels {
		L.SetField(logTbl, name, L.NewFunction(func(L *lua.LState) int {
			fn("lua", zap.String("msg", L.CheckString(1)))
			return 0
		}))
	}
	L.SetField(engine, "log", logTbl)
	L.SetGlobal("engine", engine)
}
