package game

import "github.com/palemoky/landlord-engine/internal/apperrors"

// Listener 接收游戏事件，由界面层实现。回调在会话锁释放之后调用，可以安全地回调会话。
type Listener interface {
	OnInvalidAction(playerID string, reason apperrors.Reason)
	OnRoundRestart()
	OnLandlordAssigned(playerID string)
	OnGameOver(winnerID string)
	OnTurnAdvanced(playerID string)
}

// NopListener 忽略所有事件
type NopListener struct{}

func (NopListener) OnInvalidAction(string, apperrors.Reason) {}
func (NopListener) OnRoundRestart()                          {}
func (NopListener) OnLandlordAssigned(string)                {}
func (NopListener) OnGameOver(string)                        {}
func (NopListener) OnTurnAdvanced(string)                    {}

// ListenerFuncs 用函数实现 Listener，未设置的回调会被忽略
type ListenerFuncs struct {
	InvalidAction    func(playerID string, reason apperrors.Reason)
	RoundRestart     func()
	LandlordAssigned func(playerID string)
	GameOver         func(winnerID string)
	TurnAdvanced     func(playerID string)
}

func (f ListenerFuncs) OnInvalidAction(playerID string, reason apperrors.Reason) {
	if f.InvalidAction != nil {
		f.InvalidAction(playerID, reason)
	}
}

func (f ListenerFuncs) OnRoundRestart() {
	if f.RoundRestart != nil {
		f.RoundRestart()
	}
}

func (f ListenerFuncs) OnLandlordAssigned(playerID string) {
	if f.LandlordAssigned != nil {
		f.LandlordAssigned(playerID)
	}
}

func (f ListenerFuncs) OnGameOver(winnerID string) {
	if f.GameOver != nil {
		f.GameOver(winnerID)
	}
}

func (f ListenerFuncs) OnTurnAdvanced(playerID string) {
	if f.TurnAdvanced != nil {
		f.TurnAdvanced(playerID)
	}
}

// event 延迟到解锁后再发出的事件
type event func(Listener)

func invalidAction(playerID string, reason apperrors.Reason) event {
	return func(l Listener) { l.OnInvalidAction(playerID, reason) }
}

func roundRestart() event {
	return func(l Listener) { l.OnRoundRestart() }
}

func landlordAssigned(playerID string) event {
	return func(l Listener) { l.OnLandlordAssigned(playerID) }
}

func gameOver(winnerID string) event {
	return func(l Listener) { l.OnGameOver(winnerID) }
}

func turnAdvanced(playerID string) event {
	return func(l Listener) { l.OnTurnAdvanced(playerID) }
}
