// Package apperrors 定义规则引擎对外暴露的错误。
//
// 错误分两类：玩家操作错误（可恢复，游戏状态不变，对应一个 Reason 信号）
// 和结构性错误（调用方或集成层的 bug，例如未知玩家 ID）。
package apperrors

import "errors"

// Category 错误类别
type Category int

const (
	CategoryUserInput  Category = iota // 玩家操作错误
	CategoryStructural                 // 集成错误
)

// Reason 非法操作的原因，随 OnInvalidAction 信号一起发出
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmptySelection
	ReasonIllegalShape
	ReasonDoesNotBeatPrevious
	ReasonCannotPassNow
	ReasonNotYourTurn
)

var reasonNames = map[Reason]string{
	ReasonNone:                "NONE",
	ReasonEmptySelection:      "EMPTY_SELECTION",
	ReasonIllegalShape:        "ILLEGAL_SHAPE",
	ReasonDoesNotBeatPrevious: "DOES_NOT_BEAT_PREVIOUS",
	ReasonCannotPassNow:       "CANNOT_PASS_NOW",
	ReasonNotYourTurn:         "NOT_YOUR_TURN",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// 错误码
const (
	ErrCodeEmptySelection = 1001
	ErrCodeIllegalShape   = 1002
	ErrCodeCannotBeat     = 1003
	ErrCodeCannotPass     = 1004
	ErrCodeNotYourTurn    = 1005
	ErrCodeGameNotStart   = 1006
	ErrCodeGameOver       = 1007
	ErrCodeCardNotInHand  = 1008

	ErrCodePlayerNotFound  = 2001
	ErrCodeUnknownKind     = 2002
	ErrCodeDuplicatePlayer = 2003
	ErrCodeBadDeck         = 2004
	ErrCodePlayerCount     = 2005
)

// GameError 游戏错误
type GameError struct {
	Code     int
	Message  string
	Category Category
	Reason   Reason
}

func (e *GameError) Error() string {
	return e.Message
}

// 玩家操作错误
var (
	ErrEmptySelection = &GameError{Code: ErrCodeEmptySelection, Message: "请选择要出的牌", Reason: ReasonEmptySelection}
	ErrIllegalShape   = &GameError{Code: ErrCodeIllegalShape, Message: "无效的牌型", Reason: ReasonIllegalShape}
	ErrCannotBeat     = &GameError{Code: ErrCodeCannotBeat, Message: "您的牌大不过上家", Reason: ReasonDoesNotBeatPrevious}
	ErrCannotPass     = &GameError{Code: ErrCodeCannotPass, Message: "你不能跳过本回合", Reason: ReasonCannotPassNow}
	ErrNotYourTurn    = &GameError{Code: ErrCodeNotYourTurn, Message: "还没轮到您", Reason: ReasonNotYourTurn}
	ErrGameNotStart   = &GameError{Code: ErrCodeGameNotStart, Message: "当前阶段不能进行该操作"}
	ErrGameOver       = &GameError{Code: ErrCodeGameOver, Message: "游戏已结束"}
	ErrCardNotInHand  = &GameError{Code: ErrCodeCardNotInHand, Message: "手牌中没有这张牌"}
)

// 结构性错误
var (
	ErrPlayerNotFound  = &GameError{Code: ErrCodePlayerNotFound, Message: "玩家不存在", Category: CategoryStructural}
	ErrUnknownKind     = &GameError{Code: ErrCodeUnknownKind, Message: "未知的牌型", Category: CategoryStructural}
	ErrDuplicatePlayer = &GameError{Code: ErrCodeDuplicatePlayer, Message: "玩家 ID 重复", Category: CategoryStructural}
	ErrBadDeck         = &GameError{Code: ErrCodeBadDeck, Message: "牌堆张数不正确", Category: CategoryStructural}
	ErrPlayerCount     = &GameError{Code: ErrCodePlayerCount, Message: "玩家人数必须为 3", Category: CategoryStructural}
)

// ReasonOf 返回错误链上第一个 GameError 的 Reason
func ReasonOf(err error) Reason {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Reason
	}
	return ReasonNone
}

// IsStructural 错误链中是否包含结构性错误
func IsStructural(err error) bool {
	var ge *GameError
	return errors.As(err, &ge) && ge.Category == CategoryStructural
}
