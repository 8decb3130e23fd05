// Package game 将发牌、抢地主和出牌组合成一局完整的游戏。
package game

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/bid"
	"github.com/palemoky/landlord-engine/internal/game/card"
	"github.com/palemoky/landlord-engine/internal/game/play"
	"github.com/palemoky/landlord-engine/internal/game/player"
	"github.com/palemoky/landlord-engine/internal/game/rule"
	"github.com/palemoky/landlord-engine/internal/game/turn"
)

// PlayerCount 固定三人
const PlayerCount = 3

// Phase 游戏阶段
type Phase int

const (
	PhaseInit    Phase = iota
	PhaseBidding       // 抢地主
	PhaseRedeal        // 无人抢地主，等待重新发牌
	PhasePlaying       // 出牌
	PhaseEnded         // 已有玩家出完牌
)

var phaseNames = map[Phase]string{
	PhaseInit:    "init",
	PhaseBidding: "bidding",
	PhaseRedeal:  "redeal",
	PhasePlaying: "playing",
	PhaseEnded:   "ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Option 会话选项
type Option func(*Session)

// WithListener 设置事件接收者，nil 表示忽略所有事件
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listener = l
		}
	}
}

// WithLogger 设置日志
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// WithShuffler 设置洗牌方式，测试中用于固定发牌
func WithShuffler(shuffle func(card.Deck)) Option {
	return func(s *Session) { s.shuffle = shuffle }
}

// Session 一局游戏
type Session struct {
	id       string
	deck     card.Provider
	store    player.Store
	players  []player.Info
	ring     *turn.Ring
	listener Listener
	log      logrus.FieldLogger
	shuffle  func(card.Deck)

	phase   Phase
	bonus   []card.Card // 地主底牌
	bidding *bid.Bidding
	play    *play.Machine
	counter *card.Counter // 记牌器

	mu sync.Mutex
}

// NewSession 创建游戏会话，players 的顺序即发牌和出牌的顺序
func NewSession(deck card.Provider, store player.Store, players []player.Info, opts ...Option) (*Session, error) {
	if len(players) != PlayerCount {
		return nil, fmt.Errorf("%d 名玩家: %w", len(players), apperrors.ErrPlayerCount)
	}

	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	ring, err := turn.NewRing(ids...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.NewString(),
		deck:     deck,
		store:    store,
		players:  slices.Clone(players),
		ring:     ring,
		listener: NopListener{},
		log:      logrus.StandardLogger(),
		shuffle:  func(d card.Deck) { d.Shuffle() },
		counter:  card.NewCounter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session", s.id)
	return s, nil
}

func (s *Session) emit(events []event) {
	for _, e := range events {
		e(s.listener)
	}
}

// reject 记录非法操作，玩家操作错误会发出 OnInvalidAction
func (s *Session) reject(playerID string, err error) []event {
	reason := apperrors.ReasonOf(err)
	entry := s.log.WithFields(logrus.Fields{"player": playerID, "phase": s.phase.String()})
	if apperrors.IsStructural(err) {
		entry.WithError(err).Error("structural error")
		return nil
	}
	entry.WithError(err).Debug("action rejected")
	if reason == apperrors.ReasonNone {
		return nil
	}
	return []event{invalidAction(playerID, reason)}
}

// Start 洗牌、发牌并开始抢地主
func (s *Session) Start() error {
	s.mu.Lock()
	events, err := s.startLocked()
	s.mu.Unlock()

	s.emit(events)
	return err
}

// Restart 重新发牌。无人抢地主或者游戏结束之后由界面层调用。
func (s *Session) Restart() error {
	return s.Start()
}

func (s *Session) startLocked() ([]event, error) {
	if err := s.deal(); err != nil {
		return nil, err
	}
	s.bidding = bid.New(s.ring)
	s.play = nil
	s.counter.Reset()
	s.phase = PhaseBidding

	first := s.bidding.Current()
	s.log.WithField("first_bidder", first).Info("cards dealt, bidding started")
	return []event{turnAdvanced(first)}, nil
}

// deal 留出底牌后把剩下的牌按顺序均分给每位玩家
func (s *Session) deal() error {
	deck := slices.Clone(s.deck.Deck())
	if len(deck) != card.DeckSize {
		return fmt.Errorf("%d 张牌: %w", len(deck), apperrors.ErrBadDeck)
	}
	s.shuffle(deck)

	split := len(deck) - card.BonusCount
	s.bonus = slices.Clone(deck[split:])

	per := split / s.ring.Len()
	for i, id := range s.ring.All() {
		if err := s.store.SetHand(id, deck[i*per:(i+1)*per]); err != nil {
			return fmt.Errorf("发牌: %w", err)
		}
	}
	return nil
}

// Bid 抢地主表态
func (s *Session) Bid(playerID string, accepted bool) error {
	s.mu.Lock()
	events, err := s.bidLocked(playerID, accepted)
	s.mu.Unlock()

	s.emit(events)
	return err
}

func (s *Session) bidLocked(playerID string, accepted bool) ([]event, error) {
	if s.phase != PhaseBidding {
		return s.reject(playerID, apperrors.ErrGameNotStart), apperrors.ErrGameNotStart
	}

	state, err := s.bidding.Decide(playerID, accepted)
	if err != nil {
		return s.reject(playerID, err), err
	}
	s.log.WithFields(logrus.Fields{"player": playerID, "accepted": accepted, "state": state.String()}).Info("bid")

	switch state {
	case bid.StateRestart:
		s.phase = PhaseRedeal
		return []event{roundRestart()}, nil

	case bid.StateLandlordAssigned:
		landlord, _ := s.bidding.Landlord()
		machine, err := play.New(s.ring, s.store, landlord)
		if err == nil {
			err = s.store.AddCards(landlord, s.bonus)
		}
		if err != nil {
			// 抢地主已结束，只能重新发牌
			s.phase = PhaseRedeal
			s.log.WithError(err).WithField("landlord", landlord).Error("failed to hand out bonus cards")
			return nil, fmt.Errorf("发底牌: %w", err)
		}
		s.play = machine
		s.phase = PhasePlaying
		s.log.WithField("landlord", landlord).Info("landlord assigned")
		return []event{landlordAssigned(landlord), turnAdvanced(landlord)}, nil

	default:
		return []event{turnAdvanced(s.bidding.Current())}, nil
	}
}

// ToggleCard 选中或取消选中一张牌，只有当前出牌的玩家可以选牌
func (s *Session) ToggleCard(playerID string, cardID int) error {
	s.mu.Lock()
	events, err := s.toggleLocked(playerID, cardID)
	s.mu.Unlock()

	s.emit(events)
	return err
}

func (s *Session) toggleLocked(playerID string, cardID int) ([]event, error) {
	if err := s.checkPlaying(playerID); err != nil {
		return s.reject(playerID, err), err
	}
	selected, err := s.store.Selected(playerID)
	if err != nil {
		return nil, err
	}
	isSelected := slices.ContainsFunc(selected, func(c card.Card) bool { return c.ID == cardID })
	if err := s.store.MarkSelected(playerID, cardID, !isSelected); err != nil {
		return s.reject(playerID, err), err
	}
	return nil, nil
}

// PlaySelected 打出当前选中的牌
func (s *Session) PlaySelected(playerID string) error {
	s.mu.Lock()
	events, err := s.playSelectedLocked(playerID)
	s.mu.Unlock()

	s.emit(events)
	return err
}

func (s *Session) playSelectedLocked(playerID string) ([]event, error) {
	if err := s.checkPlaying(playerID); err != nil {
		return s.reject(playerID, err), err
	}
	selected, err := s.store.Selected(playerID)
	if err != nil {
		return nil, err
	}
	return s.attemptLocked(playerID, selected)
}

// Play 按牌的 ID 出牌
func (s *Session) Play(playerID string, cardIDs []int) error {
	s.mu.Lock()
	events, err := s.playLocked(playerID, cardIDs)
	s.mu.Unlock()

	s.emit(events)
	return err
}

func (s *Session) playLocked(playerID string, cardIDs []int) ([]event, error) {
	if err := s.checkPlaying(playerID); err != nil {
		return s.reject(playerID, err), err
	}
	hand, err := s.store.Hand(playerID)
	if err != nil {
		return nil, err
	}

	cards := make([]card.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		i := slices.IndexFunc(hand, func(c card.Card) bool { return c.ID == id })
		if i < 0 {
			err := fmt.Errorf("牌 %d: %w", id, apperrors.ErrCardNotInHand)
			return s.reject(playerID, err), err
		}
		cards = append(cards, hand[i])
	}
	return s.attemptLocked(playerID, cards)
}

func (s *Session) attemptLocked(playerID string, cards []card.Card) ([]event, error) {
	out, err := s.play.Attempt(playerID, cards)
	if err != nil {
		return s.reject(playerID, err), err
	}
	s.counter.Deduct(out.Combination.Cards)

	s.log.WithFields(logrus.Fields{
		"player": playerID,
		"kind":   out.Combination.Kind.String(),
		"cards":  fmt.Sprint(out.Combination.Cards),
	}).Info("play accepted")

	if out.GameOver {
		s.phase = PhaseEnded
		s.log.WithField("winner", out.Winner).Info("game over")
		return []event{gameOver(out.Winner)}, nil
	}
	return []event{turnAdvanced(out.Next)}, nil
}

// Pass 要不起
func (s *Session) Pass(playerID string) error {
	s.mu.Lock()
	events, err := s.passLocked(playerID)
	s.mu.Unlock()

	s.emit(events)
	return err
}

func (s *Session) passLocked(playerID string) ([]event, error) {
	if err := s.checkPlaying(playerID); err != nil {
		return s.reject(playerID, err), err
	}
	out, err := s.play.Pass(playerID)
	if err != nil {
		return s.reject(playerID, err), err
	}
	s.log.WithField("player", playerID).Info("pass")
	return []event{turnAdvanced(out.Next)}, nil
}

// checkPlaying 检查是否处于出牌阶段且轮到该玩家
func (s *Session) checkPlaying(playerID string) error {
	switch s.phase {
	case PhasePlaying:
	case PhaseEnded:
		return apperrors.ErrGameOver
	default:
		return apperrors.ErrGameNotStart
	}
	if !s.ring.Contains(playerID) {
		return fmt.Errorf("玩家 %q: %w", playerID, apperrors.ErrPlayerNotFound)
	}
	if s.play.Current() != playerID {
		return apperrors.ErrNotYourTurn
	}
	return nil
}

// ID 会话 ID
func (s *Session) ID() string { return s.id }

// Phase 当前阶段
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Current 当前应操作的玩家（抢地主或出牌）
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseBidding:
		return s.bidding.Current()
	case PhasePlaying:
		return s.play.Current()
	default:
		return ""
	}
}

// BidState 抢地主状态
func (s *Session) BidState() bid.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bidding == nil {
		return bid.StateAwaitingFirstRound
	}
	return s.bidding.State()
}

// Landlord 地主
func (s *Session) Landlord() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bidding == nil {
		return "", false
	}
	return s.bidding.Landlord()
}

// BonusCards 底牌
func (s *Session) BonusCards() []card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bonus)
}

// LastPlay 最后一次被接受的出牌
func (s *Session) LastPlay() (rule.Combination, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.play == nil {
		return rule.Combination{}, false
	}
	return s.play.Last()
}

// CanPass 当前玩家能否要不起
func (s *Session) CanPass() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhasePlaying && s.play.CanPass()
}

// Winner 获胜的玩家
func (s *Session) Winner() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseEnded {
		return "", false
	}
	return s.play.Winner(), true
}

// Players 按出牌顺序返回玩家
func (s *Session) Players() []player.Info {
	return slices.Clone(s.players)
}

// Hand 玩家手牌
func (s *Session) Hand(playerID string) ([]card.Card, error) {
	return s.store.Hand(playerID)
}

// Unseen 记牌器：除该玩家手牌和已打出的牌之外，各点数还剩多少张
func (s *Session) Unseen(playerID string) (map[card.Rank]int, error) {
	hand, err := s.store.Hand(playerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter.Unseen(hand), nil
}

// Selected 玩家选中的牌
func (s *Session) Selected(playerID string) ([]card.Card, error) {
	return s.store.Selected(playerID)
}
