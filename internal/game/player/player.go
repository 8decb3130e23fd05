// Package player 保存每位玩家的手牌和选牌状态。
package player

import (
	"fmt"
	"slices"
	"sync"

	"github.com/palemoky/landlord-engine/internal/apperrors"
	"github.com/palemoky/landlord-engine/internal/game/card"
)

// Info 玩家基本信息
type Info struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Store 玩家手牌存储
type Store interface {
	Hand(playerID string) ([]card.Card, error)
	SetHand(playerID string, cards []card.Card) error
	AddCards(playerID string, cards []card.Card) error
	RemoveCards(playerID string, cardIDs []int) error
	MarkSelected(playerID string, cardID int, selected bool) error
	Selected(playerID string) ([]card.Card, error)
	HandSize(playerID string) (int, error)
}

// Player 玩家
type Player struct {
	Info
	Hand     []card.Card  // 按点数从大到小排列
	selected map[int]bool // 选中（准备出）的牌
}

// MemoryStore 内存中的玩家存储
type MemoryStore struct {
	players map[string]*Player
	order   []string
	mu      sync.RWMutex
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore 创建内存存储
func NewMemoryStore(infos ...Info) *MemoryStore {
	s := &MemoryStore{players: make(map[string]*Player, len(infos))}
	for _, info := range infos {
		s.players[info.ID] = &Player{Info: info, selected: make(map[int]bool)}
		s.order = append(s.order, info.ID)
	}
	return s
}

// get 调用方需持有锁
func (s *MemoryStore) get(playerID string) (*Player, error) {
	p, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("玩家 %q: %w", playerID, apperrors.ErrPlayerNotFound)
	}
	return p, nil
}

// Players 按加入顺序返回玩家信息
func (s *MemoryStore) Players() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]Info, 0, len(s.order))
	for _, id := range s.order {
		infos = append(infos, s.players[id].Info)
	}
	return infos
}

func (s *MemoryStore) Hand(playerID string) ([]card.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.get(playerID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.Hand), nil
}

// SetHand 替换整手牌并清空选牌
func (s *MemoryStore) SetHand(playerID string, cards []card.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(playerID)
	if err != nil {
		return err
	}
	p.Hand = slices.Clone(cards)
	card.SortDesc(p.Hand)
	clear(p.selected)
	return nil
}

// AddCards 追加牌（例如地主拿底牌）
func (s *MemoryStore) AddCards(playerID string, cards []card.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(playerID)
	if err != nil {
		return err
	}
	p.Hand = append(p.Hand, cards...)
	card.SortDesc(p.Hand)
	return nil
}

// RemoveCards 移除指定的牌，任何一张不在手中时不做修改
func (s *MemoryStore) RemoveCards(playerID string, cardIDs []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(playerID)
	if err != nil {
		return err
	}
	for _, id := range cardIDs {
		if !slices.ContainsFunc(p.Hand, func(c card.Card) bool { return c.ID == id }) {
			return fmt.Errorf("牌 %d: %w", id, apperrors.ErrCardNotInHand)
		}
	}
	p.Hand = card.RemoveCards(p.Hand, cardIDs)
	for _, id := range cardIDs {
		delete(p.selected, id)
	}
	return nil
}

func (s *MemoryStore) MarkSelected(playerID string, cardID int, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(playerID)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(p.Hand, func(c card.Card) bool { return c.ID == cardID }) {
		return fmt.Errorf("牌 %d: %w", cardID, apperrors.ErrCardNotInHand)
	}
	if selected {
		p.selected[cardID] = true
	} else {
		delete(p.selected, cardID)
	}
	return nil
}

// Selected 返回选中的牌，顺序与手牌一致
func (s *MemoryStore) Selected(playerID string) ([]card.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.get(playerID)
	if err != nil {
		return nil, err
	}
	var selected []card.Card
	for _, c := range p.Hand {
		if p.selected[c.ID] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func (s *MemoryStore) HandSize(playerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.get(playerID)
	if err != nil {
		return 0, err
	}
	return len(p.Hand), nil
}
