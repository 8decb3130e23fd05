// Package turn 维护固定的出牌顺序（环形）。
package turn

import (
	"fmt"
	"slices"

	"github.com/palemoky/landlord-engine/internal/apperrors"
)

// Position 玩家在环中的位置
type Position struct {
	index int
	size  int
}

// Index 返回位置下标（从 0 开始）
func (p Position) Index() int { return p.index }

// Next 下一个位置，最后一个之后回到第一个。零值 Position 原样返回。
func (p Position) Next() Position {
	if p.size == 0 {
		return p
	}
	return Position{index: (p.index + 1) % p.size, size: p.size}
}

// Ring 按发牌顺序排列的玩家环，创建后不可修改
type Ring struct {
	ids   []string
	index map[string]int
}

// NewRing 根据玩家 ID 创建环
func NewRing(ids ...string) (*Ring, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("空的玩家列表: %w", apperrors.ErrPlayerCount)
	}

	r := &Ring{
		ids:   slices.Clone(ids),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if _, ok := r.index[id]; ok {
			return nil, fmt.Errorf("玩家 %q: %w", id, apperrors.ErrDuplicatePlayer)
		}
		r.index[id] = i
	}
	return r, nil
}

// Len 玩家人数
func (r *Ring) Len() int { return len(r.ids) }

// Head 第一个玩家
func (r *Ring) Head() Position {
	return Position{index: 0, size: len(r.ids)}
}

// At 返回位置上的玩家 ID
func (r *Ring) At(p Position) string {
	return r.ids[p.index]
}

// Find 查找玩家所在的位置
func (r *Ring) Find(id string) (Position, error) {
	i, ok := r.index[id]
	if !ok {
		return Position{}, fmt.Errorf("玩家 %q: %w", id, apperrors.ErrPlayerNotFound)
	}
	return Position{index: i, size: len(r.ids)}, nil
}

// Contains 玩家是否在环中
func (r *Ring) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Next 返回 id 的下家
func (r *Ring) Next(id string) (string, error) {
	p, err := r.Find(id)
	if err != nil {
		return "", err
	}
	return r.At(p.Next()), nil
}

// All 从第一个玩家开始的全部玩家 ID
func (r *Ring) All() []string {
	return slices.Clone(r.ids)
}
