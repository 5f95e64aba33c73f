package game

import "fmt"

// Score 玩家分数与检查点
//
// 分数只增不减；进入关卡时保存检查点，玩家死亡时恢复到检查点，
// 因此死亡会丢失本关内获得的全部分数。
type Score struct {
	value      int
	checkpoint int
}

// NewScore 创建分数为 0 的计分器
func NewScore() *Score {
	return &Score{}
}

// Value 返回当前分数
func (s *Score) Value() int {
	return s.value
}

// Checkpoint 返回最近一次保存的检查点
func (s *Score) Checkpoint() int {
	return s.checkpoint
}

// Add 增加分数
// n 为负数时返回错误且分数不变
func (s *Score) Add(n int) error {
	if n < 0 {
		return fmt.Errorf("score delta cannot be negative, got %d", n)
	}
	s.value += n
	return nil
}

// SaveCheckpoint 将当前分数记为检查点（进入新关卡时调用）
func (s *Score) SaveCheckpoint() {
	s.checkpoint = s.value
}

// RestoreCheckpoint 将分数恢复到检查点（玩家死亡或重新开始时调用）
func (s *Score) RestoreCheckpoint() {
	s.value = s.checkpoint
}
