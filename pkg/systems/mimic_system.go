package systems

import (
	"log"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
)

// Position 世界坐标点
type Position struct {
	X, Y float64
}

// Echo 历史缓冲一次推进的结果
type Echo struct {
	// Mimic 镜像的新位置，MimicMoved 为 false 时无意义
	Mimic      Position
	MimicMoved bool

	// Recall 回溯后玩家的新位置，Recalled 为 false 时无意义
	Recall   Position
	Recalled bool
}

// HistoryBuffer 玩家位置历史
//
// 每个完整模拟步记录一次玩家位置。经过 delay 秒（模拟时间）的等待后，
// 每步弹出最旧的位置作为镜像位置，形成约 delay 秒的延迟回声。
//
// 回溯把玩家移到弹出后剩余的最旧位置，而不是镜像当前所在的位置，
// 随后清空缓冲并重新开始等待。
type HistoryBuffer struct {
	positions []Position
	elapsed   float64
	delay     float64
	armed     bool
}

// NewHistoryBuffer 创建延迟为 config.MimicDelaySeconds 的历史缓冲
func NewHistoryBuffer() *HistoryBuffer {
	return &HistoryBuffer{delay: config.MimicDelaySeconds}
}

// Len 返回缓冲中的位置数量
func (h *HistoryBuffer) Len() int {
	return len(h.positions)
}

// Elapsed 返回等待计时器的当前值
func (h *HistoryBuffer) Elapsed() float64 {
	return h.elapsed
}

// Armed 回溯是否已请求但尚未处理
func (h *HistoryBuffer) Armed() bool {
	return h.armed
}

// Ready 是否已度过等待期（下一次 Advance 将移动镜像）
func (h *HistoryBuffer) Ready() bool {
	return h.elapsed > h.delay
}

// OnStep 记录本步的玩家位置
func (h *HistoryBuffer) OnStep(pos Position) {
	h.positions = append(h.positions, pos)
}

// ArmRecall 请求在下一个完整模拟步回溯
func (h *HistoryBuffer) ArmRecall() {
	h.armed = true
}

// Advance 推进一个完整模拟步
//
// 等待期内只累加计时器，期间的回溯请求被直接消耗（无效果）。
// 等待期过后弹出最旧的位置给镜像；若回溯已请求且仍有剩余位置，
// 则把玩家移到剩余最旧的位置、清空缓冲并重置计时器。
// 缓冲为空时不会弹出，回溯请求同样被消耗。
func (h *HistoryBuffer) Advance(dt float64) Echo {
	var echo Echo

	if h.elapsed <= h.delay {
		h.elapsed += dt
		h.armed = false
		return echo
	}

	if len(h.positions) > 0 {
		echo.Mimic = h.positions[0]
		echo.MimicMoved = true
		h.positions = h.positions[1:]
	}

	if h.armed {
		h.armed = false
		if len(h.positions) > 0 {
			echo.Recall = h.positions[0]
			echo.Recalled = true
			h.positions = nil
			h.elapsed = 0
		}
	}
	return echo
}

// Reset 清空缓冲、计时器和回溯请求（关卡重新加载时调用）
func (h *HistoryBuffer) Reset() {
	h.positions = nil
	h.elapsed = 0
	h.armed = false
}

// MimicSystem 把历史缓冲接到玩家和镜像实体上
type MimicSystem struct {
	entityManager *ecs.EntityManager
	history       *HistoryBuffer
}

// NewMimicSystem 创建镜像系统
func NewMimicSystem(em *ecs.EntityManager, history *HistoryBuffer) *MimicSystem {
	return &MimicSystem{
		entityManager: em,
		history:       history,
	}
}

// Update 在一个完整模拟步的末尾调用：记录玩家位置，移动镜像，处理回溯
//
// 返回:
//   - bool: 本步是否发生了回溯
func (s *MimicSystem) Update(playerID, mimicID ecs.EntityID, dt float64) bool {
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return false
	}

	s.history.OnStep(Position{X: playerPos.X, Y: playerPos.Y})
	echo := s.history.Advance(dt)

	if echo.MimicMoved {
		if mimicPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, mimicID); ok {
			mimicPos.X, mimicPos.Y = echo.Mimic.X, echo.Mimic.Y
		}
		if mimic, ok := ecs.GetComponent[*components.MimicComponent](s.entityManager, mimicID); ok {
			mimic.Visible = true
		}
	}

	if echo.Recalled {
		playerPos.X, playerPos.Y = echo.Recall.X, echo.Recall.Y
		log.Printf("[MimicSystem] 回溯到 (%.1f, %.1f)", echo.Recall.X, echo.Recall.Y)
	}
	return echo.Recalled
}
