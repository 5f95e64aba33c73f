package game

import (
	"fmt"
	"log"

	"github.com/decker502/chronos/pkg/config"
)

// Phase 关卡流程阶段
type Phase int

const (
	// PhaseIntro 开场过场（关卡 0，结局未定）
	PhaseIntro Phase = iota
	// PhasePlaying 普通可玩关卡 1..5
	PhasePlaying
	// PhaseFinal 最终关卡 6
	PhaseFinal
	// PhaseEnding 结局过场（关卡 0，结局已定）
	PhaseEnding
	// PhaseExited 流程结束，宿主应退出程序
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFinal:
		return "final"
	case PhaseEnding:
		return "ending"
	case PhaseExited:
		return "exited"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Ending 结局分支
type Ending int

const (
	EndingUnset Ending = iota
	EndingGood
	EndingBad
)

func (e Ending) String() string {
	switch e {
	case EndingGood:
		return "good"
	case EndingBad:
		return "bad"
	default:
		return "unset"
	}
}

// TransitionKind 流程转换要求宿主执行的动作
type TransitionKind int

const (
	// TransitionNone 无需任何动作
	TransitionNone TransitionKind = iota
	// TransitionLoad 加载 Transition.Level 指定的关卡
	TransitionLoad
	// TransitionExit 退出程序
	TransitionExit
)

// Transition 一次流程事件的结果
type Transition struct {
	Kind  TransitionKind
	Level int
}

// FlowState 关卡流程的完整状态
type FlowState struct {
	Phase    Phase
	Level    int
	Cutscene int
	Ending   Ending

	// endingShown 结局过场是否已经跳到第一张
	endingShown bool
}

// LevelFlow 关卡/过场状态机
//
// 转换表：
//
//	Intro    --Click x11-->       Playing(1)
//	Playing  --GoalReached-->     Playing(n+1) / Final(6)
//	Final    --GoalReached-->     Ending(good|bad)
//	Ending   --Click...-->        Exited
//
// 死亡不改变阶段，只要求重新加载当前关卡。
type LevelFlow struct {
	state FlowState
	score *Score
}

// NewLevelFlow 创建处于开场过场的流程
// score 为 nil 时内部新建一个计分器
func NewLevelFlow(score *Score) *LevelFlow {
	if score == nil {
		score = NewScore()
	}
	return &LevelFlow{
		state: FlowState{Phase: PhaseIntro, Level: config.CutsceneLevel, Cutscene: config.OpeningCutscene},
		score: score,
	}
}

// NewLevelFlowAt 创建直接从指定关卡开始的流程（调试用）
// level 为 0 时等价于 NewLevelFlow
func NewLevelFlowAt(score *Score, level int) (*LevelFlow, error) {
	if level < config.CutsceneLevel || level > config.FinalLevel {
		return nil, fmt.Errorf("start level %d out of range [%d, %d]", level, config.CutsceneLevel, config.FinalLevel)
	}
	f := NewLevelFlow(score)
	if level != config.CutsceneLevel {
		f.enterLevel(level)
	}
	return f, nil
}

// State 返回当前状态的副本
func (f *LevelFlow) State() FlowState {
	return f.state
}

// Score 返回流程使用的计分器
func (f *LevelFlow) Score() *Score {
	return f.score
}

// Level 返回当前关卡编号
func (f *LevelFlow) Level() int {
	return f.state.Level
}

// InCutscene 当前是否处于关卡 0
func (f *LevelFlow) InCutscene() bool {
	return f.state.Level == config.CutsceneLevel
}

// Exited 流程是否已结束
func (f *LevelFlow) Exited() bool {
	return f.state.Phase == PhaseExited
}

// GoalReached 玩家触碰目标点
// 关卡 0 中没有目标点，调用不产生任何转换
func (f *LevelFlow) GoalReached() Transition {
	switch f.state.Phase {
	case PhasePlaying:
		f.enterLevel(f.state.Level + 1)
		return Transition{Kind: TransitionLoad, Level: f.state.Level}

	case PhaseFinal:
		ending := EndingBad
		if f.score.Value() >= config.GoodEndingScore {
			ending = EndingGood
		}
		log.Printf("[LevelFlow] 最终关卡完成，分数 %d，结局: %s", f.score.Value(), ending)

		f.score.SaveCheckpoint()
		f.state = FlowState{
			Phase:    PhaseEnding,
			Level:    config.CutsceneLevel,
			Cutscene: config.OpeningCutscene,
			Ending:   ending,
		}
		return Transition{Kind: TransitionLoad, Level: config.CutsceneLevel}
	}
	return Transition{Kind: TransitionNone}
}

// PlayerDied 玩家死亡：分数恢复到检查点，重新加载当前关卡
func (f *LevelFlow) PlayerDied() Transition {
	if f.state.Phase == PhaseExited {
		return Transition{Kind: TransitionNone}
	}
	f.score.RestoreCheckpoint()
	log.Printf("[LevelFlow] 玩家死亡，重新加载关卡 %d，分数恢复为 %d", f.state.Level, f.score.Value())
	return Transition{Kind: TransitionLoad, Level: f.state.Level}
}

// Click 在关卡 0 中推进过场
// 可玩关卡中的点击被忽略
func (f *LevelFlow) Click() Transition {
	switch f.state.Phase {
	case PhaseIntro:
		f.state.Cutscene++
		if f.state.Cutscene == config.IntroLastCutscene {
			f.enterLevel(config.FirstLevel)
			return Transition{Kind: TransitionLoad, Level: config.FirstLevel}
		}

	case PhaseEnding:
		if !f.state.endingShown {
			f.state.endingShown = true
			if f.state.Ending == EndingGood {
				f.state.Cutscene = config.GoodEndingFirstCutscene
			} else {
				f.state.Cutscene = config.BadEndingFirstCutscene
			}
			return Transition{Kind: TransitionNone}
		}

		f.state.Cutscene++
		if f.state.Cutscene >= f.exitCutscene() {
			f.state.Phase = PhaseExited
			log.Printf("[LevelFlow] 结局过场结束，退出")
			return Transition{Kind: TransitionExit}
		}
	}
	return Transition{Kind: TransitionNone}
}

func (f *LevelFlow) exitCutscene() int {
	if f.state.Ending == EndingGood {
		return config.GoodEndingExitCutscene
	}
	return config.BadEndingExitCutscene
}

// enterLevel 进入可玩关卡并保存分数检查点
func (f *LevelFlow) enterLevel(level int) {
	phase := PhasePlaying
	if level == config.FinalLevel {
		phase = PhaseFinal
	}
	f.state.Phase = phase
	f.state.Level = level
	f.score.SaveCheckpoint()
	log.Printf("[LevelFlow] 进入关卡 %d (%s)，检查点分数 %d", level, phase, f.score.Checkpoint())
}
