package systems

import (
	"fmt"
	"log"

	"github.com/decker502/chronos/pkg/config"
)

// 时间膨胀系数：每多少个渲染帧执行一次完整模拟步
const (
	DilationNormal int64 = 1
	DilationSlow   int64 = 3
	// DilationStop 足够大，实际上永远不会执行完整模拟步
	DilationStop int64 = 100_000_000_000
)

// TimeMode 时间能力的当前状态
type TimeMode int

const (
	TimeModeNormal TimeMode = iota
	TimeModeSlow
	TimeModeStop
	// TimeModeDepleted 计量槽耗尽被强制恢复正常速度（系数同 Normal）
	TimeModeDepleted
)

func (m TimeMode) String() string {
	switch m {
	case TimeModeNormal:
		return "normal"
	case TimeModeSlow:
		return "slow"
	case TimeModeStop:
		return "stop"
	case TimeModeDepleted:
		return "depleted"
	default:
		return fmt.Sprintf("TimeMode(%d)", int(m))
	}
}

// StepDecision 单帧时间计算的结果
type StepDecision struct {
	Execute  bool    // 本帧是否执行完整模拟步
	Meter    float64 // 更新后的计量槽
	Factor   int64   // 更新后的膨胀系数
	Counter  int64   // 更新后的帧计数器
	Depleted bool    // 本帧计量槽耗尽
}

// ComputeStep 计算一帧的时间推进（纯函数）
//
// 顺序：
//  1. 系数 >= 2 时计量槽消耗，否则在未满时恢复，并钳制到 [0, ChronosMax]
//  2. 计量槽 <= 0 时强制系数为 1、计量槽为 0
//  3. 帧计数器 +1，计数器 >= 系数时执行完整模拟步并清零
//
// factor < 1 按 1 处理。
func ComputeStep(meter float64, factor, counter int64) StepDecision {
	if factor < DilationNormal {
		factor = DilationNormal
	}

	if factor >= 2 {
		meter -= config.ChronosDrainPerFrame
	} else if meter <= config.ChronosMax {
		meter += config.ChronosRechargePerFrame
	}
	meter = clampMeter(meter)

	d := StepDecision{Meter: meter, Factor: factor}
	if meter <= 0 {
		d.Meter = 0
		d.Depleted = factor != DilationNormal
		d.Factor = DilationNormal
	}

	counter++
	if counter >= d.Factor {
		d.Execute = true
		counter = 0
	}
	d.Counter = counter
	return d
}

func clampMeter(m float64) float64 {
	if m < 0 {
		return 0
	}
	if m > config.ChronosMax {
		return config.ChronosMax
	}
	return m
}

// TimeController 时间能力控制器
// 持有计量槽、膨胀系数和帧计数器，每个渲染帧调用一次 Tick
type TimeController struct {
	meter   float64
	factor  int64
	counter int64
	mode    TimeMode
}

// NewTimeController 创建计量槽满、正常速度的控制器
func NewTimeController() *TimeController {
	return &TimeController{
		meter:  config.ChronosMax,
		factor: DilationNormal,
		mode:   TimeModeNormal,
	}
}

// Meter 返回计量槽当前值
func (tc *TimeController) Meter() float64 { return tc.meter }

// Factor 返回当前膨胀系数
func (tc *TimeController) Factor() int64 { return tc.factor }

// Mode 返回当前时间模式
func (tc *TimeController) Mode() TimeMode { return tc.mode }

// Active 是否有时间能力正在生效
func (tc *TimeController) Active() bool {
	return tc.mode == TimeModeSlow || tc.mode == TimeModeStop
}

// ActivateSlow 尝试激活时间减速
// 分数达到解锁线且计量槽严格大于激活下限时成功
func (tc *TimeController) ActivateSlow(score int) bool {
	if score < config.SlowUnlockScore || tc.meter <= config.ChronosActivationMin {
		return false
	}
	tc.factor = DilationSlow
	tc.mode = TimeModeSlow
	return true
}

// ActivateStop 尝试激活时间停止
func (tc *TimeController) ActivateStop(score int) bool {
	if score < config.StopUnlockScore || tc.meter <= config.ChronosActivationMin {
		return false
	}
	tc.factor = DilationStop
	tc.mode = TimeModeStop
	return true
}

// Release 松开任一能力键，恢复正常速度
func (tc *TimeController) Release() {
	tc.factor = DilationNormal
	tc.mode = TimeModeNormal
}

// Tick 推进一帧并返回本帧的决定
func (tc *TimeController) Tick() StepDecision {
	d := ComputeStep(tc.meter, tc.factor, tc.counter)
	tc.meter = d.Meter
	tc.factor = d.Factor
	tc.counter = d.Counter
	if d.Depleted {
		tc.mode = TimeModeDepleted
		log.Printf("[TimeController] 计量槽耗尽，时间恢复正常")
	}
	return d
}

// Exempt 未执行完整模拟步的帧中，玩家是否仍然按正常速度行动
// 减速时需要分数 >= SlowImmunityScore，停止时需要分数 >= StopImmunityScore
func (tc *TimeController) Exempt(score int) bool {
	switch tc.mode {
	case TimeModeSlow:
		return score >= config.SlowImmunityScore
	case TimeModeStop:
		return score >= config.StopImmunityScore
	}
	return false
}

// Reset 关卡（重新）加载时调用：计量槽回满，能力失效，计数器清零
func (tc *TimeController) Reset() {
	tc.meter = config.ChronosMax
	tc.factor = DilationNormal
	tc.counter = 0
	tc.mode = TimeModeNormal
}
