package main

import (
	"time"

	"github.com/decker502/chronos/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// holdWindow 终端没有按键松开事件，移动键在最后一次按下（含自动重复）后
// 保持按住状态的时长
const holdWindow = 150 * time.Millisecond

// keyTracker 把终端事件折算成每帧的 systems.Input
//
// 能力键在终端里是开关式的：能力未生效时按下即激活，生效中再按任一能力键松开。
// 是否生效由模拟在每帧给出，激活被拒绝或计量槽耗尽后下一次按键仍是激活。
type keyTracker struct {
	lastLeft  time.Time
	lastRight time.Time

	// edges 上一帧之后累积的边沿事件
	edges systems.Input

	// slowKey / stopKey 上一帧之后是否按过能力键
	slowKey bool
	stopKey bool

	mouseDown bool
	quit      bool
}

// handle 记录一个终端事件
func (k *keyTracker) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.handleKey(ev, now)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !k.mouseDown {
			k.edges.Click = true
		}
		k.mouseDown = down
	}
}

func (k *keyTracker) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		k.quit = true
		return
	case tcell.KeyLeft:
		k.lastLeft = now
		return
	case tcell.KeyRight:
		k.lastRight = now
		return
	case tcell.KeyUp:
		k.edges.Jump = true
		return
	case tcell.KeyEnter:
		k.edges.Click = true
		return
	case tcell.KeyEscape:
		k.edges.MuteMusic = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'a', 'A':
		k.lastLeft = now
	case 'd', 'D':
		k.lastRight = now
	case 'w', 'W':
		k.edges.Jump = true
	case 'q', 'Q':
		k.edges.Recall = true
	case 'f', 'F':
		k.edges.Click = true
	case 's', 'S':
		k.slowKey = true
	case ' ':
		k.stopKey = true
	}
}

// frame 返回本帧输入并清空边沿事件
// abilityActive 为模拟当前的时间能力状态，决定能力键折算成按下还是松开
func (k *keyTracker) frame(now time.Time, abilityActive bool) systems.Input {
	in := k.edges
	in.Left = now.Sub(k.lastLeft) <= holdWindow
	in.Right = now.Sub(k.lastRight) <= holdWindow

	if abilityActive {
		in.SlowReleased = k.slowKey || k.stopKey
	} else {
		in.SlowPressed = k.slowKey
		in.StopPressed = k.stopKey
	}

	k.edges = systems.Input{}
	k.slowKey, k.stopKey = false, false
	return in
}
