package main

import (
	"fmt"
	"math"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/game"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/decker502/chronos/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 一个字符单元对应的世界像素，终端字符约为 1:2
const (
	cellWidth  = config.TileSize / 2
	cellHeight = config.TileSize

	viewCols = int(config.GameWindowWidth / cellWidth)
	viewRows = config.GameWindowHeight / int(cellHeight)
)

// glyph 实体在终端上的字符与样式
type glyph struct {
	r     rune
	style tcell.Style
}

var (
	styleBase   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHUD    = styleBase.Foreground(tcell.ColorGreen)
	styleNotice = styleBase.Foreground(tcell.ColorRed).Bold(true)

	glyphGround      = glyph{'█', styleBase.Foreground(tcell.ColorSaddleBrown)}
	glyphPlatform    = glyph{'▀', styleBase.Foreground(tcell.ColorSilver)}
	glyphKillBarrier = glyph{'▲', styleBase.Foreground(tcell.ColorRed)}
	glyphGoal        = glyph{'◆', styleBase.Foreground(tcell.ColorAqua)}
	glyphPlayer      = glyph{'@', styleBase.Foreground(tcell.ColorLime).Bold(true)}
	glyphMimic       = glyph{'@', styleBase.Foreground(tcell.ColorGreen).Dim(true)}
	glyphEnemyBullet = glyph{'•', styleBase.Foreground(tcell.ColorOrange)}
	glyphOwnBullet   = glyph{'•', styleBase.Foreground(tcell.ColorYellow)}
)

var turretGlyphs = map[types.TurretVariant]glyph{
	types.TurretNormal:     {'T', styleBase.Foreground(tcell.ColorWhite)},
	types.TurretSniper:     {'S', styleBase.Foreground(tcell.ColorPurple)},
	types.TurretDestroyer:  {'D', styleBase.Foreground(tcell.ColorFuchsia)},
	types.TurretMachineGun: {'M', styleBase.Foreground(tcell.ColorGold)},
}

// view 把模拟状态绘制到终端
type view struct {
	screen tcell.Screen
}

// draw 绘制一帧：世界、HUD，过场关卡时叠加过场卡片
func (v *view) draw(st *systems.SimulationState) {
	v.screen.SetStyle(styleBase)
	v.screen.Clear()

	v.drawWorld(st)
	v.drawHUD(st)
	if st.Flow.InCutscene() {
		v.drawCutscene(st.Flow.State())
	}

	v.screen.Show()
}

// drawWorld 图层顺序与图形版一致，后画的覆盖先画的
func (v *view) drawWorld(st *systems.SimulationState) {
	em := st.Registry
	cam := st.Camera

	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](em) {
		wall, _ := ecs.GetComponent[*components.WallComponent](em, id)
		g := glyphGround
		if wall.Platform {
			g = glyphPlatform
		}
		v.fill(cam, em, id, g)
	}

	if _, ok := ecs.GetComponent[*components.PlayerComponent](em, st.Player); ok {
		v.fill(cam, em, st.Player, glyphPlayer)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TurretComponent](em) {
		turret, _ := ecs.GetComponent[*components.TurretComponent](em, id)
		v.fill(cam, em, id, turretGlyphs[turret.Variant])
	}

	if mimic, ok := ecs.GetComponent[*components.MimicComponent](em, st.Mimic); ok && mimic.Visible {
		v.fill(cam, em, st.Mimic, glyphMimic)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		g := glyphEnemyBullet
		if bullet.Owner == components.BulletOwnerPlayer {
			g = glyphOwnBullet
		}
		v.fill(cam, em, id, g)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.GoalComponent](em) {
		v.fill(cam, em, id, glyphGoal)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.KillBarrierComponent](em) {
		v.fill(cam, em, id, glyphKillBarrier)
	}
}

// cellRange 返回实体碰撞盒覆盖的字符单元范围 [c0,c1) x [r0,r1)
// 子弹这类小实体至少占一个单元
func cellRange(cam *components.CameraComponent, em *ecs.EntityManager, id ecs.EntityID) (c0, c1, r0, r1 int, ok bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return 0, 0, 0, 0, false
	}
	w, h := config.TileSize, config.TileSize
	if col, hasCol := ecs.GetComponent[*components.CollisionComponent](em, id); hasCol {
		w, h = col.Width, col.Height
	}

	left, top := systems.WorldToScreen(cam, pos.X-w/2, pos.Y+h/2)
	c0 = int(math.Floor(left / cellWidth))
	c1 = max(int(math.Ceil((left+w)/cellWidth)), c0+1)
	r0 = int(math.Floor(top / cellHeight))
	r1 = max(int(math.Ceil((top+h)/cellHeight)), r0+1)
	return c0, c1, r0, r1, true
}

// fill 用 g 填满实体覆盖的单元，超出视口的部分裁掉
func (v *view) fill(cam *components.CameraComponent, em *ecs.EntityManager, id ecs.EntityID, g glyph) {
	c0, c1, r0, r1, ok := cellRange(cam, em, id)
	if !ok {
		return
	}
	for r := max(r0, 0); r < min(r1, viewRows); r++ {
		for c := max(c0, 0); c < min(c1, viewCols); c++ {
			v.screen.SetContent(c, r, g.r, nil, g.style)
		}
	}
}

// drawHUD 视口下方的状态栏
func (v *view) drawHUD(st *systems.SimulationState) {
	health := 0
	if h, ok := ecs.GetComponent[*components.HealthComponent](st.Registry, st.Player); ok {
		health = h.CurrentHealth
	}
	score := st.Score.Value()

	for c := 0; c < viewCols; c++ {
		v.screen.SetContent(c, viewRows, '─', nil, styleBase.Dim(true))
	}
	status := fmt.Sprintf("Health: %d  Score: %d  Chronos: %d  Level: %d",
		health, score, int(math.RoundToEven(st.Time.Meter())), st.Flow.Level())
	v.text(0, viewRows+1, status, styleHUD)

	hints := "Q: Rewind Time"
	for _, h := range systems.AbilityHints(score) {
		hints += "  " + h
	}
	v.text(0, viewRows+2, hints, styleHUD)

	if notice, ok := systems.UnlockNotice(score); ok {
		v.text(0, viewRows+3, notice, styleNotice)
	}
}

// cutsceneLines 过场卡片的文字
func cutsceneLines(state game.FlowState) []string {
	lines := []string{fmt.Sprintf("Cutscene %d", state.Cutscene)}
	if state.Phase == game.PhaseEnding {
		lines = append(lines, fmt.Sprintf("Ending: %s", state.Ending))
	}
	if state.Cutscene == config.IntroLastCutscene && state.Phase == game.PhaseIntro {
		return append(lines, "Press Enter to begin")
	}
	return append(lines, "Press Enter to continue")
}

func (v *view) drawCutscene(state game.FlowState) {
	lines := cutsceneLines(state)
	top := viewRows/2 - len(lines)/2
	for i, line := range lines {
		v.text((viewCols-len(line))/2, top+i, line, styleBase.Bold(true))
	}
}

// text 从 (x, y) 开始写一行文本
func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
