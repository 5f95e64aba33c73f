package scenes

import (
	"image"
	"image/color"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/systems"
	"github.com/decker502/chronos/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 精灵缺失时使用的纯色
var (
	colorGround      = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	colorPlatform    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	colorKillBarrier = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	colorGoal        = color.RGBA{R: 60, G: 200, B: 255, A: 255}
	colorPlayer      = color.RGBA{R: 80, G: 220, B: 80, A: 255}
	colorMimic       = color.RGBA{R: 80, G: 220, B: 80, A: 110}
	colorEnemyBullet = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	colorOwnBullet   = color.RGBA{R: 255, G: 240, B: 90, A: 255}
)

// turretColors 按炮台类型区分颜色
var turretColors = map[types.TurretVariant]color.RGBA{
	types.TurretNormal:     {R: 220, G: 220, B: 220, A: 255},
	types.TurretSniper:     {R: 170, G: 90, B: 230, A: 255},
	types.TurretDestroyer:  {R: 230, G: 60, B: 120, A: 255},
	types.TurretMachineGun: {R: 240, G: 180, B: 40, A: 255},
}

// sprite 加载精灵，失败返回 nil
// ResourceManager 会记住失败的路径，所以每帧调用也只会真正尝试一次
func (s *GameScene) sprite(path string) *ebiten.Image {
	if s.sprites == nil {
		return nil
	}
	img, err := s.sprites.LoadSprite(path)
	if err != nil {
		return nil
	}
	return img
}

// drawWorld 按固定图层顺序绘制关卡中的所有实体
func (s *GameScene) drawWorld(screen *ebiten.Image, st *systems.SimulationState) {
	screen.Fill(color.Black)
	em := st.Registry
	cam := st.Camera

	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](em) {
		wall, _ := ecs.GetComponent[*components.WallComponent](em, id)
		path, clr := config.SpriteGround, colorGround
		if wall.Platform {
			path, clr = config.SpritePlatform, colorPlatform
		}
		s.drawEntity(screen, cam, em, id, s.sprite(path), clr)
	}

	s.drawPlayer(screen, cam, em, st.Player)

	for _, id := range ecs.GetEntitiesWith1[*components.TurretComponent](em) {
		turret, _ := ecs.GetComponent[*components.TurretComponent](em, id)
		var img *ebiten.Image
		if path, ok := config.TurretSprite(turret.Variant); ok {
			img = s.sprite(path)
		}
		s.drawEntity(screen, cam, em, id, img, turretColors[turret.Variant])
	}

	s.drawMimic(screen, cam, em, st.Mimic)

	bulletImg := s.sprite(config.BulletSprite())
	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		clr := colorEnemyBullet
		if bullet.Owner == components.BulletOwnerPlayer {
			clr = colorOwnBullet
		}
		s.drawEntity(screen, cam, em, id, bulletImg, clr)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.GoalComponent](em) {
		s.drawEntity(screen, cam, em, id, s.sprite(config.SpriteGoal), colorGoal)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.KillBarrierComponent](em) {
		s.drawEntity(screen, cam, em, id, s.sprite(config.SpriteKillBarrier), colorKillBarrier)
	}
}

// entityRect 返回实体碰撞盒在屏幕上的左上角与大小
// 没有碰撞盒的实体按一个网格单元处理
func entityRect(cam *components.CameraComponent, em *ecs.EntityManager, id ecs.EntityID) (x, y, w, h float64, ok bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return 0, 0, 0, 0, false
	}
	w, h = config.TileSize, config.TileSize
	if col, hasCol := ecs.GetComponent[*components.CollisionComponent](em, id); hasCol {
		w, h = col.Width, col.Height
	}
	x, y = systems.WorldToScreen(cam, pos.X-w/2, pos.Y+h/2)
	return x, y, w, h, true
}

// drawEntity 绘制实体：有精灵时缩放到碰撞盒大小，否则画纯色方块
func (s *GameScene) drawEntity(screen *ebiten.Image, cam *components.CameraComponent, em *ecs.EntityManager, id ecs.EntityID, img *ebiten.Image, fallback color.Color) {
	x, y, w, h, ok := entityRect(cam, em, id)
	if !ok {
		return
	}
	drawImageOrRect(screen, img, x, y, w, h, fallback)
}

func drawImageOrRect(screen, img *ebiten.Image, x, y, w, h float64, fallback color.Color) {
	if img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// playerFrameRect 返回玩家精灵表中当前帧的区域
// 移动时按朝向选择行并播放行走帧，静止时停在朝向行的第 0 帧
func playerFrameRect(facing components.Facing, anim *components.AnimationComponent) image.Rectangle {
	row := config.PlayerSheetRightRow
	if facing == components.FacingLeft {
		row = config.PlayerSheetLeftRow
	}
	frame := 0
	if anim != nil && anim.Moving {
		frame = anim.Frame
	}
	size := config.PlayerSheetFrameSize
	return image.Rect(frame*size, row, (frame+1)*size, row+size)
}

func (s *GameScene) drawPlayer(screen *ebiten.Image, cam *components.CameraComponent, em *ecs.EntityManager, id ecs.EntityID) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	var frame *ebiten.Image
	if sheet := s.sprite(config.SpritePlayerSheet); sheet != nil {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
		frame = sheet.SubImage(playerFrameRect(player.Facing, anim)).(*ebiten.Image)
	}
	s.drawEntity(screen, cam, em, id, frame, colorPlayer)
}

func (s *GameScene) drawMimic(screen *ebiten.Image, cam *components.CameraComponent, em *ecs.EntityManager, id ecs.EntityID) {
	mimic, ok := ecs.GetComponent[*components.MimicComponent](em, id)
	if !ok || !mimic.Visible {
		return
	}
	var frame *ebiten.Image
	if sheet := s.sprite(config.SpritePlayerSheet); sheet != nil {
		size := config.PlayerSheetFrameSize
		x := config.PlayerSheetMimicFrame * size
		frame = sheet.SubImage(image.Rect(x, config.PlayerSheetIdleRow, x+size, config.PlayerSheetIdleRow+size)).(*ebiten.Image)
	}
	s.drawEntity(screen, cam, em, id, frame, colorMimic)
}

// drawCutscene 全屏绘制第 n 张过场图，图片缺失时画文字卡片
func (s *GameScene) drawCutscene(screen *ebiten.Image, n int) {
	if img := s.sprite(config.CutsceneSprite(n)); img != nil {
		drawImageOrRect(screen, img, 0, 0, WindowWidth, WindowHeight, color.Black)
		return
	}

	vector.DrawFilledRect(screen, 0, 0, WindowWidth, WindowHeight, color.RGBA{A: 220}, false)
	lines := cutsceneCard(n)
	for i, line := range lines {
		s.drawText(screen, line, 60, float64(WindowHeight/2-30+i*20), color.White)
	}
}
