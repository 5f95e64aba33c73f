package config

import (
	"fmt"

	"github.com/decker502/chronos/pkg/types"
)

// 精灵资源路径
// 所有图片都是可选的，缺失时渲染器用纯色方块代替
const (
	SpritePlayerSheet = "assets/sprites/player/player_sprite.png"
	SpriteGround      = "assets/sprites/stage/ground.png"
	SpritePlatform    = "assets/sprites/stage/block.png"
	SpriteKillBarrier = "assets/sprites/stage/kill barrier.png"
	SpriteGoal        = "assets/sprites/stage/next level.png"
	SpriteSpawn       = "assets/sprites/stage/spawn.png"

	// PlayerSheetFrameSize 玩家精灵表中每帧的边长
	PlayerSheetFrameSize = 32
	// 精灵表中各动画所在行的 Y 偏移
	PlayerSheetIdleRow  = 0
	PlayerSheetLeftRow  = 64
	PlayerSheetRightRow = 96
	// PlayerSheetMimicFrame 镜像使用的静止帧序号
	PlayerSheetMimicFrame = 1
)

// HUD 字体，可选；缺失时使用内置点阵字体
const (
	HUDFontPath = "assets/fonts/hud.ttf"
	HUDFontSize = 14
)

// turretSprites 炮台类型到精灵路径的映射
var turretSprites = map[types.TurretVariant]string{
	types.TurretNormal:     "assets/sprites/enemies/standard turret.png",
	types.TurretSniper:     "assets/sprites/enemies/sniper turret.png",
	types.TurretMachineGun: "assets/sprites/enemies/machine gun turret.png",
	types.TurretDestroyer:  "assets/sprites/enemies/destroyer turret.png",
}

// TurretSprite 返回炮台精灵路径
func TurretSprite(variant types.TurretVariant) (string, bool) {
	path, ok := turretSprites[variant]
	return path, ok
}

// BulletSprite 子弹使用普通炮台的贴图缩放到碰撞盒大小
func BulletSprite() string {
	return turretSprites[types.TurretNormal]
}

// CutsceneSprite 返回第 n 张过场图片的路径
func CutsceneSprite(n int) string {
	return fmt.Sprintf("assets/sprites/cutscenes/cutscene %d.png", n)
}
