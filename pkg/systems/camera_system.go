package systems

import (
	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
)

// CameraSystem 让视口跟随玩家
// 玩家碰撞盒离视口边缘小于边距时，视口平移刚好足够的距离
type CameraSystem struct {
	entityManager *ecs.EntityManager
	camera        *components.CameraComponent

	width, height float64
}

// NewCameraSystem 创建视口跟随系统，视口大小为逻辑屏幕大小
func NewCameraSystem(em *ecs.EntityManager, camera *components.CameraComponent) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		camera:        camera,
		width:         config.GameWindowWidth,
		height:        config.GameWindowHeight,
	}
}

// Reset 视口回到原点
func (cs *CameraSystem) Reset() {
	cs.camera.ViewLeft = 0
	cs.camera.ViewBottom = 0
}

// Update 根据玩家位置调整视口
// 垂直方向两侧边距之和等于屏幕高度，玩家底边总是停在距视口底部一个边距处
func (cs *CameraSystem) Update(playerID ecs.EntityID) {
	b, ok := bodyOf(cs.entityManager, playerID)
	if !ok {
		return
	}

	left := b.pos.X - b.col.Width/2
	right := b.pos.X + b.col.Width/2
	bottom := b.pos.Y - b.col.Height/2
	top := b.pos.Y + b.col.Height/2

	cam := cs.camera

	if bound := cam.ViewLeft + config.ViewportMargin; left < bound {
		cam.ViewLeft -= bound - left
	}
	if bound := cam.ViewLeft + cs.width - config.ViewportFarMargin; right > bound {
		cam.ViewLeft += right - bound
	}
	if bound := cam.ViewBottom + cs.height - config.ViewportFarMargin; top > bound {
		cam.ViewBottom += top - bound
	}
	if bound := cam.ViewBottom + config.ViewportMargin; bottom < bound {
		cam.ViewBottom -= bound - bottom
	}
}

// WorldToScreen 将世界坐标转换为屏幕坐标（屏幕 Y 轴向下）
func (cs *CameraSystem) WorldToScreen(x, y float64) (float64, float64) {
	return WorldToScreen(cs.camera, x, y)
}

// WorldToScreen 按视口将世界坐标转换为屏幕坐标
func WorldToScreen(cam *components.CameraComponent, x, y float64) (float64, float64) {
	return x - cam.ViewLeft, config.GameWindowHeight - (y - cam.ViewBottom)
}
