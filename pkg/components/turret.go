package components

import "github.com/decker502/chronos/pkg/types"

// TurretComponent 炮台敌人
// 属性在生成时从调参表复制，之后与调参表无关
type TurretComponent struct {
	Variant types.TurretVariant

	FireInterval  float64 // 开火间隔（模拟秒）
	SinceLastShot float64 // 距上次开火经过的模拟秒
	BulletSpeed   float64 // 子弹速度（像素/步）
	BulletSize    float64 // 子弹尺寸缩放
	BulletDamage  int     // 子弹伤害
}
