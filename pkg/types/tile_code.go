package types

// TileCode 关卡网格中的单元格编码
//
// 地图编辑器导出的网格只使用 0-8 这九个编码，
// 其他值（例如空格子常用的 -1）一律忽略。
type TileCode int

const (
	TileGround           TileCode = 0
	TilePlatform         TileCode = 1
	TileTurretNormal     TileCode = 2
	TileTurretSniper     TileCode = 3
	TileTurretMachineGun TileCode = 4
	TileTurretDestroyer  TileCode = 5
	TileKillBarrier      TileCode = 6
	TileGoal             TileCode = 7
	TileSpawn            TileCode = 8
)

// IsWall 是否为静态碰撞几何（地面或平台）
func (c TileCode) IsWall() bool {
	return c == TileGround || c == TilePlatform
}

// TurretVariant 返回炮台编码对应的炮台类型，非炮台编码返回 TurretUnknown
func (c TileCode) TurretVariant() TurretVariant {
	switch c {
	case TileTurretNormal:
		return TurretNormal
	case TileTurretSniper:
		return TurretSniper
	case TileTurretMachineGun:
		return TurretMachineGun
	case TileTurretDestroyer:
		return TurretDestroyer
	default:
		return TurretUnknown
	}
}
