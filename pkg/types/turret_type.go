// Package types 定义共享的基础类型
package types

// TurretVariant 定义炮台敌人的类型
type TurretVariant int

const (
	// TurretUnknown 未知炮台类型
	TurretUnknown TurretVariant = iota

	TurretNormal     // 普通炮台
	TurretSniper     // 狙击炮台：高速小弹，射速慢
	TurretDestroyer  // 毁灭者炮台：血厚，高伤害
	TurretMachineGun // 机枪炮台：射速极快
)

// AllTurretVariants 按固定顺序列出所有已知炮台类型
var AllTurretVariants = []TurretVariant{
	TurretNormal,
	TurretSniper,
	TurretDestroyer,
	TurretMachineGun,
}

// turretVariantStringMap 炮台类型到配置字符串的映射
var turretVariantStringMap = map[TurretVariant]string{
	TurretNormal:     "normal",
	TurretSniper:     "sniper",
	TurretDestroyer:  "destroyer",
	TurretMachineGun: "machine_gun",
}

// stringToTurretVariantMap 配置字符串到炮台类型的反向映射
var stringToTurretVariantMap map[string]TurretVariant

func init() {
	stringToTurretVariantMap = make(map[string]TurretVariant)
	for tv, s := range turretVariantStringMap {
		stringToTurretVariantMap[s] = tv
	}
	// 别名
	stringToTurretVariantMap["machine gun"] = TurretMachineGun
	stringToTurretVariantMap["machinegun"] = TurretMachineGun
	stringToTurretVariantMap["standard"] = TurretNormal
}

// String 返回炮台类型的配置字符串表示（用于配置文件匹配）
func (t TurretVariant) String() string {
	if s, ok := turretVariantStringMap[t]; ok {
		return s
	}
	return "unknown"
}

// TurretVariantFromString 将配置字符串转换为 TurretVariant
// 支持标准名称和别名
func TurretVariantFromString(s string) TurretVariant {
	if tv, ok := stringToTurretVariantMap[s]; ok {
		return tv
	}
	return TurretUnknown
}
