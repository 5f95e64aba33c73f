package components

// HealthComponent 存储实体的生命值信息
// 用于玩家和炮台；生命值允许变为负数，<= 0 即视为死亡
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// IsDepleted 生命值是否耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.CurrentHealth <= 0
}
