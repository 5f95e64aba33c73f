package systems

import "github.com/decker502/chronos/pkg/config"

// AbilityHints 返回当前分数下 HUD 显示的能力提示
// 减速与停止各占一行，未解锁的能力不显示
func AbilityHints(score int) []string {
	hints := make([]string, 0, 2)

	switch {
	case score >= config.SlowImmunityScore:
		hints = append(hints, "Shift: Empowered Slow Time")
	case score >= config.SlowUnlockScore:
		hints = append(hints, "Shift: Slow Time")
	}

	switch {
	case score >= config.StopImmunityScore:
		hints = append(hints, "Space: Empowered Stop Time")
	case score >= config.StopUnlockScore:
		hints = append(hints, "Space: Stop Time")
	}
	return hints
}

// UnlockNotice 分数恰好等于某个解锁线时返回解锁提示
func UnlockNotice(score int) (string, bool) {
	switch score {
	case config.SlowUnlockScore:
		return "! Unlocked slow time !", true
	case config.StopUnlockScore:
		return "! Unlocked stop time !", true
	case config.SlowImmunityScore:
		return "! Unlocked IMPROVED slow time !", true
	case config.StopImmunityScore:
		return "! Unlocked IMPROVED stop time !", true
	}
	return "", false
}
