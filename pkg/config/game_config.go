package config

// 游戏全局常量
// 世界坐标系：原点在左下角，Y 轴向上（与关卡网格行号方向相反）

// 窗口与地图
const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 600

	// TileSize 每个网格单元的边长（像素）
	TileSize = 32.0

	// ViewportMargin 摄像机滚动的左/下边距
	ViewportMargin = 300.0
	// ViewportFarMargin 摄像机滚动的右/上边距
	ViewportFarMargin = 300.0
)

// 物理
const (
	// MovementSpeed 玩家水平移动速度（像素/步）
	MovementSpeed = 8.0
	// JumpSpeed 起跳初速度（像素/步）
	JumpSpeed = 15.0
	// Gravity 重力加速度（像素/步²）
	Gravity = 0.2

	// SimStepSeconds 一个完整模拟步对应的模拟时间（秒）
	SimStepSeconds = 1.0 / 60.0
)

// 玩家与战斗
const (
	// PlayerMaxHealth 玩家初始生命值
	PlayerMaxHealth = 100

	// PlayerBulletSpeed 玩家子弹速度（像素/步，方向由朝向决定）
	PlayerBulletSpeed = 10.0

	// PlayerBulletDamage 玩家子弹对炮台的伤害，固定为 1，与子弹自身数值无关
	PlayerBulletDamage = 1

	// KillScore 摧毁一个炮台获得的分数
	KillScore = 100

	// PlayerAnimationFrames 玩家行走动画帧数
	PlayerAnimationFrames = 4
	// PlayerAnimationFrameTicks 每个动画帧持续的渲染帧数
	PlayerAnimationFrameTicks = 8
)

// 时间能力（Chronos 计量槽）
const (
	// ChronosMax 计量槽上限
	ChronosMax = 100.0
	// ChronosDrainPerFrame 能力激活时每帧消耗
	ChronosDrainPerFrame = 0.5
	// ChronosRechargePerFrame 能力未激活时每帧恢复
	ChronosRechargePerFrame = 0.3
	// ChronosActivationMin 激活能力所需的最低计量值（严格大于）
	ChronosActivationMin = 10.0

	// SlowUnlockScore 解锁时间减速所需分数
	SlowUnlockScore = 1000
	// StopUnlockScore 解锁时间停止所需分数
	StopUnlockScore = 1800
	// SlowImmunityScore 减速时玩家不受影响所需分数
	SlowImmunityScore = 3300
	// StopImmunityScore 停止时玩家不受影响所需分数
	StopImmunityScore = 4300

	// MimicDelaySeconds 镜像开始回放前的模拟时间延迟
	MimicDelaySeconds = 3.0
)

// 关卡与结局
const (
	// CutsceneLevel 过场关卡编号（无目标点）
	CutsceneLevel = 0
	// FirstLevel 第一个可玩关卡
	FirstLevel = 1
	// FinalLevel 最终关卡，到达目标点触发结局
	FinalLevel = 6

	// GoodEndingScore 好结局所需的最低分数（含）
	GoodEndingScore = 9500

	// OpeningCutscene 载入关卡 0 时显示的过场图（开场与结局共用）
	OpeningCutscene = 0
	// IntroLastCutscene 开场过场的最后一张，到达后进入第一关
	IntroLastCutscene = 11
	// BadEndingFirstCutscene 坏结局的第一张过场
	BadEndingFirstCutscene = 11
	// BadEndingExitCutscene 坏结局计数到达此值时退出游戏
	BadEndingExitCutscene = 13
	// GoodEndingFirstCutscene 好结局的第一张过场
	GoodEndingFirstCutscene = 13
	// GoodEndingExitCutscene 好结局计数到达此值时退出游戏
	GoodEndingExitCutscene = 15
)

// 音效ID与音量
const (
	SoundTimeStop   = "SOUND_TIME_STOP"
	SoundTimeSlow   = "SOUND_TIME_SLOW"
	SoundShoot      = "SOUND_SHOOT"
	SoundKill       = "SOUND_KILL"
	SoundRespawn    = "SOUND_RESPAWN"
	SoundBackground = "SOUND_BACKGROUND"
	SoundHit        = "SOUND_HIT"

	VolumeTimeStop   = 0.4
	VolumeTimeSlow   = 0.2
	VolumeShoot      = 0.1
	VolumeKill       = 0.1
	VolumeRespawn    = 0.1
	VolumeBackground = 0.06
	VolumeHit        = 1.0
)

// SoundFiles 音效ID到资源路径的映射
var SoundFiles = map[string]string{
	SoundTimeStop:   "assets/sounds/player/time_stop.ogg",
	SoundTimeSlow:   "assets/sounds/player/time_slow.ogg",
	SoundShoot:      "assets/sounds/player/shoot.ogg",
	SoundKill:       "assets/sounds/player/kill.ogg",
	SoundRespawn:    "assets/sounds/player/respawn.ogg",
	SoundBackground: "assets/sounds/environment/background.ogg",
	SoundHit:        "assets/sounds/player/hit.ogg",
}

// CellCenter 返回网格单元 (row, col) 中心的世界坐标
// rows 为网格总行数，第 0 行位于最上方
func CellCenter(row, col, rows int) (float64, float64) {
	x := float64(col)*TileSize + TileSize/2
	y := float64(rows-1-row)*TileSize + TileSize/2
	return x, y
}
