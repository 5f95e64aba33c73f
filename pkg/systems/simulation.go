package systems

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/entities"
	"github.com/decker502/chronos/pkg/game"
)

// SimulationState 模拟的全部可变状态
// 只有 Simulation.Update 会修改它；各子系统只拿到自己需要的部分
type SimulationState struct {
	Registry *ecs.EntityManager
	Time     *TimeController
	History  *HistoryBuffer
	Flow     *game.LevelFlow
	Score    *game.Score
	Camera   *components.CameraComponent

	// Level 当前关卡配置
	Level *config.LevelConfig
	// Player / Mimic 当前关卡中的玩家与镜像实体
	Player ecs.EntityID
	Mimic  ecs.EntityID

	// Frame 已处理的渲染帧数
	Frame uint64
}

// FrameResult 一个渲染帧的处理结果，供宿主播放表现和测试断言
type FrameResult struct {
	Executed bool // 执行了完整模拟步
	Exempt   bool // 未执行完整步，但玩家按正常速度行动

	Combat   CombatResult
	Zones    ZoneResult
	Shots    int  // 玩家本帧开火次数
	Fired    int  // 炮台本帧发射的子弹数
	Recalled bool // 本帧发生回溯

	PlayerDied bool
	Transition game.Transition
}

// Options 创建模拟所需的参数
type Options struct {
	// Levels 关卡 0..FinalLevel 的配置，缺一不可
	Levels config.LevelSet
	// Tuning 调参，为 nil 时使用默认值
	Tuning *config.Tuning
	// Sound 音效输出，为 nil 时静音
	Sound game.SoundPlayer
	// Seed 炮台初始开火偏移的随机种子
	Seed uint64
	// StartLevel 起始关卡，0 表示从开场过场开始
	StartLevel int
	// NewPhysics 物理实现的构造函数，为 nil 时使用 PhysicsSystem
	NewPhysics func(em *ecs.EntityManager) PhysicsStepper
}

// Simulation 每帧的模拟更新
//
// 每帧顺序：
//  1. 处理输入（移动、跳跃、能力、回溯、射击、过场点击）
//  2. TimeController 决定本帧是否执行完整模拟步
//  3. 完整步：战斗结算、炮台开火、子弹运动、物理、历史缓冲、寿命回收
//     否则：豁免时只推进玩家物理
//  4. 动画推进，视口跟随，检查即死区域和目标点
//  5. 帧末：压缩已删除实体，处理死亡与关卡切换
type Simulation struct {
	state  *SimulationState
	levels config.LevelSet
	tuning *config.Tuning
	sound  game.SoundPlayer

	loader    *LevelSystem
	combat    *CombatSystem
	turrets   *TurretSystem
	bullets   *BulletSystem
	lifetime  *LifetimeSystem
	mimic     *MimicSystem
	animation *AnimationSystem
	camera    *CameraSystem
	physics   PhysicsStepper
}

// NewSimulation 创建模拟并加载起始关卡
func NewSimulation(opts Options) (*Simulation, error) {
	for id := config.CutsceneLevel; id <= config.FinalLevel; id++ {
		if _, ok := opts.Levels.Get(id); !ok {
			return nil, fmt.Errorf("level %d is not configured", id)
		}
	}
	if opts.Tuning == nil {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Sound == nil {
		opts.Sound = game.NopSoundPlayer{}
	}

	score := game.NewScore()
	flow, err := game.NewLevelFlowAt(score, opts.StartLevel)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	state := &SimulationState{
		Registry: em,
		Time:     NewTimeController(),
		History:  NewHistoryBuffer(),
		Flow:     flow,
		Score:    score,
		Camera:   &components.CameraComponent{},
	}

	var physics PhysicsStepper
	if opts.NewPhysics != nil {
		physics = opts.NewPhysics(em)
	} else {
		physics = NewPhysicsSystem(em)
	}

	s := &Simulation{
		state:     state,
		levels:    opts.Levels,
		tuning:    opts.Tuning,
		sound:     opts.Sound,
		loader:    NewLevelSystem(em, opts.Tuning, rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))),
		combat:    NewCombatSystem(em, score, opts.Sound),
		turrets:   NewTurretSystem(em),
		bullets:   NewBulletSystem(em),
		lifetime:  NewLifetimeSystem(em),
		mimic:     NewMimicSystem(em, state.History),
		animation: NewAnimationSystem(em),
		camera:    NewCameraSystem(em, state.Camera),
		physics:   physics,
	}

	if err := s.loadLevel(flow.Level()); err != nil {
		return nil, err
	}
	return s, nil
}

// State 返回模拟状态（只读使用）
func (s *Simulation) State() *SimulationState {
	return s.state
}

// Exited 流程是否已结束
func (s *Simulation) Exited() bool {
	return s.state.Flow.Exited()
}

// Update 处理一个渲染帧
func (s *Simulation) Update(in Input) (FrameResult, error) {
	var res FrameResult
	if s.state.Flow.Exited() {
		res.Transition = game.Transition{Kind: game.TransitionExit}
		return res, nil
	}
	s.state.Frame++

	if tr := s.applyInput(in, &res); tr.Kind != game.TransitionNone {
		res.Transition = tr
		if tr.Kind == game.TransitionLoad {
			return res, s.loadLevel(tr.Level)
		}
		return res, nil
	}

	decision := s.state.Time.Tick()
	res.Executed = decision.Execute
	if decision.Execute {
		s.fullStep(&res)
	} else if s.state.Time.Exempt(s.state.Score.Value()) {
		s.physics.Step(s.state.Player)
		res.Exempt = true
	}

	s.animation.Update()
	s.camera.Update(s.state.Player)
	res.Zones = s.combat.CheckZones(s.state.Player, !s.state.Flow.InCutscene())

	return res, s.endFrame(&res)
}

// fullStep 执行一个完整模拟步
func (s *Simulation) fullStep(res *FrameResult) {
	st := s.state
	res.Combat = s.combat.ResolveStep(st.Player)
	res.Fired = s.turrets.Update(config.SimStepSeconds, st.Player)
	s.bullets.Update()
	s.physics.Step(st.Player)
	res.Recalled = s.mimic.Update(st.Player, st.Mimic, config.SimStepSeconds)
	s.lifetime.Update()
}

// endFrame 压缩删除并处理死亡或过关
func (s *Simulation) endFrame(res *FrameResult) error {
	st := s.state
	st.Registry.RemoveMarkedEntities()

	dead := res.Combat.PlayerDied || res.Zones.KillBarrier
	if p, ok := ecs.GetComponent[*components.PlayerComponent](st.Registry, st.Player); ok && p.Dead {
		dead = true
	}

	if dead {
		res.PlayerDied = true
		s.sound.Play(config.SoundRespawn, config.VolumeRespawn)
		res.Transition = st.Flow.PlayerDied()
	} else if res.Zones.Goal {
		res.Transition = st.Flow.GoalReached()
	}

	if res.Transition.Kind == game.TransitionLoad {
		return s.loadLevel(res.Transition.Level)
	}
	return nil
}

// applyInput 处理本帧输入，返回过场点击引起的转换
func (s *Simulation) applyInput(in Input, res *FrameResult) game.Transition {
	st := s.state
	em := st.Registry
	score := st.Score.Value()

	player, hasPlayer := ecs.GetComponent[*components.PlayerComponent](em, st.Player)
	vel, hasVel := ecs.GetComponent[*components.VelocityComponent](em, st.Player)

	if hasVel {
		dir := in.Direction()
		vel.VX = float64(dir) * config.MovementSpeed
		if hasPlayer && dir != 0 {
			player.Facing = components.Facing(dir)
		}
		if in.Jump && !st.Flow.InCutscene() && s.physics.CanJump(st.Player) {
			vel.VY = config.JumpSpeed
		}
	}

	// 松开任一能力键都恢复正常速度；先处理松开再处理按下
	if in.SlowReleased || in.StopReleased {
		st.Time.Release()
	}
	if in.SlowPressed && st.Time.ActivateSlow(score) {
		s.sound.Play(config.SoundTimeSlow, config.VolumeTimeSlow)
	}
	if in.StopPressed && st.Time.ActivateStop(score) {
		s.sound.Play(config.SoundTimeStop, config.VolumeTimeStop)
	}

	if in.Recall {
		st.History.ArmRecall()
	}
	if in.MuteMusic {
		s.sound.Stop(config.SoundBackground)
	}

	if !in.Click {
		return game.Transition{}
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, st.Player); ok && hasPlayer {
		if _, err := entities.NewPlayerBullet(em, pos.X, pos.Y, player.Facing, s.tuning.PlayerBulletLifetime); err != nil {
			log.Printf("[Simulation] 创建玩家子弹失败: %v", err)
		} else {
			res.Shots++
			s.sound.Play(config.SoundShoot, config.VolumeShoot)
		}
	}

	if st.Flow.InCutscene() {
		return st.Flow.Click()
	}
	return game.Transition{}
}

// loadLevel （重新）加载关卡并重置与关卡绑定的状态
func (s *Simulation) loadLevel(level int) error {
	cfg, ok := s.levels.Get(level)
	if !ok {
		return fmt.Errorf("level %d is not configured", level)
	}

	loaded, err := s.loader.Load(cfg)
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", level, err)
	}

	st := s.state
	st.Level = cfg
	st.Player = loaded.Player
	st.Mimic = loaded.Mimic
	st.Time.Reset()
	st.History.Reset()
	s.camera.Reset()
	return nil
}
