package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const toneSampleRate = beep.SampleRate(48000)

// tone 终端版用合成音代替音效文件
type tone struct {
	freq     float64
	duration time.Duration
}

// tones 每个音效对应的合成音，背景音乐在终端版中不播放
var tones = map[string]tone{
	config.SoundTimeStop: {freq: 220, duration: 300 * time.Millisecond},
	config.SoundTimeSlow: {freq: 330, duration: 200 * time.Millisecond},
	config.SoundShoot:    {freq: 880, duration: 40 * time.Millisecond},
	config.SoundKill:     {freq: 1320, duration: 120 * time.Millisecond},
	config.SoundRespawn:  {freq: 440, duration: 250 * time.Millisecond},
	config.SoundHit:      {freq: 160, duration: 90 * time.Millisecond},
}

// tonePlayer 用 beep 播放合成音，实现 game.SoundPlayer
type tonePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

var _ game.SoundPlayer = (*tonePlayer)(nil)

func newTonePlayer() *tonePlayer {
	return &tonePlayer{mixer: &beep.Mixer{}}
}

// Init 初始化扬声器，失败时保持静音
func (p *tonePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play 播放 id 对应的合成音
func (p *tonePlayer) Play(id string, volume float64) {
	t, ok := tones[id]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	sine, err := generators.SineTone(toneSampleRate, t.freq)
	if err != nil {
		log.Printf("[tonePlayer] %s: %v", id, err)
		return
	}
	streamer := withVolume(beep.Take(toneSampleRate.N(t.duration), sine), volume)

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Stop 合成音很短，不单独停止
func (p *tonePlayer) Stop(string) {}

// Close 停止所有声音
func (p *tonePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// withVolume 按线性音量缩放，0 及以下静音
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume), Silent: false}
}
