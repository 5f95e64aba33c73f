package systems

import (
	"math"
	"testing"

	"github.com/decker502/chronos/pkg/config"
)

func TestComputeStepMeterStaysInRange(t *testing.T) {
	tests := []struct {
		name   string
		meter  float64
		factor int64
	}{
		{"full and idle", config.ChronosMax, DilationNormal},
		{"almost full and idle", 99.9, DilationNormal},
		{"empty and slow", 0, DilationSlow},
		{"near empty and stopped", 0.2, DilationStop},
		{"over range", 250, DilationNormal},
		{"under range", -5, DilationSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meter, factor, counter := tt.meter, tt.factor, int64(0)
			for i := 0; i < 1000; i++ {
				d := ComputeStep(meter, factor, counter)
				if d.Meter < 0 || d.Meter > config.ChronosMax {
					t.Fatalf("frame %d: meter = %v out of [0, %v]", i, d.Meter, config.ChronosMax)
				}
				meter, factor, counter = d.Meter, d.Factor, d.Counter
			}
		})
	}
}

func TestComputeStepDrainAndRecharge(t *testing.T) {
	d := ComputeStep(50, DilationSlow, 0)
	if d.Meter != 49.5 {
		t.Errorf("drain: meter = %v, want 49.5", d.Meter)
	}

	d = ComputeStep(50, DilationNormal, 0)
	if math.Abs(d.Meter-50.3) > 1e-9 {
		t.Errorf("recharge: meter = %v, want 50.3", d.Meter)
	}

	d = ComputeStep(99.9, DilationNormal, 0)
	if d.Meter != config.ChronosMax {
		t.Errorf("recharge clamp: meter = %v, want %v", d.Meter, config.ChronosMax)
	}
}

func TestComputeStepDepletion(t *testing.T) {
	d := ComputeStep(0.5, DilationStop, 0)
	if d.Meter != 0 {
		t.Errorf("meter = %v, want 0", d.Meter)
	}
	if d.Factor != DilationNormal {
		t.Errorf("factor = %v, want %v", d.Factor, DilationNormal)
	}
	if !d.Depleted {
		t.Error("expected depleted flag")
	}
	if !d.Execute {
		t.Error("a depleted frame runs at normal speed and should execute")
	}
}

func TestComputeStepOneStepPerFactorFrames(t *testing.T) {
	for _, factor := range []int64{1, 2, 3, 7} {
		meter := config.ChronosMax
		counter := int64(0)
		f := factor
		steps := 0
		for i := int64(0); i < 3*factor; i++ {
			d := ComputeStep(meter, f, counter)
			if d.Execute {
				steps++
			}
			// 保持计量槽充足，只测计数器
			meter, f, counter = config.ChronosMax, factor, d.Counter
		}
		if steps != 3 {
			t.Errorf("factor %d: %d full steps over %d frames, want 3", factor, steps, 3*factor)
		}
	}
}

func TestComputeStepStopNeverExecutes(t *testing.T) {
	counter := int64(0)
	for i := 0; i < 150; i++ {
		d := ComputeStep(config.ChronosMax, DilationStop, counter)
		if d.Execute {
			t.Fatalf("frame %d executed a full step while stopped", i)
		}
		counter = d.Counter
	}
}

func TestTimeControllerActivationGates(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		meter    float64
		activate func(*TimeController, int) bool
		want     bool
		wantMode TimeMode
	}{
		{"slow locked", config.SlowUnlockScore - 1, 100, (*TimeController).ActivateSlow, false, TimeModeNormal},
		{"slow unlocked", config.SlowUnlockScore, 100, (*TimeController).ActivateSlow, true, TimeModeSlow},
		{"slow low meter", 5000, config.ChronosActivationMin, (*TimeController).ActivateSlow, false, TimeModeNormal},
		{"stop locked", config.StopUnlockScore - 1, 100, (*TimeController).ActivateStop, false, TimeModeNormal},
		{"stop unlocked", config.StopUnlockScore, 100, (*TimeController).ActivateStop, true, TimeModeStop},
		{"stop low meter", 5000, 9, (*TimeController).ActivateStop, false, TimeModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTimeController()
			tc.meter = tt.meter
			if got := tt.activate(tc, tt.score); got != tt.want {
				t.Errorf("activate = %v, want %v", got, tt.want)
			}
			if tc.Mode() != tt.wantMode {
				t.Errorf("mode = %v, want %v", tc.Mode(), tt.wantMode)
			}
		})
	}
}

func TestTimeControllerSlowRunsUntilDepleted(t *testing.T) {
	tc := NewTimeController()
	if !tc.ActivateSlow(config.SlowUnlockScore) {
		t.Fatal("ActivateSlow failed")
	}

	frames := 0
	for tc.Mode() == TimeModeSlow {
		tc.Tick()
		frames++
		if frames > 1000 {
			t.Fatal("meter never depleted")
		}
	}

	if tc.Mode() != TimeModeDepleted {
		t.Errorf("mode = %v, want depleted", tc.Mode())
	}
	if tc.Factor() != DilationNormal || tc.Meter() != 0 {
		t.Errorf("after depletion factor = %d meter = %v", tc.Factor(), tc.Meter())
	}
	// 100 / 0.5
	if frames != 200 {
		t.Errorf("depleted after %d frames, want 200", frames)
	}
}

func TestTimeControllerRelease(t *testing.T) {
	tc := NewTimeController()
	tc.ActivateStop(config.StopUnlockScore)
	tc.Release()
	if tc.Factor() != DilationNormal || tc.Mode() != TimeModeNormal {
		t.Errorf("after release factor = %d mode = %v", tc.Factor(), tc.Mode())
	}
	if !tc.Tick().Execute {
		t.Error("normal speed should execute every frame")
	}
}

func TestTimeControllerExempt(t *testing.T) {
	tests := []struct {
		name  string
		mode  TimeMode
		score int
		want  bool
	}{
		{"normal never exempt", TimeModeNormal, 99999, false},
		{"slow below threshold", TimeModeSlow, config.SlowImmunityScore - 1, false},
		{"slow at threshold", TimeModeSlow, config.SlowImmunityScore, true},
		{"stop with slow immunity only", TimeModeStop, config.SlowImmunityScore, false},
		{"stop at threshold", TimeModeStop, config.StopImmunityScore, true},
		{"depleted", TimeModeDepleted, 99999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTimeController()
			tc.mode = tt.mode
			if got := tc.Exempt(tt.score); got != tt.want {
				t.Errorf("Exempt(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestTimeControllerReset(t *testing.T) {
	tc := NewTimeController()
	tc.ActivateSlow(config.SlowUnlockScore)
	tc.Tick()
	tc.Reset()
	if tc.Meter() != config.ChronosMax || tc.Factor() != DilationNormal || tc.Mode() != TimeModeNormal {
		t.Errorf("after reset meter = %v factor = %d mode = %v", tc.Meter(), tc.Factor(), tc.Mode())
	}
}
