package types

import "testing"

func TestTurretVariantRoundTrip(t *testing.T) {
	for _, tv := range AllTurretVariants {
		if got := TurretVariantFromString(tv.String()); got != tv {
			t.Errorf("TurretVariantFromString(%q) = %v, want %v", tv.String(), got, tv)
		}
	}
}

func TestTurretVariantAliases(t *testing.T) {
	tests := []struct {
		in   string
		want TurretVariant
	}{
		{"machine gun", TurretMachineGun},
		{"machinegun", TurretMachineGun},
		{"standard", TurretNormal},
		{"laser", TurretUnknown},
		{"", TurretUnknown},
	}
	for _, tt := range tests {
		if got := TurretVariantFromString(tt.in); got != tt.want {
			t.Errorf("TurretVariantFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTileCodeTurretVariant(t *testing.T) {
	tests := []struct {
		code TileCode
		want TurretVariant
	}{
		{TileTurretNormal, TurretNormal},
		{TileTurretSniper, TurretSniper},
		{TileTurretMachineGun, TurretMachineGun},
		{TileTurretDestroyer, TurretDestroyer},
		{TileGround, TurretUnknown},
		{TileCode(-1), TurretUnknown},
		{TileCode(42), TurretUnknown},
	}
	for _, tt := range tests {
		if got := tt.code.TurretVariant(); got != tt.want {
			t.Errorf("TileCode(%d).TurretVariant() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestTileCodeIsWall(t *testing.T) {
	if !TileGround.IsWall() || !TilePlatform.IsWall() {
		t.Error("Ground and platform should be walls")
	}
	for _, c := range []TileCode{TileKillBarrier, TileGoal, TileSpawn, TileTurretNormal, -1} {
		if c.IsWall() {
			t.Errorf("TileCode(%d) should not be a wall", c)
		}
	}
}
