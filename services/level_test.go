package services

import "testing"

func TestComputeLevelInfoBoundaries(t *testing.T) {
	// Exactly at the level-3 floor
	if got := ComputeLevelInfo(3, 200).ProgressPercentage; got != 0 {
		t.Errorf("ComputeLevelInfo(3, 200): expected 0%%, got %d%%", got)
	}

	// One XP short of the next level
	if got := ComputeLevelInfo(3, 299).ProgressPercentage; got != 99 {
		t.Errorf("ComputeLevelInfo(3, 299): expected 99%%, got %d%%", got)
	}

	// The caller-supplied level is trusted, so a total at the next level's
	// floor reports a full bar rather than an auto-incremented level.
	info := ComputeLevelInfo(3, 300)
	if info.ProgressPercentage != 100 {
		t.Errorf("ComputeLevelInfo(3, 300): expected 100%%, got %d%%", info.ProgressPercentage)
	}
	if info.Level != 3 {
		t.Errorf("ComputeLevelInfo(3, 300): expected level 3, got %d", info.Level)
	}
	if info.XPForNextLevel != 300 {
		t.Errorf("ComputeLevelInfo(3, 300): expected next level at 300, got %d", info.XPForNextLevel)
	}
	if info.XPNeededForLevelUp != XPPerLevel {
		t.Errorf("ComputeLevelInfo(3, 300): expected %d XP per level, got %d", XPPerLevel, info.XPNeededForLevelUp)
	}
}

func TestComputeLevelInfoMonotonic(t *testing.T) {
	prev := -1
	for xp := 200; xp < 300; xp++ {
		pct := ComputeLevelInfo(3, xp).ProgressPercentage
		if pct < 0 || pct > 100 {
			t.Fatalf("ComputeLevelInfo(3, %d): percentage %d out of [0, 100]", xp, pct)
		}
		if pct < prev {
			t.Fatalf("ComputeLevelInfo(3, %d): percentage %d decreased from %d", xp, pct, prev)
		}
		prev = pct
	}
}

func TestComputeLevelInfoClampsInconsistentData(t *testing.T) {
	// XP below the level's floor (desynced upstream data) must not render
	// a negative bar.
	if got := ComputeLevelInfo(3, 150).ProgressPercentage; got != 0 {
		t.Errorf("ComputeLevelInfo(3, 150): expected clamp to 0%%, got %d%%", got)
	}

	// XP far above the level's ceiling must not overflow the bar.
	if got := ComputeLevelInfo(2, 900).ProgressPercentage; got != 100 {
		t.Errorf("ComputeLevelInfo(2, 900): expected clamp to 100%%, got %d%%", got)
	}

	// A bogus level is floored at 1.
	if got := ComputeLevelInfo(0, 50).Level; got != 1 {
		t.Errorf("ComputeLevelInfo(0, 50): expected level 1, got %d", got)
	}
}

func TestDeriveLevel(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{300, 4},
		{-10, 1},
	}
	for _, tc := range cases {
		if got := DeriveLevel(tc.xp); got != tc.want {
			t.Errorf("DeriveLevel(%d): expected %d, got %d", tc.xp, tc.want, got)
		}
	}
}
