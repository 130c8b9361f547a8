package scoring

import (
	"testing"

	"github.com/mmynk/whistkeeper/internal/models"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		bidLevel int
		trump    models.TrumpType
		success  bool
		special  models.SpecialBid
		isSolo   bool
		vipCount int
		want     int
	}{
		{
			name:     "seven alm solo made",
			bidLevel: 7, trump: models.TrumpAlm, success: true, isSolo: true,
			want: 2,
		},
		{
			name:     "eight vip three cards failed with partner",
			bidLevel: 8, trump: models.TrumpVip, success: false, vipCount: 3,
			want: -12,
		},
		{
			name:     "thirteen sans solo open nolo made",
			bidLevel: 13, trump: models.TrumpSans, success: true, isSolo: true, special: models.SpecialOpenNolo,
			want: 408,
		},
		{
			name:     "vip count ignored for gode",
			bidLevel: 9, trump: models.TrumpGode, success: true, vipCount: 3,
			want: 8,
		},
		{
			name:     "vip count out of range ignored",
			bidLevel: 7, trump: models.TrumpVip, success: true, vipCount: 4,
			want: 2,
		},
		{
			name:     "vip and solo compose before bonus",
			bidLevel: 10, trump: models.TrumpVip, success: true, vipCount: 2, isSolo: true, special: models.SpecialSol,
			want: 16*2*2 + 3,
		},
		{
			name:     "special bid adds nothing on failure",
			bidLevel: 7, trump: models.TrumpHalve, success: false, special: models.SpecialSuperBordlaegger,
			want: -2,
		},
		{
			name:     "bid level below table returns zero",
			bidLevel: 6, trump: models.TrumpAlm, success: true,
			want: 0,
		},
		{
			name:     "bid level above table returns zero",
			bidLevel: 14, trump: models.TrumpSans, success: false, isSolo: true,
			want: 0,
		},
		{
			name:     "unknown trump returns zero",
			bidLevel: 8, trump: models.TrumpType("spar"), success: true, special: models.SpecialSol,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.bidLevel, tt.trump, tt.success, tt.special, tt.isSolo, tt.vipCount)
			if got != tt.want {
				t.Errorf("Compute() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPointsTableIsSymmetric(t *testing.T) {
	for level := models.MinBidLevel; level <= models.MaxBidLevel; level++ {
		for _, trump := range models.TrumpTypes {
			made, failed, ok := BasePoints(level, trump)
			if !ok {
				t.Fatalf("missing table entry for level %d %s", level, trump)
			}
			if made != -failed {
				t.Errorf("level %d %s: made %d, failed %d", level, trump, made, failed)
			}
		}
	}
}

func TestPointsTableLevelSeven(t *testing.T) {
	want := map[models.TrumpType]int{
		models.TrumpAlm:   1,
		models.TrumpVip:   2,
		models.TrumpGode:  2,
		models.TrumpHalve: 2,
		models.TrumpSans:  3,
	}
	for trump, w := range want {
		made, _, _ := BasePoints(7, trump)
		if made != w {
			t.Errorf("%s at level 7: got %d, want %d", trump, made, w)
		}
	}

	if made, _, _ := BasePoints(13, models.TrumpSans); made != 192 {
		t.Errorf("sans at level 13: got %d, want 192", made)
	}
}

func TestDoublingLaw(t *testing.T) {
	for _, trump := range models.TrumpTypes {
		for level := models.MinBidLevel; level < models.MaxBidLevel; level++ {
			lower := Compute(level, trump, true, models.SpecialNone, false, 0)
			upper := Compute(level+1, trump, true, models.SpecialNone, false, 0)
			if upper != 2*lower {
				t.Errorf("%s level %d -> %d: got %d, want %d", trump, level, level+1, upper, 2*lower)
			}
		}
	}
}

func TestMultipliers(t *testing.T) {
	for level := models.MinBidLevel; level <= models.MaxBidLevel; level++ {
		one := Compute(level, models.TrumpVip, true, models.SpecialNone, false, 1)
		two := Compute(level, models.TrumpVip, true, models.SpecialNone, false, 2)
		if two != 2*one {
			t.Errorf("vip level %d: two cards %d, one card %d", level, two, one)
		}

		for _, trump := range models.TrumpTypes {
			team := Compute(level, trump, true, models.SpecialNone, false, 0)
			solo := Compute(level, trump, true, models.SpecialNone, true, 0)
			if solo != 2*team {
				t.Errorf("%s level %d: solo %d, team %d", trump, level, solo, team)
			}
		}
	}
}

func TestSpecialBonusOnlyOnSuccess(t *testing.T) {
	for _, special := range models.SpecialBids {
		for _, trump := range models.TrumpTypes {
			plain := Compute(9, trump, false, models.SpecialNone, false, 0)
			withBid := Compute(9, trump, false, special, false, 0)
			if plain != withBid {
				t.Errorf("%s/%s failed: got %d, want %d", special, trump, withBid, plain)
			}

			made := Compute(9, trump, true, models.SpecialNone, false, 0)
			madeWithBid := Compute(9, trump, true, special, false, 0)
			if madeWithBid-made != SpecialBonus(special) {
				t.Errorf("%s/%s made: bonus %d, want %d", special, trump, madeWithBid-made, SpecialBonus(special))
			}
		}
	}
}

func TestComputeRoundOutcome(t *testing.T) {
	tests := []struct {
		name        string
		in          RoundInput
		wantSuccess bool
		wantPoints  int
	}{
		{
			name:        "solo seven alm made exactly",
			in:          RoundInput{Bidder: "a", BidLevel: 7, TrumpType: models.TrumpAlm, TricksWon: 7},
			wantSuccess: true,
			wantPoints:  2,
		},
		{
			name:        "partnered vip failed",
			in:          RoundInput{Bidder: "a", Partner: "b", BidLevel: 8, TrumpType: models.TrumpVip, VipCount: 3, TricksWon: 6},
			wantSuccess: false,
			wantPoints:  -12,
		},
		{
			name:        "overtricks still count as made",
			in:          RoundInput{Bidder: "a", Partner: "b", BidLevel: 9, TrumpType: models.TrumpSans, TricksWon: 11},
			wantSuccess: true,
			wantPoints:  12,
		},
		{
			name:        "solo sans open nolo",
			in:          RoundInput{Bidder: "a", BidLevel: 13, TrumpType: models.TrumpSans, SpecialBid: models.SpecialOpenNolo, TricksWon: 13},
			wantSuccess: true,
			wantPoints:  408,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRoundOutcome(tt.in)
			if got.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", got.Success, tt.wantSuccess)
			}
			if got.Points != tt.wantPoints {
				t.Errorf("Points = %d, want %d", got.Points, tt.wantPoints)
			}
		})
	}
}

func TestPreviewPoints(t *testing.T) {
	p := PreviewPoints(10, models.TrumpGode, models.SpecialRenSol, true, 0)
	if p.IfMade != 16*2+6 {
		t.Errorf("IfMade = %d, want %d", p.IfMade, 16*2+6)
	}
	if p.IfFailed != -32 {
		t.Errorf("IfFailed = %d, want -32", p.IfFailed)
	}

	// Transient form states must not fail.
	empty := PreviewPoints(0, models.TrumpType(""), models.SpecialNone, false, 0)
	if empty.IfMade != 0 || empty.IfFailed != 0 {
		t.Errorf("out-of-table preview = %+v, want zeros", empty)
	}
}
