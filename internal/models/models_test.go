package models

import (
	"encoding/json"
	"testing"
)

func TestParseTrumpType(t *testing.T) {
	tests := []struct {
		in      string
		want    TrumpType
		wantErr bool
	}{
		{in: "alm", want: TrumpAlm},
		{in: "vip", want: TrumpVip},
		{in: "gode", want: TrumpGode},
		{in: "halve", want: TrumpHalve},
		{in: "sans", want: TrumpSans},
		{in: "", wantErr: true},
		{in: "Sans", wantErr: true},
		{in: "spar", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTrumpType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTrumpType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTrumpType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSpecialBid(t *testing.T) {
	tests := []struct {
		in      string
		want    SpecialBid
		wantErr bool
	}{
		{in: "", want: SpecialNone},
		{in: "solo-nolo", want: SpecialSoloNolo},
		{in: "open-nolo", want: SpecialOpenNolo},
		{in: "super-bordlaegger", want: SpecialSuperBordlaegger},
		{in: "grand", wantErr: true},
		{in: "Sol", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSpecialBid(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSpecialBid(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSpecialBid(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshalTextRejectsUnknown(t *testing.T) {
	if _, err := TrumpType("").MarshalText(); err == nil {
		t.Error("expected error marshaling empty trump type")
	}
	if _, err := TrumpType("spar").MarshalText(); err == nil {
		t.Error("expected error marshaling unknown trump type")
	}
	if _, err := SpecialBid("grand").MarshalText(); err == nil {
		t.Error("expected error marshaling unknown special bid")
	}
	if _, err := json.Marshal(Round{ID: "r", TrumpType: "spar"}); err == nil {
		t.Error("expected json.Marshal to fail for a round with an unknown trump type")
	}

	data, err := json.Marshal(Round{ID: "r", TrumpType: TrumpVip})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var back Round
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if back.TrumpType != TrumpVip || back.SpecialBid != SpecialNone {
		t.Errorf("decoded %+v", back)
	}

	if err := json.Unmarshal([]byte(`{"trumpType": "spar"}`), &back); err == nil {
		t.Error("expected json.Unmarshal to reject an unknown trump type")
	}
}

func TestAppStateCloneIsDeep(t *testing.T) {
	state := AppState{
		Players: []Player{{ID: "a", Name: "Anna"}},
		GameNights: []GameNight{{
			ID:       "g",
			Players:  []string{"a", "b", "c", "d"},
			Rounds:   []Round{{ID: "r", Bidder: "a", Partner: "b", BidLevel: 7, TrumpType: TrumpAlm, Points: 1}},
			Scores:   map[string]int{"a": 1, "b": 1, "c": -1, "d": -1},
			IsActive: true,
		}},
		ActiveGameID: "g",
	}

	clone := state.Clone()
	clone.Players[0].Name = "Changed"
	clone.GameNights[0].Scores["a"] = 99
	clone.GameNights[0].Rounds[0].Points = 99
	clone.GameNights[0].Players[0] = "x"
	clone.GameNights[0].IsActive = false

	g := state.GameNights[0]
	if state.Players[0].Name != "Anna" {
		t.Error("Clone shares the Players slice")
	}
	if g.Scores["a"] != 1 {
		t.Error("Clone shares the Scores map")
	}
	if g.Rounds[0].Points != 1 {
		t.Error("Clone shares the Rounds slice")
	}
	if g.Players[0] != "a" {
		t.Error("Clone shares the game's Players slice")
	}
	if !g.IsActive {
		t.Error("Clone shares the GameNights slice")
	}
}

func TestCheckRound(t *testing.T) {
	game := &GameNight{ID: "g", Players: []string{"a", "b", "c", "d"}}
	valid := Round{Bidder: "a", Partner: "b", BidLevel: 8, TrumpType: TrumpVip, VipCount: 2, TricksWon: 9}

	if err := game.CheckRound(valid); err != nil {
		t.Fatalf("valid round rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Round)
	}{
		{name: "bidder not seated", mutate: func(r *Round) { r.Bidder = "x" }},
		{name: "partner not seated", mutate: func(r *Round) { r.Partner = "x" }},
		{name: "partner is bidder", mutate: func(r *Round) { r.Partner = "a" }},
		{name: "bid level low", mutate: func(r *Round) { r.BidLevel = 6 }},
		{name: "bid level high", mutate: func(r *Round) { r.BidLevel = 14 }},
		{name: "negative tricks", mutate: func(r *Round) { r.TricksWon = -1 }},
		{name: "too many tricks", mutate: func(r *Round) { r.TricksWon = 14 }},
		{name: "missing trump", mutate: func(r *Round) { r.TrumpType = "" }},
		{name: "unknown special", mutate: func(r *Round) { r.SpecialBid = "grand" }},
		{name: "vip count high", mutate: func(r *Round) { r.VipCount = 4 }},
		{name: "vip count negative", mutate: func(r *Round) { r.VipCount = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := game.CheckRound(r); err == nil {
				t.Errorf("expected %+v to be rejected", r)
			}
		})
	}
}

func TestApplyPointsAndRebuild(t *testing.T) {
	game := &GameNight{
		Players: []string{"a", "b", "c", "d"},
		Scores:  map[string]int{"a": 0, "b": 0, "c": 0, "d": 0},
	}
	solo := Round{ID: "r1", Bidder: "a", Points: 4}
	pair := Round{ID: "r2", Bidder: "b", Partner: "c", Points: -6}

	game.ApplyPoints(solo, solo.Points)
	game.ApplyPoints(pair, pair.Points)
	want := map[string]int{"a": 18, "b": -10, "c": -10, "d": 2}
	for id, score := range want {
		if game.Scores[id] != score {
			t.Errorf("score[%s] = %d, want %d", id, game.Scores[id], score)
		}
	}
	if game.ScoreSum() != 0 {
		t.Errorf("score sum = %d, want 0", game.ScoreSum())
	}

	game.Rounds = []Round{solo, pair}
	game.Scores = map[string]int{"a": 1000}
	game.RebuildScores()
	for id, score := range want {
		if game.Scores[id] != score {
			t.Errorf("rebuilt score[%s] = %d, want %d", id, game.Scores[id], score)
		}
	}
	if len(game.Scores) != len(game.Players) {
		t.Errorf("rebuilt scores have %d keys, want %d", len(game.Scores), len(game.Players))
	}

	game.ApplyPoints(pair, -pair.Points)
	game.ApplyPoints(solo, -solo.Points)
	for id, score := range game.Scores {
		if score != 0 {
			t.Errorf("score[%s] = %d after reversal, want 0", id, score)
		}
	}
}
