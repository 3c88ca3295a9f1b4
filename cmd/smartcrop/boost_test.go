package main

import (
	"testing"

	"github.com/third-light/smartcrop/v2"
)

func TestParseBoost(t *testing.T) {
	tests := []struct {
		in      string
		want    smartcrop.BoostArea
		wantErr bool
	}{
		{in: "1,2,3,4,0.5", want: smartcrop.BoostArea{Area: smartcrop.Rect(1, 2, 3, 4), Weight: 0.5}},
		{in: "10, 20, 30, 40", want: smartcrop.BoostArea{Area: smartcrop.Rect(10, 20, 30, 40), Weight: 1}},
		{in: "-5,0,10,10,2", want: smartcrop.BoostArea{Area: smartcrop.Rect(-5, 0, 10, 10), Weight: 2}},
		{in: "1,2,3", wantErr: true},
		{in: "1,2,3,4,5,6", wantErr: true},
		{in: "a,2,3,4", wantErr: true},
		{in: "1,2,3,4,heavy", wantErr: true},
		{in: "1,2,0,4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBoost(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoostFlagRepeats(t *testing.T) {
	var b boostFlag
	for _, s := range []string{"0,0,10,10", "5,5,20,20,0.25"} {
		if err := b.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	if len(b) != 2 {
		t.Fatalf("got %d areas, want 2", len(b))
	}
	if got, want := b.String(), "0,0,10,10,1 5,5,20,20,0.25"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := b.Set("nope"); err == nil {
		t.Error("expected an error")
	}
	if len(b) != 2 {
		t.Errorf("failed Set changed the flag: %v", b)
	}
}
