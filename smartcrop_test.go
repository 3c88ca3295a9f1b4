package smartcrop

import (
	"errors"
	"image"
	"math"
	"reflect"
	"testing"
)

func mustCrop(t *testing.T, a Analyzer, img image.Image, boosts ...BoostArea) *Result {
	t.Helper()
	res, err := a.Crop(FromImage(img), boosts...)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	return res
}

func TestCrop_GrayImageAvoidsBorders(t *testing.T) {
	img := createSolidImage(200, 100, gray)
	res := mustCrop(t, newTestAnalyzer(NewConfig(100, 100)), img)

	a := res.Area
	if a.Width != 100 || a.Height != 100 {
		t.Fatalf("dimensions: got %dx%d, want 100x100", a.Width, a.Height)
	}
	if a.Y != 0 || a.X%8 != 0 {
		t.Errorf("crop %v is not on the candidate grid", a)
	}
	// the image border is the only detail; crops touching it lose
	if a.X == 0 || a.Right() >= 200 {
		t.Errorf("crop %v should not touch the left or right border", a)
	}
	if res.DebugInfo != nil {
		t.Error("DebugInfo should be nil unless Config.Debug is set")
	}
}

func TestCrop_FindsSalientRegion(t *testing.T) {
	blob := imageRect(260, 20, 320, 80)
	img := createBlobImage(400, 100, blob)
	res := mustCrop(t, newTestAnalyzer(NewConfig(100, 100)), img)

	if !res.Area.Contains(Rect(blob.Min.X, blob.Min.Y, blob.Dx(), blob.Dy())) {
		t.Errorf("crop %v should contain the blob %v", res.Area, blob)
	}
}

func TestCrop_TieBreakKeepsFirstMaximum(t *testing.T) {
	c := NewConfig(100, 100)
	c.Debug = true
	res := mustCrop(t, newTestAnalyzer(c), createSolidImage(200, 100, gray))

	best := math.Inf(-1)
	var first Rectangle
	for _, crop := range res.DebugInfo.Crops {
		if crop.Score.Total > best {
			best = crop.Score.Total
			first = crop.Area
		}
	}
	if res.Area != first {
		t.Errorf("winner: got %v, want first maximum %v", res.Area, first)
	}
}

func TestCrop_ExactTieKeepsFirstCandidate(t *testing.T) {
	for _, workers := range []int{1, 4} {
		c := NewConfig(100, 100)
		c.Debug = true
		c.Workers = workers
		c.DetailWeight, c.SkinWeight, c.SaturationWeight, c.BoostWeight = 0, 0, 0, 0

		img := createBlobImage(200, 100, imageRect(120, 20, 160, 60))
		res := mustCrop(t, newTestAnalyzer(c), img)

		crops := res.DebugInfo.Crops
		for _, crop := range crops {
			if crop.Score.Total != 0 {
				t.Fatalf("workers %d: candidate %v total %g, want 0", workers, crop.Area, crop.Score.Total)
			}
		}
		if res.Area != crops[0].Area || res.Area != Rect(0, 0, 100, 100) {
			t.Errorf("workers %d: got %v, want first candidate %v", workers, res.Area, crops[0].Area)
		}
	}
}

func TestCrop_Deterministic(t *testing.T) {
	img := createBlobImage(300, 200, imageRect(40, 50, 90, 120))
	c := NewConfig(3, 2)
	c.Debug = true
	c.MinScale = 0.7
	a := newTestAnalyzer(c)

	first := mustCrop(t, a, img, BoostArea{Area: Rect(200, 20, 40, 40), Weight: 0.5})
	second := mustCrop(t, a, img, BoostArea{Area: Rect(200, 20, 40, 40), Weight: 0.5})
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical calls returned different results")
	}

	c.Workers = 4
	parallel := mustCrop(t, newTestAnalyzer(c), img, BoostArea{Area: Rect(200, 20, 40, 40), Weight: 0.5})
	if parallel.Area != first.Area || !reflect.DeepEqual(parallel.DebugInfo.Crops, first.DebugInfo.Crops) {
		t.Error("parallel scoring changed the result")
	}
}

func TestCrop_Containment(t *testing.T) {
	wide := DefaultConfig
	wide.Aspect = 2.35

	tests := []struct {
		name          string
		width, height int
		config        Config
	}{
		{"prescaled landscape", 1000, 300, NewConfig(3, 2)},
		{"prescaled odd sizes", 333, 517, NewConfig(16, 9)},
		{"aspect", 640, 480, wide},
		{"no target", 90, 70, DefaultConfig},
		{"zoom", 700, 500, ZoomConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createBlobImage(tt.width, tt.height, imageRect(tt.width/3, tt.height/4, tt.width/2, tt.height/2))
			res := mustCrop(t, newTestAnalyzer(tt.config), img)
			a := res.Area
			if a.X < 0 || a.Y < 0 || a.Right() > tt.width || a.Bottom() > tt.height {
				t.Errorf("crop %v is outside the %dx%d image", a, tt.width, tt.height)
			}
			if a.Empty() {
				t.Errorf("crop %v is empty", a)
			}
		})
	}
}

func TestCrop_Aspect(t *testing.T) {
	c := DefaultConfig
	c.Aspect = 2
	c.Width, c.Height = 1, 1 // ignored
	res := mustCrop(t, newTestAnalyzer(c), createSolidImage(200, 200, gray))
	if res.Area.Width != 200 || res.Area.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 200x100", res.Area.Width, res.Area.Height)
	}
}

func TestCrop_NoTarget(t *testing.T) {
	res := mustCrop(t, newTestAnalyzer(DefaultConfig), createSolidImage(120, 64, gray))
	if res.Area.Width != 64 || res.Area.Height != 64 {
		t.Errorf("dimensions: got %dx%d, want 64x64", res.Area.Width, res.Area.Height)
	}
}

func TestCrop_PrescaleIsApproximatelyInvariant(t *testing.T) {
	blob := imageRect(380, 150, 460, 250)
	img := createBlobImage(600, 400, blob)

	c := NewConfig(100, 100)
	c.Debug = true
	prescaled := mustCrop(t, newTestAnalyzer(c), img)
	if prescaled.DebugInfo.Prescale >= 1 {
		t.Fatalf("expected prescaling, got factor %f", prescaled.DebugInfo.Prescale)
	}
	if b := prescaled.DebugInfo.Output.Bounds(); b.Dx() != 384 || b.Dy() != 256 {
		t.Errorf("analysis resolution: got %v, want 384x256", b)
	}

	c.Prescale = false
	full := mustCrop(t, newTestAnalyzer(c), img)
	if full.DebugInfo.Prescale != 1 {
		t.Fatalf("unexpected prescale factor %f", full.DebugInfo.Prescale)
	}

	// sizes agree up to rounding, positions up to two steps of the coarser grid
	p, f := prescaled.Area, full.Area
	tolerance := int(math.Ceil(2 * float64(c.Step) / prescaled.DebugInfo.Prescale))
	if abs(p.Width-f.Width) > 2 || abs(p.Height-f.Height) > 2 {
		t.Errorf("sizes differ: prescaled %v, full %v", p, f)
	}
	if abs(p.X-f.X) > tolerance || abs(p.Y-f.Y) > tolerance {
		t.Errorf("positions differ by more than %d: prescaled %v, full %v", tolerance, p, f)
	}
	want := Rect(blob.Min.X, blob.Min.Y, blob.Dx(), blob.Dy())
	if !p.Contains(want) || !f.Contains(want) {
		t.Errorf("both crops should contain the blob: prescaled %v, full %v", p, f)
	}
}

func TestCrop_PrescaleKeepsCallerBoosts(t *testing.T) {
	boosts := []BoostArea{{Area: Rect(400, 100, 100, 100), Weight: 1}}
	orig := append([]BoostArea(nil), boosts...)

	c := NewConfig(1, 1)
	mustCrop(t, newTestAnalyzer(c), createSolidImage(800, 600, gray), boosts...)

	if !reflect.DeepEqual(boosts, orig) {
		t.Errorf("boost areas were modified: got %v, want %v", boosts, orig)
	}
}

func TestCrop_BoostDominance(t *testing.T) {
	c := NewConfig(100, 100)
	c.DetailWeight, c.SkinWeight, c.SaturationWeight = 0, 0, 0
	c.Debug = true

	boost := BoostArea{Area: Rect(260, 0, 80, 100), Weight: 1}
	res := mustCrop(t, newTestAnalyzer(c), createSolidImage(400, 100, gray), boost)

	if !res.Area.Contains(boost.Area) {
		t.Errorf("crop %v should contain the boost area %v", res.Area, boost.Area)
	}

	minContained, maxDisjoint := math.Inf(1), math.Inf(-1)
	var contained, disjoint int
	for _, crop := range res.DebugInfo.Crops {
		switch {
		case crop.Area.Contains(boost.Area):
			contained++
			minContained = math.Min(minContained, crop.Score.Total)
		case !crop.Area.Intersects(boost.Area):
			disjoint++
			maxDisjoint = math.Max(maxDisjoint, crop.Score.Total)
		default:
			if crop.Score.Penalty != 1 {
				t.Errorf("cut crop %v: penalty %f, want 1", crop.Area, crop.Score.Penalty)
			}
		}
	}
	if contained == 0 || disjoint == 0 {
		t.Fatalf("need both kinds of candidates, got %d contained and %d disjoint", contained, disjoint)
	}
	if minContained <= maxDisjoint {
		t.Errorf("worst containing crop %f should beat best disjoint crop %f", minContained, maxDisjoint)
	}
}

func TestCrop_ChannelOrder(t *testing.T) {
	img := createBlobImage(160, 120, imageRect(100, 20, 150, 70))
	c := NewConfig(1, 1)
	c.Prescale = false
	c.Debug = true

	rgba := mustCrop(t, newTestAnalyzer(c), img)

	pix := make([]uint8, len(img.Pix))
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = img.Pix[i+2], img.Pix[i+1], img.Pix[i], img.Pix[i+3]
	}
	buf, err := NewBuffer(pix, 160, 120, img.Stride, BGRA)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	bgra, err := newTestAnalyzer(c).Crop(buf)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}

	if rgba.Area != bgra.Area {
		t.Errorf("BGRA result %v differs from RGBA result %v", bgra.Area, rgba.Area)
	}
	if !reflect.DeepEqual(rgba.DebugInfo.Crops, bgra.DebugInfo.Crops) {
		t.Error("BGRA scores differ from RGBA scores")
	}
}

func TestCrop_Errors(t *testing.T) {
	small := createSolidImage(10, 10, gray)

	t.Run("nil buffer", func(t *testing.T) {
		_, err := newTestAnalyzer(DefaultConfig).Crop(nil)
		if !errors.Is(err, ErrInvalidImage) {
			t.Errorf("got %v, want ErrInvalidImage", err)
		}
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := newTestAnalyzer(DefaultConfig).Crop(&Buffer{})
		if !errors.Is(err, ErrInvalidImage) {
			t.Errorf("got %v, want ErrInvalidImage", err)
		}
	})

	t.Run("invalid configuration", func(t *testing.T) {
		c := DefaultConfig
		c.ScoreDownSample = 0
		_, err := newTestAnalyzer(c).Crop(FromImage(small))
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("got %v, want ErrInvalidConfiguration", err)
		}
	})

	t.Run("non-positive min scale", func(t *testing.T) {
		c := DefaultConfig
		c.MinScale = -0.5
		_, err := newTestAnalyzer(c).Crop(FromImage(createSolidImage(120, 64, gray)))
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("got %v, want ErrInvalidConfiguration", err)
		}
	})

	t.Run("aspect rounds width to zero", func(t *testing.T) {
		c := DefaultConfig
		c.Aspect = 0.001
		res, err := newTestAnalyzer(c).Crop(FromImage(createSolidImage(120, 64, gray)))
		if !errors.Is(err, ErrNoCandidate) {
			t.Errorf("got %v (result %+v), want ErrNoCandidate", err, res)
		}
	})

	t.Run("target larger than image at max scale 1", func(t *testing.T) {
		// the target box is fitted into the image first, so this still works
		res, err := newTestAnalyzer(NewConfig(1000, 1000)).Crop(FromImage(small))
		if err != nil {
			t.Fatalf("Crop: %v", err)
		}
		if res.Area != Rect(0, 0, 10, 10) {
			t.Errorf("got %v, want the whole image", res.Area)
		}
	})

	t.Run("no candidate", func(t *testing.T) {
		c := NewConfig(1000, 1000)
		c.MinScale, c.MaxScale = 1.5, 2.0
		_, err := newTestAnalyzer(c).Crop(FromImage(small))
		if !errors.Is(err, ErrNoCandidate) {
			t.Errorf("got %v, want ErrNoCandidate", err)
		}
	})
}

func TestFindBestCrop(t *testing.T) {
	a := newTestAnalyzer(DefaultConfig)

	if _, err := a.FindBestCrop(createSolidImage(10, 10, gray), 0, 0); err != ErrInvalidDimensions {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}

	img := createBlobImage(400, 100, imageRect(260, 20, 320, 80))
	want := mustCrop(t, newTestAnalyzer(NewConfig(100, 100)), img).Area.Bounds()
	got, err := a.FindBestCrop(img, 100, 100)
	if err != nil {
		t.Fatalf("FindBestCrop: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// results of sub images are in the parent's coordinate space
	parent := createSolidImage(500, 150, gray)
	for y := 0; y < 100; y++ {
		copy(parent.Pix[parent.PixOffset(50, y+50):], img.Pix[img.PixOffset(0, y):img.PixOffset(0, y)+400*4])
	}
	sub := parent.SubImage(image.Rect(50, 50, 450, 150))
	got, err = a.FindBestCrop(sub, 100, 100)
	if err != nil {
		t.Fatalf("FindBestCrop: %v", err)
	}
	if got != want.Add(image.Pt(50, 50)) {
		t.Errorf("sub image: got %v, want %v", got, want.Add(image.Pt(50, 50)))
	}
}

func TestFindAllCrops(t *testing.T) {
	a := newTestAnalyzer(DefaultConfig)
	crops, err := a.FindAllCrops(createSolidImage(200, 100, gray), 100, 100)
	if err != nil {
		t.Fatalf("FindAllCrops: %v", err)
	}
	if len(crops) != 13 {
		t.Errorf("candidates: got %d, want 13", len(crops))
	}
	for _, c := range crops {
		if c.Area.Width != 100 || c.Area.Height != 100 {
			t.Errorf("candidate %v should be 100x100", c)
		}
	}
}
