/*
 * Copyright (c) 2014-2017 Christian Muehlhaeuser
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *	Authors:
 *		Christian Muehlhaeuser <muesli@gmail.com>
 *		Michael Wendland <michael@michiwend.com>
 *		Bjørn Erik Pedersen <bjorn.erik.pedersen@gmail.com>
 */

package smartcrop

import "fmt"

// Config holds every tunable of the analysis. A Config is never modified by
// the analyzer; values derived during a crop live in call-scoped state.
type Config struct {
	// Width and Height describe the target box. Only their ratio matters.
	// Zero means no constraint: the smaller image dimension is used.
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Aspect float64 `json:"aspect"` // overrides Width/Height as Aspect:1 when > 0

	DetailWeight float64 `json:"detailWeight"`

	SkinColor         [3]float64 `json:"skinColor"`
	SkinBias          float64    `json:"skinBias"`
	SkinBrightnessMin float64    `json:"skinBrightnessMin"`
	SkinBrightnessMax float64    `json:"skinBrightnessMax"`
	SkinThreshold     float64    `json:"skinThreshold"`
	SkinWeight        float64    `json:"skinWeight"`

	SaturationBrightnessMin float64 `json:"saturationBrightnessMin"`
	SaturationBrightnessMax float64 `json:"saturationBrightnessMax"`
	SaturationThreshold     float64 `json:"saturationThreshold"`
	SaturationBias          float64 `json:"saturationBias"`
	SaturationWeight        float64 `json:"saturationWeight"`

	ScoreDownSample   int     `json:"scoreDownSample"`
	Step              int     `json:"step"`
	ScaleStep         float64 `json:"scaleStep"`
	MinScale          float64 `json:"minScale"`
	MaxScale          float64 `json:"maxScale"`
	EdgeRadius        float64 `json:"edgeRadius"`
	EdgeWeight        float64 `json:"edgeWeight"`
	OutsideImportance float64 `json:"outsideImportance"`
	BoostWeight       float64 `json:"boostWeight"`
	RuleOfThirds      bool    `json:"ruleOfThirds"`

	Prescale bool `json:"prescale"`
	Debug    bool `json:"debug"`

	// Workers is the number of goroutines scoring candidates. Values below 2
	// score on the calling goroutine.
	Workers int `json:"workers"`
}

var DefaultConfig = Config{
	DetailWeight:            0.2,
	SkinColor:               [3]float64{0.78, 0.57, 0.44},
	SkinBias:                0.01,
	SkinBrightnessMin:       0.2,
	SkinBrightnessMax:       1.0,
	SkinThreshold:           0.8,
	SkinWeight:              1.8,
	SaturationBrightnessMin: 0.05,
	SaturationBrightnessMax: 0.9,
	SaturationThreshold:     0.4,
	SaturationBias:          0.2,
	SaturationWeight:        0.1,
	ScoreDownSample:         8, // step * minscale rounded down to the next power of two should be good
	Step:                    8,
	ScaleStep:               0.1,
	MinScale:                1.0,
	MaxScale:                1.0,
	EdgeRadius:              0.4,
	EdgeWeight:              -20.0,
	OutsideImportance:       -0.5,
	BoostWeight:             100.0,
	RuleOfThirds:            true,
	Prescale:                true,
	Debug:                   false,
	Workers:                 1,
}

// ZoomConfig searches crops smaller than the fitted target box and weighs
// skin and saturation much higher, which tends to zoom in on the subject.
var ZoomConfig = Config{
	DetailWeight:            5.2,
	SkinColor:               [3]float64{0.78, 0.57, 0.44},
	SkinBias:                0.01,
	SkinBrightnessMin:       0.2,
	SkinBrightnessMax:       1.0,
	SkinThreshold:           0.8,
	SkinWeight:              5.8,
	SaturationBrightnessMin: 0.05,
	SaturationBrightnessMax: 0.9,
	SaturationThreshold:     0.4,
	SaturationBias:          0.2,
	SaturationWeight:        5.5,
	ScoreDownSample:         8,
	Step:                    8,
	ScaleStep:               0.1,
	MinScale:                0.1,
	MaxScale:                0.9,
	EdgeRadius:              0.4,
	EdgeWeight:              -20.0,
	OutsideImportance:       -0.5,
	BoostWeight:             100.0,
	RuleOfThirds:            false,
	Prescale:                true,
	Workers:                 1,
}

// NewConfig returns DefaultConfig with the given target box.
func NewConfig(width, height int) Config {
	c := DefaultConfig
	c.Width = width
	c.Height = height
	return c
}

// Validate checks the fields the search depends on.
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: negative target size %dx%d", ErrInvalidConfiguration, c.Width, c.Height)
	case c.Aspect < 0:
		return fmt.Errorf("%w: negative aspect %f", ErrInvalidConfiguration, c.Aspect)
	case c.ScoreDownSample <= 0:
		return fmt.Errorf("%w: score down sample must be positive, got %d", ErrInvalidConfiguration, c.ScoreDownSample)
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfiguration, c.Step)
	case c.ScaleStep <= 0:
		return fmt.Errorf("%w: scale step must be positive, got %f", ErrInvalidConfiguration, c.ScaleStep)
	case c.MaxScale <= 0:
		return fmt.Errorf("%w: max scale must be positive, got %f", ErrInvalidConfiguration, c.MaxScale)
	case c.MinScale <= 0:
		return fmt.Errorf("%w: min scale must be positive, got %f", ErrInvalidConfiguration, c.MinScale)
	case c.MinScale > c.MaxScale:
		return fmt.Errorf("%w: min scale %f exceeds max scale %f", ErrInvalidConfiguration, c.MinScale, c.MaxScale)
	case c.SkinThreshold >= 1:
		return fmt.Errorf("%w: skin threshold must be below 1, got %f", ErrInvalidConfiguration, c.SkinThreshold)
	case c.SaturationThreshold >= 1:
		return fmt.Errorf("%w: saturation threshold must be below 1, got %f", ErrInvalidConfiguration, c.SaturationThreshold)
	}
	return nil
}
