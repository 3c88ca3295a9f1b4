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

/*
Package smartcrop implements a content aware image cropping library based on
Jonas Wagner's smartcrop.js https://github.com/jwagner/smartcrop.js

The analyzer scores candidate rectangles by edge detail, skin tone,
saturation and caller supplied boost areas and returns the best one. It works
on a raw Buffer and never decodes, encodes or copies image pixels into a
cropped result; see the resizer package and cmd/smartcrop for that.
*/
package smartcrop

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/third-light/smartcrop/v2/options"
	"github.com/third-light/smartcrop/v2/resizer"
)

var (
	// ErrInvalidDimensions gets returned when the supplied dimensions are invalid
	ErrInvalidDimensions = errors.New("Expect either a height or width")
	// ErrInvalidImage gets returned for empty buffers and unsupported layouts
	ErrInvalidImage = errors.New("invalid image")
	// ErrInvalidConfiguration gets returned when Config.Validate fails
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNoCandidate gets returned when no crop fits into the image
	ErrNoCandidate = errors.New("no crop candidate")
)

// Analyzer interface analyzes its struct and returns the best possible crop.
type Analyzer interface {
	// Crop finds the best crop of buf for the analyzer's Config.
	Crop(buf *Buffer, boostAreas ...BoostArea) (*Result, error)
	// FindBestCrop finds the best crop of img for the given target box.
	FindBestCrop(img image.Image, width, height int) (image.Rectangle, error)
	// FindAllCrops returns every scored candidate of img for the given target box.
	FindAllCrops(img image.Image, width, height int) ([]Crop, error)
}

// Score contains values that classify matches
type Score struct {
	Detail     float64
	Skin       float64
	Saturation float64
	Boost      float64
	Penalty    float64
	Total      float64
}

// Crop contains results
type Crop struct {
	Area  Rectangle
	Score Score
}

func (c Crop) String() string {
	return fmt.Sprintf("%v (%f)", c.Area, c.Score.Total)
}

// Result is the outcome of a single Crop call.
type Result struct {
	Area Rectangle
	// DebugInfo is only set when Config.Debug is enabled.
	DebugInfo *DebugInfo
}

// Logger contains a logger.
type Logger struct {
	DebugMode bool
	Log       *log.Logger
}

type smartcropAnalyzer struct {
	logger Logger
	options.Resizer
	config Config
}

// NewAnalyzer returns a new Analyzer using the given Resizer. A nil Resizer
// selects resizer.NewNfnt.
func NewAnalyzer(c Config, resizer options.Resizer) Analyzer {
	logger := Logger{
		DebugMode: false,
	}

	return NewAnalyzerWithLogger(c, resizer, logger)
}

// NewAnalyzerWithLogger returns a new analyzer with the given Resizer and Logger.
func NewAnalyzerWithLogger(c Config, r options.Resizer, logger Logger) Analyzer {
	if logger.Log == nil {
		logger.Log = log.New(io.Discard, "", 0)
	}
	if r == nil {
		r = resizer.NewNfnt()
	}
	return &smartcropAnalyzer{Resizer: r, logger: logger, config: c}
}

func (sca *smartcropAnalyzer) Crop(buf *Buffer, boostAreas ...BoostArea) (*Result, error) {
	return sca.crop(buf, boostAreas)
}

func (sca *smartcropAnalyzer) FindBestCrop(img image.Image, width, height int) (image.Rectangle, error) {
	if width == 0 && height == 0 {
		return image.Rectangle{}, ErrInvalidDimensions
	}

	a := sca.withTarget(width, height, false)
	res, err := a.crop(FromImage(img), nil)
	if err != nil {
		return image.Rectangle{}, err
	}

	return res.Area.Bounds().Add(img.Bounds().Min), nil
}

func (sca *smartcropAnalyzer) FindAllCrops(img image.Image, width, height int) ([]Crop, error) {
	if width == 0 && height == 0 {
		return []Crop{}, ErrInvalidDimensions
	}

	a := sca.withTarget(width, height, true)
	res, err := a.crop(FromImage(img), nil)
	if err != nil {
		return []Crop{}, err
	}

	origin := img.Bounds().Min
	crops := res.DebugInfo.Crops
	for i := range crops {
		crops[i].Area.X += origin.X
		crops[i].Area.Y += origin.Y
	}
	return crops, nil
}

func (sca smartcropAnalyzer) withTarget(width, height int, debug bool) smartcropAnalyzer {
	sca.config.Width = width
	sca.config.Height = height
	sca.config.Aspect = 0
	sca.config.Debug = debug
	return sca
}

func (sca smartcropAnalyzer) crop(buf *Buffer, boostAreas []BoostArea) (*Result, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidImage)
	}
	if err := buf.validate(); err != nil {
		return nil, err
	}
	if err := sca.config.Validate(); err != nil {
		return nil, err
	}

	sca.logger.Log.Printf("original resolution: %dx%d\n", buf.Width, buf.Height)

	img, p, err := sca.prepare(buf, boostAreas)
	if err != nil {
		return nil, err
	}

	cs, o, err := sca.analyse(img, p)
	if err != nil {
		return nil, err
	}

	top := findTopCrop(cs)
	if top < 0 {
		top = 0
	}
	res := &Result{Area: cs[top].Area}
	sca.logger.Log.Printf("top crop: %v\n", cs[top])

	if p.prescale != 1.0 {
		res.Area = res.Area.unscale(p.prescale)
		if sca.config.Debug {
			for i := range cs {
				cs[i].Area = cs[i].Area.unscale(p.prescale).clamp(buf.Width, buf.Height)
			}
		}
	}
	res.Area = res.Area.clamp(buf.Width, buf.Height)

	if sca.config.Debug {
		res.DebugInfo = &DebugInfo{
			Output:   o.nrgba(),
			Config:   sca.config,
			Crops:    cs,
			Prescale: p.prescale,
		}
	}

	return res, nil
}

// analyse builds the salience map of img, scores every candidate against its
// downsampled version and returns the scored candidates with the full map.
func (sca smartcropAnalyzer) analyse(img *Buffer, p params) ([]Crop, *Buffer, error) {
	o := newAnalysisBuffer(img.Width, img.Height)

	now := time.Now()
	sca.edgeDetect(img, o)
	sca.logger.Log.Println("Time elapsed edge:", time.Since(now))

	now = time.Now()
	sca.skinDetect(img, o)
	sca.logger.Log.Println("Time elapsed skin:", time.Since(now))

	now = time.Now()
	sca.saturationDetect(img, o)
	sca.logger.Log.Println("Time elapsed sat:", time.Since(now))

	now = time.Now()
	applyBoosts(o, p.boosts)
	sca.logger.Log.Println("Time elapsed boost:", time.Since(now), len(p.boosts))

	now = time.Now()
	scoreOutput := downSample(o, sca.config.ScoreDownSample)
	sca.logger.Log.Println("Time elapsed downsample:", time.Since(now))

	now = time.Now()
	cs := sca.crops(img.Width, img.Height, p)
	sca.logger.Log.Println("Time elapsed crops:", time.Since(now), len(cs))
	if len(cs) == 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d target at scale %f does not fit into %dx%d",
			ErrNoCandidate, p.cropWidth.or(0), p.cropHeight.or(0), p.minScale, img.Width, img.Height)
	}

	now = time.Now()
	sca.scoreCrops(scoreOutput, cs, p.boosts)
	sca.logger.Log.Println("Time elapsed score:", time.Since(now))

	if sca.logger.DebugMode {
		for _, c := range cs {
			sca.logger.Log.Printf("candidate %v: %+v\n", c.Area, c.Score)
		}
	}

	return cs, o, nil
}
