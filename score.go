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

import (
	"math"
	"sync"
)

// thirds peaks at 1 for v = 1/3 and falls to 0 within 1/16 on either side.
func thirds(x float64) float64 {
	x = (math.Mod(x-(1.0/3.0)+1.0, 2.0)*0.5 - 0.5) * 16.0
	return math.Max(1.0-x*x, 0.0)
}

func (sca smartcropAnalyzer) importance(crop Rectangle, x, y int) float64 {
	if crop.X > x || x >= crop.Right() || crop.Y > y || y >= crop.Bottom() {
		return sca.config.OutsideImportance
	}

	xf := float64(x-crop.X) / float64(crop.Width)
	yf := float64(y-crop.Y) / float64(crop.Height)

	px := math.Abs(0.5-xf) * 2.0
	py := math.Abs(0.5-yf) * 2.0

	// distance from edge
	dx := math.Max(px-1.0+sca.config.EdgeRadius, 0.0)
	dy := math.Max(py-1.0+sca.config.EdgeRadius, 0.0)
	d := (dx*dx + dy*dy) * sca.config.EdgeWeight

	s := 1.41 - math.Sqrt(px*px+py*py)
	if sca.config.RuleOfThirds {
		s += (math.Max(0.0, s+d+0.5) * 1.2) * (thirds(px) + thirds(py))
	}

	return s + d
}

// score evaluates crop against the downsampled buffer. Each output pixel is
// sampled at its position in analysis coordinates.
func (sca smartcropAnalyzer) score(output *Buffer, crop Rectangle, boostAreas []BoostArea) Score {
	factor := sca.config.ScoreDownSample
	score := Score{}

	for y := 0; y < output.Height; y++ {
		for x := 0; x < output.Width; x++ {
			p := output.Pix[output.offset(x, y):]

			imp := sca.importance(crop, x*factor, y*factor)
			det := float64(p[detailChannel]) / 255.0

			score.Detail += det * imp
			score.Skin += float64(p[skinChannel]) / 255.0 * (det + sca.config.SkinBias) * imp
			score.Saturation += float64(p[saturationChannel]) / 255.0 * (det + sca.config.SaturationBias) * imp
			score.Boost += float64(p[boostChannel]) / 255.0 * imp
		}
	}

	if len(boostAreas) > 0 {
		for _, boost := range boostAreas {
			if crop.Contains(boost.Area) {
				continue
			}
			if boost.Area.Intersects(crop) {
				score.Penalty += boost.Weight
			}
		}
		score.Penalty /= float64(len(boostAreas))
	}

	area := float64(crop.Width) * float64(crop.Height)
	if area <= 0 {
		return score
	}

	score.Total = score.Detail*sca.config.DetailWeight +
		score.Skin*sca.config.SkinWeight +
		score.Saturation*sca.config.SaturationWeight +
		score.Boost*sca.config.BoostWeight
	score.Total = score.Total / area
	score.Total -= score.Total * score.Penalty

	return score
}

// scoreCrops fills in the Score of every crop. With more than one worker the
// crops are split into contiguous chunks; every goroutine writes only its own
// indices so the result equals sequential scoring.
func (sca smartcropAnalyzer) scoreCrops(output *Buffer, cs []Crop, boostAreas []BoostArea) {
	workers := sca.config.Workers
	if workers > len(cs) {
		workers = len(cs)
	}
	if workers < 2 {
		for i := range cs {
			cs[i].Score = sca.score(output, cs[i].Area, boostAreas)
		}
		return
	}

	chunk := (len(cs) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(cs); start += chunk {
		end := start + chunk
		if end > len(cs) {
			end = len(cs)
		}
		wg.Add(1)
		go func(part []Crop) {
			defer wg.Done()
			for i := range part {
				part[i].Score = sca.score(output, part[i].Area, boostAreas)
			}
		}(cs[start:end])
	}
	wg.Wait()
}

// findTopCrop returns the index of the first crop with the highest total.
func findTopCrop(cs []Crop) int {
	top := -1
	topScore := math.Inf(-1)
	for i, crop := range cs {
		if crop.Score.Total > topScore {
			top = i
			topScore = crop.Score.Total
		}
	}
	return top
}
