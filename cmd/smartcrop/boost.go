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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/third-light/smartcrop/v2"
)

// boostFlag collects repeated --boost x,y,w,h[,weight] values.
type boostFlag []smartcrop.BoostArea

func (b *boostFlag) String() string {
	parts := make([]string, len(*b))
	for i, a := range *b {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d,%g", a.Area.X, a.Area.Y, a.Area.Width, a.Area.Height, a.Weight)
	}
	return strings.Join(parts, " ")
}

func (b *boostFlag) Set(s string) error {
	a, err := parseBoost(s)
	if err != nil {
		return err
	}
	*b = append(*b, a)
	return nil
}

func parseBoost(s string) (smartcrop.BoostArea, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 && len(fields) != 5 {
		return smartcrop.BoostArea{}, fmt.Errorf("boost %q: want x,y,w,h[,weight]", s)
	}

	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return smartcrop.BoostArea{}, fmt.Errorf("boost %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return smartcrop.BoostArea{}, fmt.Errorf("boost %q: width and height must be positive", s)
	}

	weight := 1.0
	if len(fields) == 5 {
		w, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return smartcrop.BoostArea{}, fmt.Errorf("boost %q: %w", s, err)
		}
		weight = w
	}

	return smartcrop.BoostArea{Area: smartcrop.Rect(v[0], v[1], v[2], v[3]), Weight: weight}, nil
}
