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
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/third-light/smartcrop/v2"
)

var presets = map[string]smartcrop.Config{
	"default": smartcrop.DefaultConfig,
	"zoom":    smartcrop.ZoomConfig,
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func presetConfig(name string) (smartcrop.Config, error) {
	c, ok := presets[name]
	if !ok {
		return smartcrop.Config{}, fmt.Errorf("unknown preset %q, want one of %v", name, presetNames())
	}
	return c, nil
}

// loadConfig overlays the JSON document at path onto base. Fields missing
// from the document keep their base values.
func loadConfig(path string, base smartcrop.Config) (smartcrop.Config, error) {
	if path == "" {
		return base, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer f.Close()

	c := base
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
