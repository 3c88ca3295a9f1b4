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

// Command smartcrop finds the most interesting crop of an image and writes
// it to a file.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ogier/pflag"
	"github.com/third-light/smartcrop/v2"
	"github.com/third-light/smartcrop/v2/resizer"
)

type options struct {
	inPath, outPath string
	width, height   int
	aspect          float64
	preset          string
	configPath      string
	resizer         string
	workers         int
	boosts          boostFlag
	debugPath       string
	resize          bool
	quality         int
	verbose         bool
}

func parseFlags(args []string) (*options, error) {
	var o options
	fs := pflag.NewFlagSet("smartcrop", pflag.ContinueOnError)
	fs.StringVarP(&o.inPath, "input-image", "i", "", "input image")
	fs.StringVarP(&o.outPath, "output-image", "o", "", "output image")
	fs.IntVarP(&o.width, "width", "w", 0, "crop width")
	fs.IntVarP(&o.height, "height", "h", 0, "crop height")
	fs.Float64Var(&o.aspect, "aspect", 0, "crop aspect ratio, overrides width and height")
	fs.StringVar(&o.preset, "preset", "default", fmt.Sprintf("configuration preset %v", presetNames()))
	fs.StringVar(&o.configPath, "config", "", "JSON file overriding the preset")
	fs.StringVar(&o.resizer, "resizer", "nfnt", fmt.Sprintf("resampling backend %v", resizer.Names()))
	fs.IntVar(&o.workers, "workers", 0, "goroutines scoring candidates")
	fs.Var(&o.boosts, "boost", "boost area x,y,w,h[,weight], repeatable")
	fs.StringVar(&o.debugPath, "debug-output", "", "write the annotated salience map as PNG")
	fs.BoolVar(&o.resize, "resize", false, "resize the crop to exactly width x height")
	fs.IntVar(&o.quality, "quality", 85, "jpeg and webp quality")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log analysis details to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.inPath == "" || o.outPath == "" {
		return nil, errors.New("both --input-image and --output-image are required")
	}
	if o.resize && (o.width <= 0 || o.height <= 0) {
		return nil, errors.New("--resize needs --width and --height")
	}

	return &o, nil
}

// config resolves the preset, the config file and the flags, in that order.
func (o *options) config() (smartcrop.Config, error) {
	c, err := presetConfig(o.preset)
	if err != nil {
		return c, err
	}
	if c, err = loadConfig(o.configPath, c); err != nil {
		return c, err
	}

	if o.width > 0 || o.height > 0 {
		c.Width, c.Height = o.width, o.height
	}
	if o.aspect > 0 {
		c.Aspect = o.aspect
	}
	if o.workers > 0 {
		c.Workers = o.workers
	}
	if o.debugPath != "" {
		c.Debug = true
	}

	return c, c.Validate()
}

func run(o *options) error {
	c, err := o.config()
	if err != nil {
		return err
	}
	r, err := resizer.ByName(o.resizer)
	if err != nil {
		return err
	}

	img, format, err := decodeFile(o.inPath)
	if err != nil {
		return err
	}

	logger := smartcrop.Logger{DebugMode: o.verbose}
	if o.verbose {
		logger.Log = log.New(os.Stderr, "smartcrop: ", log.Lshortfile)
	}
	analyzer := smartcrop.NewAnalyzerWithLogger(c, r, logger)

	res, err := analyzer.Crop(smartcrop.FromImage(img), o.boosts...)
	if err != nil {
		return err
	}
	fmt.Println(res.Area)

	var cropped image.Image = imaging.Crop(img, res.Area.Bounds().Add(img.Bounds().Min))
	if o.resize {
		cropped = r.Resize(cropped, uint(o.width), uint(o.height))
	}
	if err := encodeFile(o.outPath, cropped, formatFor(o.outPath, format), o.quality); err != nil {
		return err
	}

	if res.DebugInfo != nil {
		if o.verbose {
			s := res.DebugInfo.Summary()
			logger.Log.Printf("%d candidates, best %.4f, mean %.4f, stddev %.4f\n", s.Candidates, s.Best, s.Mean, s.StdDev)
		}
		if o.debugPath != "" {
			return writeDebug(o.debugPath, res)
		}
	}
	return nil
}

func writeDebug(path string, res *smartcrop.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, res.DebugInfo.Visualize(res.Area)); err != nil {
		f.Close()
		return fmt.Errorf("writing debug output %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("smartcrop: %s", err)
	}
	if err := run(o); err != nil {
		log.Fatalf("smartcrop: %s", err)
	}
}
