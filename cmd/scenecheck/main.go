package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kong"
	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-acoustic-scene/scene"
	"github.com/jdginn/go-acoustic-scene/scene/config"
)

var CLI struct {
	Validate ValidateCmd `cmd:"" help:"Validate a scene config and print the resolved geometry"`
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"scene config to validate"`
}

func (c ValidateCmd) Run() error {
	cfg, err := config.LoadFromFile(c.Config)
	if err != nil {
		return err
	}

	roomDim := scene.RoomDimensions(cfg.Room.Dimensions)
	fmt.Printf("room: %.2f x %.2f x %.2f m\n", roomDim[0], roomDim[1], roomDim[2])

	array, err := cfg.BuildArray()
	if err != nil {
		return err
	}

	micRange, err := cfg.MicArray.Placement.Resolve("mic_array.placement", roomDim)
	if err != nil {
		return err
	}
	// Park the array at the midpoint of its own sampling range.
	array.Translate(midpoint(micRange))

	center := array.Center()
	fmt.Printf("array: %d mics, center (%.3f, %.3f, %.3f), radius %.3f m\n",
		array.NumMics(), center.X, center.Y, center.Z, array.Radius())
	printRange("array placement", micRange)

	for i, source := range cfg.Sources {
		name := source.Name
		if name == "" {
			name = fmt.Sprintf("source %d", i)
		}
		srcRange, err := source.Placement.Resolve(fmt.Sprintf("sources.%d.placement", i), roomDim)
		if err != nil {
			return err
		}
		printRange(name+" placement", srcRange)

		dist, azim, elev := array.SphericalRelativeToArray(midpoint(srcRange))
		fmt.Printf("%s at range midpoint: distance %.3f m, azimuth %.1f deg, elevation %.1f deg\n",
			name, dist, azim, elev)
	}
	return nil
}

func midpoint(r [3][2]float64) pt.Vector {
	return scene.V((r[0][0]+r[0][1])/2, (r[1][0]+r[1][1])/2, (r[2][0]+r[2][1])/2)
}

func printRange(name string, r [3][2]float64) {
	fmt.Printf("%s: x [%.2f, %.2f], y [%.2f, %.2f], height [%.2f, %.2f]\n",
		name, r[0][0], r[0][1], r[1][0], r[1][1], r[2][0], r[2][1])
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
