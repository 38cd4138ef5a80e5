// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"gochip8/cartridgeloader"
	"gochip8/gui"
	"gochip8/gui/sdl"
	"gochip8/gui/term"
	"gochip8/hardware"
	"gochip8/hardware/chip"
	"gochip8/logger"
	"gochip8/modalflag"
	"gochip8/paths"
	"gochip8/performance"
	"gochip8/prefs"
	"gochip8/random"
	"gochip8/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "HEADLESS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "HEADLESS":
		err = headless(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// quirksPrefs binds every chip.Quirks field to a registered prefs.Bool, so
// that quirk choices persist between runs unless overridden on the command
// line.
func quirksPrefs(disk *prefs.Disk, quirks *chip.Quirks) error {
	bind := func(key string, get func() bool, set func(bool)) error {
		b := prefs.NewBool(get())
		b.SetHookPost(func(v prefs.Value) error {
			set(v.(bool))
			return nil
		})
		return disk.Add(key, b)
	}

	if err := bind("shiftVyIntoVx", func() bool { return quirks.ShiftVyIntoVx }, func(v bool) { quirks.ShiftVyIntoVx = v }); err != nil {
		return err
	}
	if err := bind("incrementIOnMemOps", func() bool { return quirks.IncrementIOnMemOps }, func(v bool) { quirks.IncrementIOnMemOps = v }); err != nil {
		return err
	}
	if err := bind("jumpVxPlusNN", func() bool { return quirks.JumpVxPlusNN }, func(v bool) { quirks.JumpVxPlusNN = v }); err != nil {
		return err
	}
	if err := bind("noVFOnIndexOverflow", func() bool { return quirks.NoVFOnIndexOverflow }, func(v bool) { quirks.NoVFOnIndexOverflow = v }); err != nil {
		return err
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	speed := md.AddInt("speed", hardware.DefaultInstructionsPerSecond, "instructions per second")
	scale := md.AddInt("scale", sdl.DefaultScale, "integer pixel scale of the 64x32 display")
	backend := md.AddString("gui", "sdl", "display backend: sdl, term")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	shiftVyIntoVx := md.AddBool("shiftVyIntoVx", false, "8xy6/8xyE shift Vy into Vx (COSMAC VIP) instead of Vx in place (CHIP-48)")
	incrementI := md.AddBool("incrementIOnMemOps", false, "Fx55/Fx65 increments I by x+1 (COSMAC VIP) instead of leaving it unchanged (CHIP-48)")
	jumpVxPlusNN := md.AddBool("jumpVxPlusNN", false, "Bxnn jumps to Vx+nn (SCHIP) instead of V0+nnn (classic)")
	noVFOverflow := md.AddBool("noVFOnIndexOverflow", false, "Fx1E does not set VF on I overflow")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a ROM file is required for %s mode", md)
	}
	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	quirks := chip.DefaultQuirks()
	disk := prefs.NewDisk(paths.ResourcePath("quirks.prefs"))
	if err := quirksPrefs(disk, &quirks); err != nil {
		return err
	}
	if err := disk.Load(); err != nil {
		return err
	}
	if *shiftVyIntoVx {
		quirks.ShiftVyIntoVx = true
	}
	if *incrementI {
		quirks.IncrementIOnMemOps = true
	}
	if *jumpVxPlusNN {
		quirks.JumpVxPlusNN = true
	}
	if *noVFOverflow {
		quirks.NoVFOnIndexOverflow = true
	}

	var display chip.DisplaySink
	var keys chip.KeySource
	var beeper chip.BeeperSink
	var frontend gui.GUI
	var pollEvents func() bool
	var closeFrontend func()

	switch *backend {
	case "sdl":
		scr, err := sdl.NewDisplay(*scale)
		if err != nil {
			return err
		}
		aud, err := sdl.NewAudio()
		if err != nil {
			scr.Close()
			return err
		}
		display, keys, beeper, frontend = scr, scr, aud, scr
		closeFrontend = func() { aud.Close(); scr.Close() }
		pollEvents = func() bool {
			scr.PollEvents()
			for {
				select {
				case ev := <-scr.Events():
					if ev.ID == gui.EventWindowClose {
						return false
					}
				default:
					return true
				}
			}
		}

	case "term":
		tty, err := term.Open()
		if err != nil {
			return err
		}
		display, keys, beeper, frontend = tty, tty, tty, tty
		closeFrontend = tty.Close
		pollEvents = func() bool { return true }

	default:
		return fmt.Errorf("unknown gui backend %q", *backend)
	}
	defer closeFrontend()

	var mixer *wavwriter.WavWriter
	if *wav != "" {
		mixer, err = wavwriter.New(*wav)
		if err != nil {
			return err
		}
		beeper = teeBeeper{beeper, mixer}
	}

	vcs := hardware.NewVCS(quirks, chip.Ports{Keys: keys, RNG: nil}, display, beeper)
	vcs.Exec.Ports.RNG = random.NewRandom(vcs)
	vcs.SetSpeed(*speed)

	if err := vcs.AttachCartridge(cartload); err != nil {
		return err
	}

	_ = frontend.SetFeature(gui.ReqState, gui.StateRunning)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = vcs.Run(func() (hardware.RunState, error) {
		select {
		case <-intChan:
			return hardware.Ending, nil
		default:
		}
		if !pollEvents() {
			return hardware.Ending, nil
		}
		if mixer != nil {
			samples := wavwriter.SampleFreq / vcs.Speed
			if samples < 1 {
				samples = 1
			}
			mixer.Advance(samples)
		}
		return hardware.Running, nil
	})
	if err != nil {
		return err
	}

	if mixer != nil {
		if err := mixer.EndMixing(); err != nil {
			return err
		}
	}

	return disk.Save()
}

// teeBeeper fans SetBeeping out to both the interactive frontend and the
// wav recorder, so recording to disk doesn't silence the live beeper.
type teeBeeper struct {
	live chip.BeeperSink
	wav  chip.BeeperSink
}

func (t teeBeeper) SetBeeping(on bool) {
	if t.live != nil {
		t.live.SetBeeping(on)
	}
	t.wav.SetBeeping(on)
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	speed := md.AddInt("speed", hardware.DefaultInstructionsPerSecond, "instructions per second")
	instructions := md.AddInt("instructions", 1000000, "number of instructions to run")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	duration := md.AddString("benchmark", "", "run a real-time performance benchmark for this long instead of a fixed instruction count (e.g. 5s)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a ROM file is required for %s mode", md)
	}
	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	var prof performance.Profile
	if *profile {
		prof = performance.CPUProfile | performance.MemProfile
	}

	if *duration != "" {
		return performance.Check(md.Output, prof, cartload, false, *speed, *duration)
	}

	vcs := hardware.NewVCS(chip.DefaultQuirks(), chip.Ports{Keys: noKeys{}}, nil, nil)
	vcs.Exec.Ports.RNG = random.NewRandom(vcs)
	vcs.SetSpeed(*speed)

	if err := vcs.AttachCartridge(cartload); err != nil {
		return err
	}

	start := time.Now()
	err = performance.RunProfiler(prof, "headless", func() error {
		return vcs.RunForInstructionCount(*instructions)
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start).Seconds()
	ips, _ := performance.CalcIPS(vcs.InstructionCount(), elapsed, 0)
	fmt.Fprintf(md.Output, "ran %d instructions in %.3fs (%.0f instructions/sec)\n", vcs.InstructionCount(), elapsed, ips)

	return nil
}

type noKeys struct{}

func (noKeys) KeyDown(uint8) bool        { return false }
func (noKeys) AnyPressed() (uint8, bool) { return 0, false }
