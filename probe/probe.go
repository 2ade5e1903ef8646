// This file is part of GopherKart.
//
// GopherKart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherKart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherKart.  If not, see <https://www.gnu.org/licenses/>.

// Package probe implements the interactive console for poking at a
// simulated extender. It is a development tool: frames are stepped by
// command, the simulated RAM can be inspected and changed, and the state
// machines report their transitions as they happen.
package probe

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender/courseselect"
	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/sim"
)

type input struct {
	s   string
	err error
}

type watch struct {
	width int
	last  uint32
}

type probe struct {
	sim *sim.Simulation

	sig   chan os.Signal
	input chan input

	// which selection screen STEP drives
	mode courseselect.Mode

	// frames stepped since reset. purely informational
	frame int

	watches map[uint32]watch

	term   terminal
	styles styles
}

const programName = "gopherkart"

// Launch runs the probe console until QUIT or EOF.
func Launch(args []string) error {
	env, err := environment.NewEnvironment("probe")
	if err != nil {
		return err
	}

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&env.GameID, "game", env.GameID, "build of the game to simulate")
	flgs.IntVar(&env.PageCount, "pages", env.PageCount, "number of course pages")
	flgs.BoolVar(&env.BouncyTerrain, "bouncy", env.BouncyTerrain, "enable the bounce terrain controller")
	flgs.BoolVar(&env.ExtenderCup, "cup", env.ExtenderCup, "enable the extender cup")
	flgs.BoolVar(&env.TypeSpecificItemBoxes, "itemboxes", env.TypeSpecificItemBoxes, "enable type specific item boxes")
	flgs.BoolVar(&env.SectionedCourses, "sections", env.SectionedCourses, "enable sectioned courses")
	flgs.BoolVar(&env.FallingStars, "stars", env.FallingStars, "enable custom falling stars")
	if err := flgs.Parse(args); err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments to probe")
	}

	s, err := sim.NewSimulation(env)
	if err != nil {
		return err
	}

	p := &probe{
		sim:     s,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		watches: make(map[uint32]watch),
		styles:  newStyles(),
	}
	p.term.initialise(os.Stdin)

	signal.Notify(p.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case p.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	fmt.Println(p.styles.probe.Render(
		fmt.Sprintf("simulating %s with %d pages", env.GameID, env.PageCount),
	))

	p.loop()
	p.term.canonicalMode()

	return nil
}

func (p *probe) loop() {
	for {
		fmt.Printf("f%d [%s]> ", p.frame, p.mode)

		var cmd []string

		select {
		case input := <-p.input:
			if input.err != nil {
				if input.s == "" {
					fmt.Print("\n")
					return
				}
				fmt.Println(p.styles.err.Render(input.err.Error()))
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case <-p.sig:
			fmt.Print("\r")
			return
		}

		if p.commands(cmd) {
			return
		}
	}
}

// returns true if the probe is to quit
func (p *probe) commands(cmd []string) bool {
	switch strings.ToUpper(cmd[0]) {
	case "ST", "STEP":
		n := 1
		if len(cmd) == 2 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(p.styles.err.Render(
					fmt.Sprintf("cannot STEP %s frames", cmd[1]),
				))
				break // switch
			}
		}
		if err := p.sim.StepCourseSelect(p.mode, n); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		p.frame += n
		p.pageStatus()
		p.checkWatches()

	case "RACE":
		n := 1
		if len(cmd) == 2 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(p.styles.err.Render(
					fmt.Sprintf("cannot RACE %s frames", cmd[1]),
				))
				break // switch
			}
		}
		if err := p.sim.StepRace(n); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		p.frame += n
		p.kartStatus(0)
		p.checkWatches()

	case "LIVE":
		p.live()

	case "MODE":
		if len(cmd) < 2 {
			fmt.Println(p.styles.probe.Render(p.mode.String()))
			break // switch
		}
		switch strings.ToUpper(cmd[1]) {
		case "RACE":
			p.mode = courseselect.Race
		case "BATTLE":
			p.mode = courseselect.Battle
		case "LAN":
			p.mode = courseselect.LAN
		default:
			fmt.Println(p.styles.err.Render(
				fmt.Sprintf("unrecognised screen: %s", cmd[1]),
			))
		}

	case "PAGE":
		if len(cmd) == 2 {
			page, err := strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(p.styles.err.Render(
					fmt.Sprintf("cannot use PAGE %s", cmd[1]),
				))
				break // switch
			}
			if err := p.sim.Ext.CourseSelect.SetPage(page); err != nil {
				fmt.Println(p.styles.err.Render(err.Error()))
				break // switch
			}
		}
		p.pageStatus()

	case "HOLD":
		if len(cmd) < 2 {
			fmt.Println(p.styles.err.Render(
				"HOLD requires at least one of UP, DOWN, X or Y",
			))
			break // switch
		}
		var buttons uint16
		var lanButtons uint8
		for _, b := range cmd[1:] {
			switch strings.ToUpper(b) {
			case "UP":
				buttons |= courseselect.ButtonDPadUp
			case "DOWN":
				buttons |= courseselect.ButtonDPadDown
			case "X":
				buttons |= courseselect.ButtonX
				lanButtons |= courseselect.LANButtonX
			case "Y":
				buttons |= courseselect.ButtonY
				lanButtons |= courseselect.LANButtonY
			default:
				fmt.Println(p.styles.err.Render(
					fmt.Sprintf("unrecognised button: %s", b),
				))
			}
		}
		if err := p.sim.HoldButtons(buttons); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		if err := p.sim.HoldLANButtons(lanButtons); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
		}

	case "RELEASE":
		if err := p.sim.ReleaseButtons(); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		if err := p.sim.HoldLANButtons(0); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
		}

	case "STICK":
		if len(cmd) < 4 {
			fmt.Println(p.styles.err.Render(
				"STICK requires a kart slot and two deflections",
			))
			break // switch
		}
		slot, err := strconv.Atoi(cmd[1])
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		x, err := strconv.ParseFloat(cmd[2], 32)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		y, err := strconv.ParseFloat(cmd[3], 32)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		if err := p.sim.SetStick(slot, float32(x), float32(y)); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
		}

	case "PLACE":
		if len(cmd) < 7 {
			fmt.Println(p.styles.err.Render(
				"PLACE requires a kart slot, a position, a terrain code and a wheel count",
			))
			break // switch
		}
		slot, err := strconv.Atoi(cmd[1])
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		var pos kart.Vector
		var fail bool
		for i, f := range []*float32{&pos.X, &pos.Y, &pos.Z} {
			v, err := strconv.ParseFloat(cmd[2+i], 32)
			if err != nil {
				fmt.Println(p.styles.err.Render(err.Error()))
				fail = true
				break // for loop
			}
			*f = float32(v)
		}
		if fail {
			break // switch
		}
		terrain, err := strconv.ParseUint(cmd[5], 0, 8)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		wheels, err := strconv.ParseUint(cmd[6], 0, 8)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		if err := p.sim.PlaceKart(slot, pos, uint8(terrain), uint8(wheels)); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		p.kartStatus(slot)

	case "KART":
		slot := 0
		if len(cmd) == 2 {
			var err error
			slot, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(p.styles.err.Render(
					fmt.Sprintf("cannot use KART %s", cmd[1]),
				))
				break // switch
			}
		}
		p.kartStatus(slot)

	case "GP":
		p.grandPrix(cmd[1:])

	case "PEEK":
		if len(cmd) < 2 {
			fmt.Println(p.styles.err.Render("PEEK requires an address"))
			break // switch
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(cmd[1], "0x"), 16, 32)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		n := 4
		if len(cmd) == 3 {
			n, err = strconv.Atoi(cmd[2])
			if err != nil || n < 1 {
				fmt.Println(p.styles.err.Render(
					fmt.Sprintf("cannot PEEK %s bytes", cmd[2]),
				))
				break // switch
			}
		}
		b, err := p.sim.RAM.ReadBytes(uint32(addr), uint32(n))
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		fmt.Println(p.styles.mem.Render(
			fmt.Sprintf("%08x: % x", addr, b),
		))

	case "POKE":
		if len(cmd) < 3 {
			fmt.Println(p.styles.err.Render("POKE requires an address and a byte value"))
			break // switch
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(cmd[1], "0x"), 16, 32)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(cmd[2], "0x"), 16, 8)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		if err := p.sim.RAM.Write8(uint32(addr), uint8(val)); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
		}

	case "WATCH":
		if len(cmd) < 2 {
			for addr, w := range p.watches {
				fmt.Println(p.styles.watch.Render(
					fmt.Sprintf("%08x (%d bytes) = %0*x", addr, w.width, w.width*2, w.last),
				))
			}
			break // switch
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(cmd[1], "0x"), 16, 32)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		width := 1
		if len(cmd) == 3 {
			width, err = strconv.Atoi(cmd[2])
			if err != nil || (width != 1 && width != 2 && width != 4) {
				fmt.Println(p.styles.err.Render("WATCH width must be 1, 2 or 4"))
				break // switch
			}
		}
		v, err := p.readWatch(uint32(addr), width)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		p.watches[uint32(addr)] = watch{width: width, last: v}

	case "RESET":
		s, err := sim.NewSimulation(p.sim.Env)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		p.sim = s
		p.frame = 0
		fmt.Println(p.styles.probe.Render("simulation reset"))

	case "DUMP":
		filename := "extender.dot"
		if len(cmd) == 2 {
			filename = cmd[1]
		}
		if err := p.dumpGraph(filename); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			break // switch
		}
		fmt.Println(p.styles.probe.Render(
			fmt.Sprintf("object graph written to %s", filename),
		))

	case "HELP":
		p.help()

	case "Q", "QUIT":
		return true

	default:
		fmt.Println(p.styles.err.Render(
			fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
		))
	}

	return false
}

// live steps the selection screen continuously, one frame per key. the
// terminal is put into cbreak mode so held keys arrive without a newline
func (p *probe) live() {
	if !p.term.available {
		fmt.Println(p.styles.err.Render("LIVE requires a tty"))
		return
	}

	fmt.Println(p.styles.probe.Render(
		"j/k change page, q returns to the console",
	))

	p.term.cbreakMode()
	defer func() {
		p.term.canonicalMode()
		p.term.flush()
	}()

	b := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(b)
		if err != nil || n == 0 {
			return
		}

		switch b[0] {
		case 'j':
			_ = p.sim.HoldButtons(courseselect.ButtonDPadDown)
		case 'k':
			_ = p.sim.HoldButtons(courseselect.ButtonDPadUp)
		case 'q':
			_ = p.sim.ReleaseButtons()
			return
		default:
			_ = p.sim.ReleaseButtons()
		}

		if err := p.sim.StepCourseSelect(p.mode, 1); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}
		p.frame++

		page, err := p.sim.Page()
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}
		fmt.Printf("\rpage %d    ", page)
	}
}

func (p *probe) grandPrix(cmd []string) {
	if p.sim.Ext.Cup == nil {
		fmt.Println(p.styles.err.Render("the extender cup is not enabled"))
		return
	}

	if len(cmd) < 1 {
		fmt.Println(p.styles.err.Render("GP requires START or NEXT"))
		return
	}

	switch strings.ToUpper(cmd[0]) {
	case "START":
		// the probe always starts the All-Cup Tour. other cups are of no
		// interest to the extender
		if err := p.sim.RAM.Write8(p.sim.Cat.GPCupIndex, 4); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}
		if err := p.sim.Ext.OnGPStart(); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}

	case "NEXT":
		course, err := p.sim.RAM.Read8(p.sim.Cat.GPCourseIndex)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}
		if err := p.sim.RAM.Write8(p.sim.Cat.GPCourseIndex, course+1); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}
		if err := p.sim.Ext.OnSetClrGPCourse(); err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			return
		}

	default:
		fmt.Println(p.styles.err.Render(
			fmt.Sprintf("unrecognised GP command: %s", cmd[0]),
		))
		return
	}

	hud, err := p.sim.Ext.GPCourseIndexForHUD(0)
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	total, err := p.sim.Ext.Cup.TotalCourseCount()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	course, err := p.sim.RAM.Read8(p.sim.Cat.GPCourseIndex)
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	page, err := p.sim.Page()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}

	fmt.Println(p.styles.cup.Render(
		fmt.Sprintf("race %d of %d (page %d, course %d)", hud, total, page, course),
	))
}

func (p *probe) pageStatus() {
	page, err := p.sim.Page()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	spam, err := p.sim.SpamFlag()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	redraw, err := p.sim.RedrawDelay()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}

	fmt.Println(p.styles.page.Render(
		fmt.Sprintf("page %d, debounce %d, redraw %.0f", page, spam, redraw),
	))
}

func (p *probe) kartStatus(slot int) {
	v, err := p.sim.Ext.Karts.View(slot)
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}

	pos, err := v.Position()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	mov, err := v.Movement()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	flags, err := v.Flags()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	boost, err := v.BoostFlags()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	terrain, err := v.TerrainCode()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}
	grounded, err := v.Grounded()
	if err != nil {
		fmt.Println(p.styles.err.Render(err.Error()))
		return
	}

	ground := "airborne"
	if grounded {
		ground = "grounded"
	}

	var momentum float32
	if p.sim.Ext.Bounce != nil {
		momentum = p.sim.Ext.Bounce.Momentum(slot)
	}

	fmt.Println(p.styles.kart.Render(
		fmt.Sprintf("kart %d: pos %v mov %v", slot, pos, mov),
	))
	fmt.Println(p.styles.kart.Render(
		fmt.Sprintf("        terrain %02x (%s), flags [%s], boost [%s], momentum %.3f",
			terrain, ground, flags, boost, momentum),
	))
}

func (p *probe) readWatch(addr uint32, width int) (uint32, error) {
	switch width {
	case 2:
		v, err := p.sim.RAM.Read16(addr)
		return uint32(v), err
	case 4:
		return p.sim.RAM.Read32(addr)
	}
	v, err := p.sim.RAM.Read8(addr)
	return uint32(v), err
}

func (p *probe) checkWatches() {
	for addr, w := range p.watches {
		v, err := p.readWatch(addr, w.width)
		if err != nil {
			fmt.Println(p.styles.err.Render(err.Error()))
			continue // for loop
		}
		if v != w.last {
			fmt.Println(p.styles.watch.Render(
				fmt.Sprintf("%08x: %0*x -> %0*x", addr, w.width*2, w.last, w.width*2, v),
			))
			p.watches[addr] = watch{width: w.width, last: v}
		}
	}
}

func (p *probe) help() {
	help := [...]string{
		"STEP [n]                          step the selection screen",
		"RACE [n]                          step the race",
		"LIVE                              drive the selection screen with held keys",
		"MODE [RACE|BATTLE|LAN]            show or set the selection screen",
		"PAGE [n]                          show or force the course page",
		"HOLD UP|DOWN|X|Y ...              hold pad buttons",
		"RELEASE                           release all pad buttons",
		"STICK slot x y                    set a kart's control stick",
		"PLACE slot x y z terrain wheels   place a kart on the ground",
		"KART [slot]                       show a kart's state",
		"GP START|NEXT                     drive the extender cup",
		"PEEK addr [n]                     read simulated RAM",
		"POKE addr value                   write one byte of simulated RAM",
		"WATCH [addr [width]]              report changes after every step",
		"RESET                             rebuild the simulation",
		"DUMP [file]                       write the object graph as graphviz",
		"QUIT",
	}
	for _, h := range help {
		fmt.Println(p.styles.probe.Render(h))
	}
}
