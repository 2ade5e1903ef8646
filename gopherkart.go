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

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/logger"
	"github.com/jetsetilly/gopherkart/modalflag"
	"github.com/jetsetilly/gopherkart/probe"
	"github.com/jetsetilly/gopherkart/sim"
	"github.com/jetsetilly/gopherkart/statsview"
	"github.com/jetsetilly/gopherkart/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DUMP", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddInt("log", 0, "echo the debugging log: 1 errors, 2 info, 3 debug")
	production := md.AddBool("logfmt", false, "echo the log as JSON rather than console lines")
	stats := md.AddBool("stats", false, "run the stats server (requires the statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log > 0 {
		echo, err := logger.NewEcho(*log, *production)
		if err != nil {
			return err
		}
		logger.SetEcho(echo)
		defer echo.Sync()
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	return probe.Launch(md.RemainingArgs())
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	filename := md.AddString("o", "extender.dot", "file to write the graph to")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := environment.NewEnvironment("dump")
	if err != nil {
		return err
	}

	s, err := sim.NewSimulation(env)
	if err != nil {
		return err
	}

	f, err := os.Create(*filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, s.Ext)
	fmt.Printf("object graph written to %s\n", *filename)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Println(ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
