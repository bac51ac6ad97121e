/*
 * gambit - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 the gambit contributors
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
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/gambit/config"
	"github.com/fkopp/gambit/logging"
	"github.com/fkopp/gambit/movegen"
	"github.com/fkopp/gambit/position"
	"github.com/fkopp/gambit/uci"
)

var out = message.NewPrinter(language.German)

const engineVersion = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to configuration settings file")
	cpuProfile := flag.Bool("cpuprofile", false, "write a cpu profile to ./cpu.pprof for the lifetime of the process")
	perft := flag.Int("perft", 0, "runs perft on the start position to the given depth and exits\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFEN, "fen used by -perft")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if err := config.Setup(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "config: %s (using defaults)\n", err)
	}
	log := logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perft != 0 {
		p, err := position.LoadFen(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for d := 1; d <= *perft; d++ {
			nodes := movegen.Perft(p, d)
			out.Printf("perft %d: %d\n", d, nodes)
		}
		return
	}

	log.Info("gambit starting, entering UCI loop")
	h := uci.NewHandler(os.Stdin, os.Stdout)
	if err := h.Loop(context.Background()); err != nil {
		log.Errorf("uci loop ended with error: %s", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func printVersionInfo() {
	out.Printf("gambit %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
