package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mapamarco/naive-gbe/internal/emulator"
	"github.com/mapamarco/naive-gbe/pkg/log"
	"github.com/mapamarco/naive-gbe/pkg/utils"
	"github.com/mapamarco/naive-gbe/pkg/web"
)

func main() {
	romFile := flag.String("rom", "", "the rom file to load")
	bootROM := flag.String("boot", "", "a 256 byte bootstrap rom to use instead of the built-in one")
	serve := flag.String("serve", "", "serve the debug stream on the given address (e.g. :8090)")
	trace := flag.Bool("trace", false, "print the disassembly at PC once per frame")
	frames := flag.Int("frames", 0, "stop after this many frames (0 = run until stopped)")
	flag.Parse()

	logger := log.New()

	if *romFile == "" {
		fmt.Fprintln(os.Stderr, "usage: naivegbe -rom <file> [-boot <file>] [-serve <addr>] [-trace]")
		os.Exit(2)
	}

	emu := emulator.New(emulator.WithLogger(logger))

	if *bootROM != "" {
		data, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("naivegbe: %v", err)
			os.Exit(1)
		}
		if err := emu.SetBootstrap(data); err != nil {
			logger.Errorf("naivegbe: %v", err)
			os.Exit(1)
		}
	}

	if err := emu.LoadROM(*romFile); err != nil {
		logger.Errorf("naivegbe: %v", err)
		os.Exit(1)
	}

	var stream *web.Server
	if *serve != "" {
		stream = web.NewServer(emu, logger)
		go func() {
			if err := stream.Run(*serve); err != nil {
				logger.Errorf("naivegbe: %v", err)
			}
		}()
	}

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		if *trace {
			fmt.Println(emu.Disassembly())
		}

		emu.Run()
		if stream != nil {
			stream.Publish()
		}

		if fault := emu.Fault(); fault != nil {
			logger.Errorf("naivegbe: %v", fault)
			os.Exit(1)
		}
		if *frames > 0 && frame+1 >= *frames {
			return
		}

		<-ticker.C
	}
}
