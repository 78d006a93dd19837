package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	magnetframer "github.com/meni-adin/magnet-framer"
	"github.com/meni-adin/magnet-framer/internal/config"
	"github.com/meni-adin/magnet-framer/internal/logging"
	"github.com/meni-adin/magnet-framer/internal/utils"
)

const appName = "magnet-framer"

func main() {
	flags := pflag.NewFlagSet(appName, pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Prepare images for printing on magnets\n\nUsage of %s:\n", appName)
		flags.PrintDefaults()
	}
	configPath := flags.StringP("config", "c", "config.json", "path to configuration file")
	flags.StringP("input", "i", "", "path to input files directory")
	flags.StringP("output", "o", "", "path to output files directory")
	flags.StringP("landscape-frame", "l", "", "path to landscape frame file")
	flags.StringP("portrait-frame", "p", "", "path to portrait frame file")
	flags.BoolP("debug", "d", false, "run in debug mode")
	_ = flags.Parse(os.Args[1:]) // ExitOnError

	settings, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if settings.Debug {
		settings.Log.Level = "debug"
	}

	logger := logging.New(settings.Log)
	defer logger.Sync()
	log := logger.Sugar()

	log.Infof("--- %s start ---", appName)

	if !utils.DirExists(settings.InputPath) {
		log.Errorf("input directory %s does not exist", settings.InputPath)
		logger.Sync()
		os.Exit(1)
	}
	if !utils.DirExists(settings.OutputPath) {
		log.Errorf("output directory %s does not exist", settings.OutputPath)
		logger.Sync()
		os.Exit(1)
	}

	if err := magnetframer.New(settings, logger).Run(); err != nil {
		log.Error(err)
		logger.Sync()
		os.Exit(1)
	}

	log.Infof("---  %s end  ---", appName)
}
