// Command qrmenu-seed prints the demo seed data for a QR menu installation
// together with sample SQL to load it. Nothing is written anywhere but
// stdout; diagnostics go to stderr.
package main

import (
	"io"
	"os"

	"github.com/carpenike/qrmenu/internal/catalog"
	"github.com/carpenike/qrmenu/internal/config"
	"github.com/carpenike/qrmenu/internal/report"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%s", err)
	}
}

// run writes the report to stdout. Only a failed write on stdout is an error;
// a bad log level is reported on stderr and the report still goes out.
func run(stdout, stderr io.Writer) error {
	conf := config.InitConfig()
	if err := config.InitLogger(conf.LogLevel, stderr); err != nil {
		log.Warning(err)
	}

	log.Debug(conf)

	c := catalog.Default()
	if err := report.New(stdout).Write(c); err != nil {
		return err
	}

	log.Debugf("seed report written: %d categories, %d dishes, %d tables",
		len(c.Categories), len(c.Dishes), len(c.Tables))
	return nil
}
