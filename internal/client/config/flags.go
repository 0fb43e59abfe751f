package config

import (
	"flag"
	"os"
	"time"

	"github.com/Kerimcanak/SnapCryptor/internal/flagx"
)

// ValueFlags lists the flags owned by this package that take a value.
// The CLI uses it to tell flags apart from positional arguments.
var ValueFlags = []string{"-a", "-i", "-m", "-d", "-s", "-l", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so positional arguments (one-shot commands) do not
// stop parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-m", "-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the encrypt/decrypt service")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DownloadMode, "m", cfg.DownloadMode, "download mode: dir, browser or none")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.HistoryDSN, "s", cfg.HistoryDSN, "history database file (empty disables history)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -i is whole seconds; a JSON interval survives unless -i was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
