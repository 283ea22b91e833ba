// Package display provides the startup banner and human-readable size
// formatting for the batch summary.
package display

import (
	"fmt"
	"os"
)

// PrintBanner prints the ASCII art banner to stderr so stdout stays free
// for ffmpeg's own output. Magenta when colors are enabled.
func PrintBanner(colors bool) {
	if colors {
		fmt.Fprint(os.Stderr, "\033[1;95m")
	}
	fmt.Fprint(os.Stderr, `                      ____                  _  _
 _ __ ___   _____   _|___ \ _ __ ___  _ __ | || |
| '_ ` + "`" + ` _ \ / _ \ \ / / __) | '_ ` + "`" + ` _ \| '_ \| || |_
| | | | | | (_) \ V / / __/| | | | | | |_) |__   _|
|_| |_| |_|\___/ \_/ |_____|_| |_| |_| .__/   |_|
                                     |_|
`)
	if colors {
		fmt.Fprint(os.Stderr, "\033[0m")
	}
	fmt.Fprintln(os.Stderr)
}
