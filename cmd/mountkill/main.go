//go:build linux

package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/Ourobor-OS/system-vold/internal/mountpoint"
	"github.com/Ourobor-OS/system-vold/internal/output"
	"github.com/Ourobor-OS/system-vold/internal/scanner"
	"github.com/Ourobor-OS/system-vold/internal/tui"
	"github.com/Ourobor-OS/system-vold/pkg/model"
)

var version = ""
var commit = ""
var buildDate = ""

func printHelp() {
	fmt.Println("Usage: mountkill [--term | --kill] [-i] [--json] [--no-color] [--help] [--version] <mountpoint>")
	fmt.Println("  (default)         List processes holding files under the mount point")
	fmt.Println("  --term            Also send SIGTERM to every holding process")
	fmt.Println("  --kill            Also send SIGKILL to every holding process")
	fmt.Println("  -i, --interactive Interactive TUI mode")
	fmt.Println("  --json            Output result as JSON")
	fmt.Println("  --no-color        Disable colorized output")
	fmt.Println("  --help            Show this help message")
	fmt.Println("  --version         Show version and exit")
}

func main() {
	// Reorder os.Args so flags come before the positional mount point;
	// "mountkill /mnt/sdcard --kill" should work as written.
	reordered := []string{os.Args[0]}
	var positionals []string
	for _, arg := range os.Args[1:] {
		if len(arg) > 0 && arg[0] == '-' {
			reordered = append(reordered, arg)
		} else {
			positionals = append(positionals, arg)
		}
	}
	os.Args = append(reordered, positionals...)

	termFlag := flag.Bool("term", false, "send SIGTERM to holders")
	killFlag := flag.Bool("kill", false, "send SIGKILL to holders")
	jsonFlag := flag.Bool("json", false, "output as JSON")
	noColorFlag := flag.Bool("no-color", false, "disable colorized output")
	interactiveFlag := flag.Bool("i", false, "interactive mode")
	interactiveLongFlag := flag.Bool("interactive", false, "interactive mode")
	helpFlag := flag.Bool("help", false, "show help")
	versionFlag := flag.Bool("version", false, "show version and exit")

	klog.InitFlags(nil)
	_ = flag.Set("logtostderr", "true")

	flag.Parse()

	if *versionFlag {
		fmt.Printf("mountkill %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}
	if *helpFlag {
		printHelp()
		os.Exit(0)
	}
	if len(flag.Args()) != 1 {
		printHelp()
		os.Exit(1)
	}

	mount := flag.Args()[0]
	if len(mount) <= 1 {
		fmt.Fprintln(os.Stderr, "Error: refusing to scan the filesystem root")
		os.Exit(1)
	}

	if *interactiveFlag || *interactiveLongFlag {
		if err := tui.Run(mount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !mountpoint.Mounted(mount) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not look like a mount point\n", mount)
	}

	// one pass: render the matches, then signal the same set
	sc := &scanner.Scanner{}
	matches := sc.FindHolders(mount)

	if *jsonFlag {
		enc, err := output.ToJSON(mount, matches)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(enc)
	} else {
		output.RenderHolders(os.Stdout, mount, matches, !*noColorFlag)
	}

	switch {
	case *killFlag:
		sc.Apply(matches, model.ForceTerminate)
	case *termFlag:
		sc.Apply(matches, model.RequestTerminate)
	}
}
