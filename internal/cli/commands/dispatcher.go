package commands

import (
	"TimeCapsule/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Коды завершения процесса CLI.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool { return a == "--help" || a == "-h" })
}

func printGlobalUsage() {
	fmt.Fprint(Out, FormatGlobalUsage())
}

func printUnknown(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	printGlobalUsage()
	return ExitUsage
}

// Dispatch выполняет команду из args и возвращает код завершения процесса.
// Справка и сообщения об ошибках печатаются в Out.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if wantsHelp(os.Args[1:]) {
		printGlobalUsage()
		return ExitOK
	}
	if !flag.Parsed() {
		flag.Parse()
	}
	if len(args) == 0 {
		printGlobalUsage()
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // tccli help [command]
		if len(args) == 1 {
			printGlobalUsage()
			return ExitOK
		}
		c, ok := Get(args[1])
		if !ok {
			return printUnknown(args[1])
		}
		fmt.Fprintf(Out, "%s\n\nUsage: %s\n", c.Description(), c.Usage())
		return ExitOK
	}

	c, ok := Get(name)
	if !ok {
		return printUnknown(name)
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(Out, "%s interrupted\n", name)
		return ExitFailure
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitFailure
	}
}
