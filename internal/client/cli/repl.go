package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Page(ctx context.Context, name string) error
	Menu(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF or
// "exit"/"quit".
//
//	home, schedule, quote, about, instructions, testimonials, contact,
//	services, gallery, privacy   open a page ("open <path>" works too)
//	menu                         app bar links
//	login, logout, whoami        session
//	help, exit | quit
//
// The quote page asks for a login first when nobody is signed in. Errors
// returned by handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("yacht %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, schedule, quote, about, instructions, testimonials, contact, menu, whoami, logout, exit")
			} else {
				printlnFn("Available commands: home, schedule, quote, about, instructions, testimonials, contact, menu, login, exit")
			}

		case "home", "schedule", "quote", "about", "instructions", "testimonials", "contact", "services", "gallery", "privacy":
			err = a.Page(ctx, cmd)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			err = a.Page(ctx, args[0])

		case "menu":
			err = a.Menu(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
