// Command chatctl drives a chat-gate server from the terminal and seeds users
// directly into a stopped server's store.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `usage: chatctl <command> [flags]

offline (server stopped, needs BADGER_FILEPATH and JWT_SECRET):
  seed           register a user and print a token
  token          mint a token for an existing user id

online (needs CHATCTL_ADDR and CHATCTL_TOKEN):
  create         create a conversation
  conversation   show one conversation
  conversations  list your conversations
  post           post a message
  messages       list the messages of a conversation
  add            add participants to a conversation
  search         search your messages
`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatctl: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, nil
	}
	config, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	out := printer{out: os.Stdout, colours: config.Colours}

	command, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, fmt.Errorf("unknown command %q", args[0])
	}
	return command(config, out, args[1:])
}
