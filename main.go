package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/eiannone/keyboard"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"git.lost.host/meutraa/notebot/internal/config"
	"git.lost.host/meutraa/notebot/internal/logging"
)

func main() {
	if err := run(); nil != err {
		logrus.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if nil != err {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := &Program{Config: cfg, Log: logger}
	if err := p.Init(); nil != err {
		return err
	}

	fmt.Println("Rhythm Game Bot")
	fmt.Println("1. Test pixel colors at coordinates")
	fmt.Println("2. Start monitoring and auto-play")
	fmt.Println("3. Manual key test")
	fmt.Print("Enter choice (1-3): ")

	choice, err := readChoice(os.Stdin)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if nil != err {
		return err
	}

	err = p.Choose(ctx, choice)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nCancelled")
		return nil
	}
	return err
}

// readChoice takes a single key press from a terminal, or a line from
// anything else.
func readChoice(in *os.File) (string, error) {
	if term.IsTerminal(int(in.Fd())) {
		char, key, err := keyboard.GetSingleKey()
		if nil != err {
			return "", fmt.Errorf("unable to open keyboard: %w", err)
		}
		if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
			fmt.Println()
			return "", context.Canceled
		}
		fmt.Println(string(char))
		return string(char), nil
	}
	return readLine(in)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if nil != err && err != io.EOF {
		return "", fmt.Errorf("unable to read choice: %w", err)
	}
	return strings.TrimSpace(line), nil
}
