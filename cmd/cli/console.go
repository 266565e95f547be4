package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"travel-assistant/internal/conversation"
	"travel-assistant/internal/model"
)

const (
	userLabel      = "\033[94mUser:\033[0m"
	assistantLabel = "\033[92mAssistant:\033[0m"
	banner         = "AI TRAVEL ASSISTANT"

	cmdExit = "exit"
	cmdAuto = "auto"
)

// console drives one session from a terminal.
type console struct {
	uc        conversation.UseCase
	sessionID string
	out       io.Writer
	render    func(string) string
	sleep     func(time.Duration)
	turns     int
}

func newConsole(uc conversation.UseCase, sessionID string, out io.Writer, render func(string) string) *console {
	return &console{
		uc:        uc,
		sessionID: sessionID,
		out:       out,
		render:    render,
		sleep:     time.Sleep,
	}
}

func (c *console) header() {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n\n", line, centered(banner, 80), line)
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// resume prints the stored conversation, if any, and returns its turn count.
func (c *console) resume(ctx context.Context) error {
	if c.sessionID == "" {
		return nil
	}
	out, err := c.uc.History(ctx, c.sessionID)
	if errors.Is(err, conversation.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Loaded existing conversation.")
	fmt.Fprintln(c.out)
	c.printHistory(out.Session.History)
	c.turns = len(out.Session.History) / 2
	return nil
}

func (c *console) printHistory(history []model.Message) {
	for _, m := range history {
		switch m.Role {
		case model.RoleUser:
			fmt.Fprintf(c.out, "%s %s\n", userLabel, m.Content)
		case model.RoleAssistant:
			fmt.Fprintf(c.out, "%s %s\n", assistantLabel, c.render(m.Content))
		}
	}
	fmt.Fprintln(c.out)
}

// send runs one turn. The first turn adopts the generated session id.
func (c *console) send(ctx context.Context, message string) error {
	out, err := c.uc.Chat(ctx, conversation.ChatInput{SessionID: c.sessionID, Message: message})
	if err != nil {
		return err
	}
	c.sessionID = out.SessionID
	c.turns++
	fmt.Fprintf(c.out, "%s %s\n\n", assistantLabel, c.render(out.Response))
	return nil
}

// replay sends scripted messages, echoing each and pausing delay around
// the reply.
func (c *console) replay(ctx context.Context, messages []string, delay time.Duration) error {
	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s %s\n", userLabel, msg)
		c.sleep(delay)
		if err := c.send(ctx, msg); err != nil {
			return err
		}
		c.sleep(delay)
	}
	return nil
}

// loop reads lines from in until EOF or "exit". onAuto, when set, handles
// the "auto" command and ends the loop.
func (c *console) loop(ctx context.Context, in io.Reader, onAuto func() error) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(c.out, "%s ", userLabel)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, cmdExit):
			return nil
		case onAuto != nil && strings.EqualFold(line, cmdAuto):
			fmt.Fprintln(c.out, "\nSwitching to automatic mode...")
			fmt.Fprintln(c.out)
			return onAuto()
		}
		if err := c.send(ctx, line); err != nil {
			return err
		}
	}
}
