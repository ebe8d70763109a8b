package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/features/checkinvariant"
	"github.com/AntonStoeckl/lending-registry-go/shell"
)

var errUsage = errors.New("usage error")

const (
	commandBorrow    = "borrow"
	commandReturn    = "return"
	commandCheck     = "check"
	commandInvariant = "invariant"
	commandList      = "list"
	commandHistory   = "history"
	commandDemo      = "demo"
	commandScript    = "script"
)

// demoScenario checks, borrows and returns book1, then tries to borrow a book the registry does not know.
var demoScenario = [][]string{
	{commandCheck, "book1"},
	{commandBorrow, "book1", "user123"},
	{commandCheck, "book1"},
	{commandReturn, "book1", "user123"},
	{commandCheck, "book1"},
	{commandInvariant},
	{commandBorrow, "book4", "user123"},
}

// execute runs one command line. Every command line gets its own correlation ID in the journal.
func (a *app) execute(ctx context.Context, args []string) error {
	ctx = shell.WithCorrelationID(ctx, uuid.New())

	name, params := args[0], args[1:]

	switch name {
	case commandBorrow:
		if len(params) != 2 {
			return fmt.Errorf("%s <bookId> <userId>: %w", commandBorrow, errUsage)
		}

		if err := a.registry.Borrow(ctx, params[0], core.BuildUser(params[1])); err != nil {
			return err
		}

		return a.printLine("User %s borrowed book %s.", params[1], params[0])

	case commandReturn:
		if len(params) != 2 {
			return fmt.Errorf("%s <bookId> <userId>: %w", commandReturn, errUsage)
		}

		if err := a.registry.ReturnBook(ctx, params[0], core.BuildUser(params[1])); err != nil {
			return err
		}

		return a.printLine("User %s returned book %s.", params[1], params[0])

	case commandCheck:
		if len(params) != 1 {
			return fmt.Errorf("%s <bookId>: %w", commandCheck, errUsage)
		}

		report, err := a.registry.CheckAvailability(ctx, params[0])
		if err != nil {
			return err
		}

		return a.printReport(report)

	case commandInvariant:
		if len(params) != 0 {
			return fmt.Errorf("%s takes no arguments: %w", commandInvariant, errUsage)
		}

		if err := a.registry.CheckInvariant(ctx); err != nil {
			return err
		}

		return a.printLine("%s", checkinvariant.SatisfiedMessage)

	case commandList:
		if len(params) != 0 {
			return fmt.Errorf("%s takes no arguments: %w", commandList, errUsage)
		}

		return a.printReports(a.registry.Books(ctx))

	case commandHistory:
		if len(params) != 0 {
			return fmt.Errorf("%s takes no arguments: %w", commandHistory, errUsage)
		}

		return a.printHistory(a.journal.Entries())

	case commandDemo:
		if len(params) != 0 {
			return fmt.Errorf("%s takes no arguments: %w", commandDemo, errUsage)
		}

		for _, step := range demoScenario {
			if err := a.echoAndExecute(ctx, step); err != nil {
				return err
			}
		}

		return nil

	case commandScript:
		if len(params) != 0 {
			return fmt.Errorf("%s takes no arguments: %w", commandScript, errUsage)
		}

		return a.runScript(ctx)

	default:
		return fmt.Errorf("unknown command %q: %w", name, errUsage)
	}
}

// runScript executes the commands read from stdin until the input ends or a command fails.
func (a *app) runScript(ctx context.Context) error {
	scanner := bufio.NewScanner(a.stdin)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == commandScript {
			return fmt.Errorf("line %d: scripts cannot be nested: %w", lineNumber, errUsage)
		}

		if err := a.echoAndExecute(ctx, fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	return scanner.Err()
}

func (a *app) echoAndExecute(ctx context.Context, args []string) error {
	if !a.jsonOutput {
		if err := a.printLine("> %s", strings.Join(args, " ")); err != nil {
			return err
		}
	}

	return a.execute(ctx, args)
}
