package auth

import (
	"testing"
)

func TestCommand(t *testing.T) {
	if Command == nil {
		t.Fatal("Command should not be nil")
	}

	if Command.Name != "auth" {
		t.Errorf("Command.Name = %q, want auth", Command.Name)
	}

	if len(Command.Commands) != 2 {
		t.Errorf("Command.Commands count = %d, want 2", len(Command.Commands))
	}

	// Verify subcommands
	foundStore := false
	foundClear := false
	for _, cmd := range Command.Commands {
		switch cmd.Name {
		case "store":
			foundStore = true
		case "clear":
			foundClear = true
		}
	}

	if !foundStore {
		t.Error("Should have 'store' subcommand")
	}
	if !foundClear {
		t.Error("Should have 'clear' subcommand")
	}
}

func TestStoreCommand(t *testing.T) {
	if storeCommand.Name != "store" {
		t.Errorf("storeCommand.Name = %q, want store", storeCommand.Name)
	}

	if storeCommand.Action == nil {
		t.Error("storeCommand should have an action")
	}
}

func TestClearCommand(t *testing.T) {
	if clearCommand.Name != "clear" {
		t.Errorf("clearCommand.Name = %q, want clear", clearCommand.Name)
	}

	if clearCommand.Action == nil {
		t.Error("clearCommand should have an action")
	}
}
