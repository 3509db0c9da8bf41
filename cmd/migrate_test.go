package cmd

import (
	"testing"
)

func TestMigrateCommandRegistered(t *testing.T) {
	cmd := NewRootCmd()
	migrate, _, err := cmd.Find([]string{"migrate"})
	if err != nil {
		t.Fatalf("Failed to find migrate command: %v", err)
	}
	if migrate.Name() != "migrate" {
		t.Errorf("Expected migrate command, got %s", migrate.Name())
	}
}

func TestMigrateSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"up", "status"} {
		sub, _, err := cmd.Find([]string{"migrate", name})
		if err != nil {
			t.Errorf("Failed to find migrate %s command: %v", name, err)
			continue
		}
		if sub.Name() != name {
			t.Errorf("Expected %s subcommand, got %s", name, sub.Name())
		}
	}
}

func TestSetupStorageCommandRegistered(t *testing.T) {
	cmd := NewRootCmd()
	setup, _, err := cmd.Find([]string{"setup-storage"})
	if err != nil {
		t.Fatalf("Failed to find setup-storage command: %v", err)
	}
	if setup.Name() != "setup-storage" {
		t.Errorf("Expected setup-storage command, got %s", setup.Name())
	}
}
