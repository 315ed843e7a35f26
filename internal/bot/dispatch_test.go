package bot

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		prefix   string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{"bare command", "!ping", "!", "ping", "", true},
		{"with args", "!play never gonna give you up", "!", "play", "never gonna give you up", true},
		{"uppercase name", "!PLAY song", "!", "play", "song", true},
		{"args trimmed", "!volume    50  ", "!", "volume", "50", true},
		{"newline separator", "!play\nsong", "!", "play", "song", true},
		{"multi-char prefix", "m!queue", "m!", "queue", "", true},
		{"no prefix", "play song", "!", "", "", false},
		{"prefix only", "!", "!", "", "", false},
		{"space after prefix", "! play", "!", "", "", false},
		{"other prefix", "?ping", "!", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := ParseCommand(tt.content, tt.prefix)
			if ok != tt.wantOK {
				t.Fatalf("expected ok %v, got %v", tt.wantOK, ok)
			}
			if name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, name)
			}
			if args != tt.wantArgs {
				t.Errorf("expected args %q, got %q", tt.wantArgs, args)
			}
		})
	}
}

func TestCommandIndex_Aliases(t *testing.T) {
	idx := newCommandIndex()

	if _, ok := idx.add(Command{Name: "leave", Aliases: []string{"dc", "disconnect"}}); !ok {
		t.Fatal("expected first registration to succeed")
	}

	for _, key := range []string{"leave", "dc", "disconnect"} {
		cmd, ok := idx.lookup(key)
		if !ok {
			t.Fatalf("expected %q to resolve", key)
		}
		if cmd.Name != "leave" {
			t.Errorf("expected %q to resolve to leave, got %q", key, cmd.Name)
		}
	}
}

func TestCommandIndex_Conflict(t *testing.T) {
	idx := newCommandIndex()
	idx.add(Command{Name: "pause", Aliases: []string{"p"}})

	conflict, ok := idx.add(Command{Name: "play", Aliases: []string{"p"}})
	if ok {
		t.Fatal("expected conflicting alias to be rejected")
	}
	if conflict != "p" {
		t.Errorf("expected conflict on %q, got %q", "p", conflict)
	}
	if _, found := idx.lookup("play"); found {
		t.Error("expected rejected command to stay unregistered")
	}
	if len(idx.commands) != 1 {
		t.Errorf("expected 1 command, got %d", len(idx.commands))
	}
}
