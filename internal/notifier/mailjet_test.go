package notifier

import "testing"

func TestNewMailjetRequiresConfig(t *testing.T) {
	tests := []struct {
		name                               string
		public, private, sender, recipient string
	}{
		{name: "missing public key", private: "k", sender: "a@b.de", recipient: "c@d.de"},
		{name: "missing private key", public: "k", sender: "a@b.de", recipient: "c@d.de"},
		{name: "missing sender", public: "k", private: "k", recipient: "c@d.de"},
		{name: "missing recipient", public: "k", private: "k", sender: "a@b.de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMailjet(tt.public, tt.private, tt.sender, tt.recipient, "https://example.com"); err == nil {
				t.Error("expected configuration error")
			}
		})
	}
}

func TestNewMailjetValidConfig(t *testing.T) {
	n, err := NewMailjet("pub", "priv", "monitor@example.com", "me@example.com", "https://example.com")
	if err != nil {
		t.Fatalf("NewMailjet failed: %v", err)
	}
	if n == nil {
		t.Fatal("expected notifier instance")
	}
}
